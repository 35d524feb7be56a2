// Package config loads the fanxpy run configuration: which pods to
// emit, where generated Python goes, and where each pod's hand-written
// native files live. Grounded on the teacher's eval_harness.LoadSpec
// yaml.v3 pattern (internal/eval_harness/spec.go).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PodConfig is one pod's emission settings.
type PodConfig struct {
	Name      string `yaml:"name"`
	NativeDir string `yaml:"nativeDir"`
}

// Config is the top-level fanxpy.yaml document.
type Config struct {
	OutDir   string      `yaml:"outDir"`
	CacheDB  string      `yaml:"cacheDb"`
	Pods     []PodConfig `yaml:"pods"`
}

// Load reads and validates a fanxpy.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.OutDir == "" {
		return nil, fmt.Errorf("config %s: missing required field outDir", path)
	}
	if len(cfg.Pods) == 0 {
		return nil, fmt.Errorf("config %s: missing required field pods", path)
	}
	for _, p := range cfg.Pods {
		if p.Name == "" {
			return nil, fmt.Errorf("config %s: pod entry missing name", path)
		}
	}
	if cfg.CacheDB == "" {
		cfg.CacheDB = filepath.Join(cfg.OutDir, ".fanxpy-cache.sqlite")
	}
	return &cfg, nil
}

// NativeDirFor returns the configured native-source directory for pod,
// or "" if the pod has none configured (PodDriver then always emits the
// generated file in full).
func (c *Config) NativeDirFor(pod string) string {
	for _, p := range c.Pods {
		if p.Name == pod {
			return p.NativeDir
		}
	}
	return ""
}
