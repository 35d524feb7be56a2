package poddriver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/cache"
	"github.com/fantom-lang/fanxpy/internal/fxerrors"
	"github.com/fantom-lang/fanxpy/internal/typeprinter"
)

// Driver orchestrates emission of one or more pods into outDir.
type Driver struct {
	OutDir string
	Cache  *cache.Manifest
	// NativeDir maps a pod name to the directory holding its
	// hand-written py/ overrides, or "" if the pod has none.
	NativeDir func(pod string) string
}

// PodSummary reports what happened when emitting one pod, for the CLI's
// human-readable output.
type PodSummary struct {
	Pod          string
	TypesEmitted int
	TypesSkipped int // unchanged per the cache
	TypesNative  int // hand-written file found, reflection-only append
	Findings     []*fxerrors.Report
}

// EmitPod emits every type in pod into OutDir, via a staged temp
// directory renamed into place atomically on success (spec.md §6:
// PodDriver never leaves a partially-written pod directory visible).
func (d *Driver) EmitPod(pod *ast.Pod) (*PodSummary, error) {
	summary := &PodSummary{Pod: pod.Name}
	podOutDir := filepath.Join(d.OutDir, "fan", pod.Name)
	stageDir := podOutDir + ".fanxpy-tmp-" + uuid.NewString()

	if err := os.MkdirAll(stageDir, 0o755); err != nil {
		return nil, fxerrors.Wrap(&fxerrors.Report{
			Schema: fxerrors.Schema, Code: fxerrors.IO001, Pod: pod.Name,
			Message: fmt.Sprintf("create staging dir: %v", err),
		})
	}
	defer os.RemoveAll(stageDir)

	moduleNames := make([]string, 0, len(pod.Types))
	nativeDir := ""
	if d.NativeDir != nil {
		nativeDir = d.NativeDir(pod.Name)
	}

	for _, t := range pod.Types {
		onUnsupported := func(r *fxerrors.Report) {
			if r.Pod == "" {
				r.Pod = pod.Name
			}
			if r.Type == "" {
				r.Type = t.Name
			}
			summary.Findings = append(summary.Findings, r)
			glog.V(1).Infof("%s", r.OneLine())
		}

		var text string
		isNative := false
		if nativeDir != "" {
			candidate := filepath.Join(nativeDir, t.Name+".py")
			if data, err := os.ReadFile(candidate); err == nil {
				isNative = true
				tp := typeprinter.New(pod.Name, onUnsupported)
				text = string(data) + "\n\n" + tp.PrintReflectionOnly(t)
			}
		}
		if !isNative {
			tp := typeprinter.New(pod.Name, onUnsupported)
			text = tp.Print(t)
		}

		hash := contentHash(text)
		upToDate := false
		if d.Cache != nil {
			var err error
			upToDate, err = d.Cache.UpToDate(pod.Name, t.Name, hash)
			if err != nil {
				return nil, fxerrors.Wrap(&fxerrors.Report{
					Schema: fxerrors.Schema, Code: fxerrors.IO001, Pod: pod.Name, Type: t.Name,
					Message: fmt.Sprintf("query cache: %v", err),
				})
			}
		}

		// Every type's file is written into the stage dir regardless of
		// cache status — a cache-skipped type still has to be present when
		// stageDir is renamed into place, or the published pod loses that
		// type's file entirely (spec.md §3 invariant 1, §8 byte-identical
		// rerun).
		outPath := filepath.Join(stageDir, t.Name+".py")
		if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
			return nil, fxerrors.Wrap(&fxerrors.Report{
				Schema: fxerrors.Schema, Code: fxerrors.IO001, Pod: pod.Name, Type: t.Name,
				Message: fmt.Sprintf("write type file: %v", err),
			})
		}

		if upToDate {
			summary.TypesSkipped++
			moduleNames = append(moduleNames, t.Name)
			continue
		}

		if isNative {
			summary.TypesNative++
		} else {
			summary.TypesEmitted++
		}

		if d.Cache != nil {
			if err := d.Cache.Record(pod.Name, t.Name, hash); err != nil {
				return nil, fxerrors.Wrap(&fxerrors.Report{
					Schema: fxerrors.Schema, Code: fxerrors.IO001, Pod: pod.Name, Type: t.Name,
					Message: fmt.Sprintf("record cache entry: %v", err),
				})
			}
		}
		moduleNames = append(moduleNames, t.Name)
	}

	initPath := filepath.Join(stageDir, "__init__.py")
	if err := os.WriteFile(initPath, []byte(renderInit(pod.Name, moduleNames)), 0o644); err != nil {
		return nil, fxerrors.Wrap(&fxerrors.Report{
			Schema: fxerrors.Schema, Code: fxerrors.IO001, Pod: pod.Name,
			Message: fmt.Sprintf("write __init__.py: %v", err),
		})
	}

	if err := os.RemoveAll(podOutDir); err != nil && !os.IsNotExist(err) {
		return nil, fxerrors.Wrap(&fxerrors.Report{
			Schema: fxerrors.Schema, Code: fxerrors.IO001, Pod: pod.Name,
			Message: fmt.Sprintf("remove previous pod dir: %v", err),
		})
	}
	if err := os.MkdirAll(filepath.Dir(podOutDir), 0o755); err != nil {
		return nil, fxerrors.Wrap(&fxerrors.Report{
			Schema: fxerrors.Schema, Code: fxerrors.IO001, Pod: pod.Name,
			Message: fmt.Sprintf("create pod parent dir: %v", err),
		})
	}
	if err := os.Rename(stageDir, podOutDir); err != nil {
		return nil, fxerrors.Wrap(&fxerrors.Report{
			Schema: fxerrors.Schema, Code: fxerrors.IO001, Pod: pod.Name,
			Message: fmt.Sprintf("publish pod dir: %v", err),
		})
	}

	return summary, nil
}

func contentHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
