package fxerrors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Report is the canonical structured error/finding record for fanxpy.
// Every recoverable fallback and every fatal failure is reported this
// way so tooling downstream of the CLI can consume structured data
// instead of parsing stderr text.
type Report struct {
	Schema  string         `json:"schema"`
	Code    string         `json:"code"`
	Phase   string         `json:"phase"`
	Message string         `json:"message"`
	Pod     string         `json:"pod,omitempty"`
	Type    string         `json:"type,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// ReportError wraps a Report so it survives errors.As() unwrapping
// through ordinary Go error propagation.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown fanxpy error"
	}
	return fmt.Sprintf("%s: %s: %s", e.Rep.Pod, e.Rep.Code, e.Rep.Message)
}

// AsReport extracts a Report from an error chain, if present.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// Wrap wraps a Report as an error. Fatal reports (IO###, INV###) should
// always be propagated this way so PodDriver can abort the current pod.
func Wrap(r *Report) error {
	if r == nil {
		return nil
	}
	if r.Phase == "" {
		r.Phase = phaseOf(r.Code)
	}
	return &ReportError{Rep: r}
}

// ToJSON renders a Report with deterministic (struct-order) field
// ordering, for tooling that consumes findings as structured data.
func (r *Report) ToJSON(compact bool) (string, error) {
	if compact {
		data, err := json.Marshal(r)
		return string(data), err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	return string(data), err
}

// OneLine renders the single-line `pod: type: kind: message` form
// spec.md §7 requires for a fatal pod failure's stderr line.
func (r *Report) OneLine() string {
	if r.Type != "" {
		return fmt.Sprintf("%s: %s: %s: %s", r.Pod, r.Type, r.Code, r.Message)
	}
	return fmt.Sprintf("%s: %s: %s", r.Pod, r.Code, r.Message)
}
