package domain

import (
	"errors"
	"fmt"

	m "denolint.dev/pkg/denolint/internal/model"
)

// ErrDiagnosticsFound is returned by the CLI when a run produced diagnostics.
var ErrDiagnosticsFound = errors.New("lint diagnostics found")

// ConfigError reports a configuration file or exclude pattern that could not
// be used. It aborts the run before any file is linted.
type ConfigError struct {
	Path m.Path
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid lint configuration: %v", e.Err)
	}

	return fmt.Sprintf("invalid lint configuration %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// PathError reports a file that could not be read.
type PathError struct {
	Path m.Path
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// DecodeError reports a source that is not valid UTF-8.
type DecodeError struct {
	Path   m.Path
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Input source is not valid utf8 string: invalid utf-8 sequence from index %d, at: %s", e.Offset, e.Path)
}

// EngineError wraps a failure reported by the lint engine for one file.
type EngineError struct {
	Path m.Path
	Err  error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("Lint failed: %v, at: %s", e.Err, e.Path)
}

func (e *EngineError) Unwrap() error { return e.Err }

// ReportError reports a run report that could not be written.
type ReportError struct {
	Path m.Path
	Err  error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("save report %s: %v", e.Path, e.Err)
}

func (e *ReportError) Unwrap() error { return e.Err }
