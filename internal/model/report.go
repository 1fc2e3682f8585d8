package model

// FileResult is the outcome of linting one file.
type FileResult struct {
	Path   Path
	Issues []string // formatted diagnostics, in engine order
	Count  int
	Err    error // read, decode or engine failure for this file
}

// RunResult is the aggregated outcome of a directory scan.
type RunResult struct {
	// HasError is true iff at least one file produced a diagnostic.
	HasError bool
	Files    []FileResult
	Errors   []error
}

// DiagnosticCount returns the total number of diagnostics in the run.
func (r RunResult) DiagnosticCount() int {
	total := 0
	for _, f := range r.Files {
		total += f.Count
	}

	return total
}

// FilesWithIssues returns how many files produced at least one diagnostic.
func (r RunResult) FilesWithIssues() int {
	n := 0

	for _, f := range r.Files {
		if f.Count > 0 {
			n++
		}
	}

	return n
}

// RunReport is the persisted summary of a directory scan.
type RunReport struct {
	RunID       string       `yaml:"run_id"`
	WorkingDir  Path         `yaml:"working_dir"`
	HasError    bool         `yaml:"has_error"`
	Diagnostics int          `yaml:"diagnostics"`
	Files       []FileReport `yaml:"files"`
}

// FileReport is the persisted summary of one file.
type FileReport struct {
	Path        Path   `yaml:"path"`
	Diagnostics int    `yaml:"diagnostics"`
	Error       string `yaml:"error,omitempty"`
}
