package domain

import (
	"context"
	"unicode/utf8"

	"denolint.dev/pkg/denolint/internal/adapter"
	m "denolint.dev/pkg/denolint/internal/model"
)

// Runner lints single files and buffers.
type Runner interface {
	// LintFile reads path and lints it. Per-file failures are returned in
	// FileResult.Err rather than as an error.
	LintFile(ctx context.Context, path m.Path, ruleSet m.RuleSet) m.FileResult
	// LintSource lints an in-memory buffer named fileName.
	LintSource(ctx context.Context, fileName string, source []byte, ruleSet m.RuleSet) ([]string, int, error)
}

type runner struct {
	adapter.SourceFSAdapter
	adapter.DiagnosticFormatter
	LintEngine
}

// NewRunner creates a Runner from its collaborators.
func NewRunner(fsAdapter adapter.SourceFSAdapter, formatter adapter.DiagnosticFormatter, engine LintEngine) Runner {
	return &runner{
		SourceFSAdapter:     fsAdapter,
		DiagnosticFormatter: formatter,
		LintEngine:          engine,
	}
}

func (r *runner) LintFile(ctx context.Context, path m.Path, ruleSet m.RuleSet) m.FileResult {
	result := m.FileResult{Path: path}

	content, err := r.ReadFile(path)
	if err != nil {
		result.Err = &PathError{Path: path, Err: err}
		return result
	}

	result.Issues, result.Count, result.Err = r.LintSource(ctx, path.String(), content, ruleSet)

	return result
}

func (r *runner) LintSource(ctx context.Context, fileName string, source []byte, ruleSet m.RuleSet) ([]string, int, error) {
	path := m.Path(fileName)

	if offset, ok := invalidUTF8(source); ok {
		return nil, 0, &DecodeError{Path: path, Offset: offset}
	}

	info, diagnostics, err := r.Lint(ctx, LintRequest{
		Filename:            fileName,
		Source:              source,
		Dialect:             Classify(path),
		Rules:               ruleSet,
		FileIgnoreDirective: FileIgnoreDirective,
		LineIgnoreDirective: LineIgnoreDirective,
	})
	if err != nil {
		return nil, 0, &EngineError{Path: path, Err: err}
	}

	issues, err := r.Format(diagnostics, info, fileName)
	if err != nil {
		return nil, 0, &EngineError{Path: path, Err: err}
	}

	return issues, len(diagnostics), nil
}

// invalidUTF8 returns the offset of the first invalid sequence.
func invalidUTF8(b []byte) (int, bool) {
	if utf8.Valid(b) {
		return 0, false
	}

	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i, true
		}

		i += size
	}

	return len(b), true
}
