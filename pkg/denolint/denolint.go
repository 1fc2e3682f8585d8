// Package denolint exposes the linter as a library: single-buffer linting and
// directory scans with the same rule selection and ignore handling as the CLI.
package denolint

import (
	"context"
	"os"

	"denolint.dev/pkg/denolint/internal/adapter"
	"denolint.dev/pkg/denolint/internal/controller"
	"denolint.dev/pkg/denolint/internal/domain"
	m "denolint.dev/pkg/denolint/internal/model"
)

// LintOption customizes the rule selection of Lint.
type LintOption func(*domain.LintArgs)

// WithAllRules starts the selection from every built-in rule instead of the
// recommended ones.
func WithAllRules() LintOption {
	return func(args *domain.LintArgs) {
		args.AllRules = true
	}
}

// WithExcludeRules removes codes from the selection.
func WithExcludeRules(codes ...string) LintOption {
	return func(args *domain.LintArgs) {
		args.ExcludeRules = append(args.ExcludeRules, codes...)
	}
}

// WithIncludeRules adds codes to the selection after exclusions.
func WithIncludeRules(codes ...string) LintOption {
	return func(args *domain.LintArgs) {
		args.IncludeRules = append(args.IncludeRules, codes...)
	}
}

// Lint lints one in-memory source and returns one formatted line per
// diagnostic. fileName selects the dialect. Invalid UTF-8 fails with a
// *domain.DecodeError, engine failures with a *domain.EngineError.
func Lint(fileName string, source []byte, opts ...LintOption) ([]string, error) {
	args := domain.LintArgs{
		FileName: fileName,
		Source:   source,
		Format:   adapter.FormatPretty,
	}

	for _, opt := range opts {
		opt(&args)
	}

	return newWorkflow(controller.NewStreamUI(os.Stdout, os.Stderr)).LintSource(context.Background(), args)
}

// LintString is Lint for string sources.
func LintString(fileName, source string, opts ...LintOption) ([]string, error) {
	return Lint(fileName, []byte(source), opts...)
}

// Denolint scans the process working directory (or scanDirs) and writes every
// diagnostic to stderr. It reports whether any diagnostic was found; the error
// joins configuration or per-file failures.
func Denolint(defaultIgnoreDir, configPath string, scanDirs ...string) (bool, error) {
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	cwd, err := fsAdapter.WorkingDir()
	if err != nil {
		return false, err
	}

	result, err := newWorkflow(controller.NewStreamUI(os.Stdout, os.Stderr)).Scan(context.Background(), domain.ScanArgs{
		WorkingDir:       cwd,
		ConfigPath:       m.Path(configPath),
		DefaultIgnoreDir: m.Path(defaultIgnoreDir),
		ScanDirs:         scanDirs,
		Format:           adapter.FormatPretty,
	})

	return result.HasError, err
}

func newWorkflow(ui controller.UI) domain.Workflow {
	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewJSONConfigLoader(),
		adapter.NewReportStore(),
		ui,
		domain.NewLinter(adapter.NewTreeSitterParser()),
	)
}
