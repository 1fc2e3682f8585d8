package domain

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"denolint.dev/pkg/denolint/internal/adapter"
	"denolint.dev/pkg/denolint/internal/controller"
	m "denolint.dev/pkg/denolint/internal/model"
)

// ScanArgs contains the arguments of a directory scan.
type ScanArgs struct {
	WorkingDir       m.Path
	ConfigPath       m.Path
	DefaultIgnoreDir m.Path
	ScanDirs         []string
	// Threads bounds the number of concurrent lint jobs; 0 uses GOMAXPROCS.
	Threads    int
	FailFast   bool
	Format     adapter.Format
	Color      bool
	ReportFile m.Path
}

// LintArgs contains the arguments of a single-buffer lint.
type LintArgs struct {
	FileName     string
	Source       []byte
	AllRules     bool
	ExcludeRules []string
	IncludeRules []string
	Format       adapter.Format
	Color        bool
}

// Workflow defines the lint operations exposed to the CLI and library API.
type Workflow interface {
	// Scan lints every discovered file. The result is returned even when the
	// error is non-nil; per-file errors are joined into the error.
	Scan(ctx context.Context, args ScanArgs) (m.RunResult, error)
	LintSource(ctx context.Context, args LintArgs) ([]string, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ConfigLoader
	adapter.ReportStore
	controller.UI
	LintEngine
	Walker
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	configLoader adapter.ConfigLoader,
	reportStore adapter.ReportStore,
	ui controller.UI,
	engine LintEngine,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ConfigLoader:    configLoader,
		ReportStore:     reportStore,
		UI:              ui,
		LintEngine:      engine,
		Walker:          NewWalker(fsAdapter),
	}
}

func (w *workflow) LintSource(ctx context.Context, args LintArgs) ([]string, error) {
	ruleSet := SelectForSingleFile(args.AllRules, args.ExcludeRules, args.IncludeRules)
	runner := NewRunner(w.SourceFSAdapter, adapter.NewDiagnosticFormatter(args.Format, args.Color), w.LintEngine)

	slog.Debug("Linting source", "file", args.FileName, "rules", len(ruleSet))

	issues, _, err := runner.LintSource(ctx, args.FileName, args.Source, ruleSet)
	if err != nil {
		return nil, err
	}

	return issues, nil
}

func (w *workflow) Scan(ctx context.Context, args ScanArgs) (m.RunResult, error) {
	runID := uuid.NewString()
	logger := slog.With("run_id", runID)

	run := m.RunConfig{
		WorkingDir:       args.WorkingDir,
		ConfigPath:       args.ConfigPath,
		DefaultIgnoreDir: args.DefaultIgnoreDir,
	}

	loaded, err := w.loadConfig(run.ConfigPath)
	if err != nil {
		return m.RunResult{}, err
	}

	policy, err := BuildIgnorePolicy(w.SourceFSAdapter, run, loaded)
	if err != nil {
		return m.RunResult{}, err
	}

	ruleSet := SelectForScan(loaded)
	roots := SelectRoots(run.WorkingDir, args.ScanDirs, loaded)
	run.ScanRoots = roots.All()

	logger.Debug("Starting scan",
		"cwd", run.WorkingDir,
		"roots", run.ScanRoots,
		"ignore_file", policy.IgnoreFilePath,
		"rules", ruleSet,
	)

	runner := NewRunner(w.SourceFSAdapter, adapter.NewDiagnosticFormatter(args.Format, args.Color), w.LintEngine)

	files, err := w.lintAll(ctx, runner, roots, policy, ruleSet, args)
	if err != nil {
		return m.RunResult{}, err
	}

	result := Aggregate(files)
	w.report(ctx, result)

	logger.Info("Scan finished",
		"files", len(result.Files),
		"diagnostics", result.DiagnosticCount(),
		"errors", len(result.Errors),
	)

	var reportErr error

	if args.ReportFile != "" {
		if err := w.SaveReport(args.ReportFile, buildRunReport(runID, run.WorkingDir, result)); err != nil {
			reportErr = &ReportError{Path: args.ReportFile, Err: err}
		}
	}

	return result, errors.Join(append([]error{reportErr}, result.Errors...)...)
}

// loadConfig loads the configuration file when it exists as a regular file.
func (w *workflow) loadConfig(path m.Path) (*m.LoadedConfig, error) {
	if path == "" {
		return nil, nil
	}

	info, err := w.FileInfo(path)
	if err != nil || !info.Mode().IsRegular() {
		slog.Debug("No lint configuration", "path", path)
		return nil, nil
	}

	loaded, err := w.Load(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	return loaded, nil
}

func (w *workflow) lintAll(
	ctx context.Context,
	runner Runner,
	roots Roots,
	policy *IgnorePolicy,
	ruleSet m.RuleSet,
	args ScanArgs,
) ([]m.FileResult, error) {
	threads := args.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	var (
		files []m.FileResult
		mu    sync.Mutex
	)

	// Only fail-fast cancels sibling jobs; otherwise every job returns nil.
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for candidate := range w.Walk(groupCtx, roots, policy) {
		group.Go(func() error {
			result := runner.LintFile(groupCtx, candidate.Path, ruleSet)

			mu.Lock()
			files = append(files, result)
			mu.Unlock()

			if result.Err != nil && args.FailFast {
				return result.Err
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return files, ctx.Err()
}

func (w *workflow) report(ctx context.Context, result m.RunResult) {
	for _, f := range result.Files {
		if f.Err != nil {
			w.DisplayFileError(ctx, f.Path, f.Err)
			continue
		}

		if f.Count > 0 {
			w.DisplayIssues(ctx, f.Path, f.Issues)
		}
	}

	w.DisplaySummary(ctx, result)
}

func buildRunReport(runID string, cwd m.Path, result m.RunResult) m.RunReport {
	report := m.RunReport{
		RunID:       runID,
		WorkingDir:  cwd,
		HasError:    result.HasError,
		Diagnostics: result.DiagnosticCount(),
	}

	for _, f := range result.Files {
		fr := m.FileReport{Path: f.Path, Diagnostics: f.Count}
		if f.Err != nil {
			fr.Error = f.Err.Error()
		}

		report.Files = append(report.Files, fr)
	}

	return report
}
