// Package cmd provides the root command and CLI setup for denolint.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"denolint.dev/pkg/denolint/internal/adapter"
	"denolint.dev/pkg/denolint/internal/controller"
	"denolint.dev/pkg/denolint/internal/domain"
	m "denolint.dev/pkg/denolint/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var configLoader adapter.ConfigLoader
var reportStore adapter.ReportStore
var sourceParser adapter.SourceParser
var engine domain.LintEngine
var workflow domain.Workflow
var ui controller.UI

// logFileFlag and verboseFlag are root-level flags shared by every command.
var logFileFlag string
var verboseFlag bool

const (
	logFileFlagName = "log-file"
	verboseFlagName = "verbose"
)

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stderr))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	configLoader = adapter.NewJSONConfigLoader()
	reportStore = adapter.NewReportStore()
	sourceParser = adapter.NewTreeSitterParser()
	engine = domain.NewLinter(sourceParser)
	workflow = domain.NewWorkflow(
		fsAdapter,
		configLoader,
		reportStore,
		ui,
		engine,
	)
}

const rootLongDescription = `denolint lints JavaScript and TypeScript projects with a built-in rule set.

It discovers sources under the working directory (or the given directories),
honors .denolintignore / .eslintignore and the files block of the lint
configuration, and reports every diagnostic with its source location.`

const runLongDescription = `Lint every JavaScript and TypeScript file under the given directories
(default: files.include from the lint configuration, then the working directory).

The exit status is 1 when any diagnostic is reported or a file cannot be linted.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "denolint",
		Short:         "JavaScript and TypeScript linter",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default from log.filename)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		if !errors.Is(err, domain.ErrDiagnosticsFound) {
			rootCmd.PrintErrln("Error:", err)
		}

		os.Exit(1)
	}
}

func workingDir() (m.Path, error) {
	cwd, err := fsAdapter.WorkingDir()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	return cwd, nil
}
