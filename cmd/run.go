package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"denolint.dev/pkg/denolint/internal/adapter"
	"denolint.dev/pkg/denolint/internal/controller"
	"denolint.dev/pkg/denolint/internal/domain"
	m "denolint.dev/pkg/denolint/internal/model"
)

var runConfigFlag string
var runDefaultIgnoreDirFlag string
var runParallelFlag int
var runFormatFlag string
var runFailFastFlag bool
var runReportFileFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [dirs...]",
		Short: "Lint a project",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := adapter.ParseFormat(viper.GetString(lintFormatKey))
			if err != nil {
				return err
			}

			cwd, err := workingDir()
			if err != nil {
				return err
			}

			result, err := workflow.Scan(cmd.Context(), domain.ScanArgs{
				WorkingDir:       cwd,
				ConfigPath:       m.Path(viper.GetString(lintConfigKey)),
				DefaultIgnoreDir: m.Path(viper.GetString(defaultIgnoreDirKey)),
				ScanDirs:         args,
				Threads:          viper.GetInt(lintParallelKey),
				FailFast:         viper.GetBool(lintFailFastKey),
				Format:           format,
				Color:            controller.IsTTY(os.Stderr),
				ReportFile:       m.Path(viper.GetString(reportFileKey)),
			})
			if err != nil {
				return scanError(result, err)
			}

			if result.HasError {
				return domain.ErrDiagnosticsFound
			}

			return nil
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// scanError condenses per-file failures, which were already shown next to the
// diagnostics, into a count. A report failure is kept in full.
func scanError(result m.RunResult, err error) error {
	if len(result.Errors) == 0 {
		return err
	}

	summary := fmt.Errorf("%d file(s) could not be linted", len(result.Errors))

	var reportErr *domain.ReportError
	if errors.As(err, &reportErr) {
		return fmt.Errorf("%w: %w", summary, reportErr)
	}

	return summary
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runConfigFlag, configFlagName, "c", defaultLintConfig, "lint configuration file (JSON)")
	bindFlagToConfig(cmd.Flags().Lookup(configFlagName), lintConfigKey)

	cmd.Flags().StringVar(&runDefaultIgnoreDirFlag, defaultIgnoreDirFlagName, "", "ignore path used when no .denolintignore or .eslintignore exists (default: executable directory)")
	bindFlagToConfig(cmd.Flags().Lookup(defaultIgnoreDirFlagName), defaultIgnoreDirKey)

	cmd.Flags().IntVarP(&runParallelFlag, parallelFlagName, "p", defaultLintParallel, "number of files linted in parallel (0 = number of CPUs)")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), lintParallelKey)

	cmd.Flags().StringVar(&runFormatFlag, formatFlagName, defaultLintFormat, "diagnostic format: pretty or compact")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), lintFormatKey)

	cmd.Flags().BoolVar(&runFailFastFlag, failFastFlagName, defaultLintFailFast, "stop at the first file that cannot be linted")
	bindFlagToConfig(cmd.Flags().Lookup(failFastFlagName), lintFailFastKey)

	cmd.Flags().StringVar(&runReportFileFlag, reportFileFlagName, defaultReportFile, "write a YAML run report to this file")
	bindFlagToConfig(cmd.Flags().Lookup(reportFileFlagName), reportFileKey)
}
