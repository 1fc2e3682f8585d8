package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"denolint.dev/pkg/denolint/internal/adapter"
	"denolint.dev/pkg/denolint/internal/controller"
	"denolint.dev/pkg/denolint/internal/domain"
	m "denolint.dev/pkg/denolint/internal/model"
)

const (
	stdinArg              = "-"
	stdinFilenameFlagName = "stdin-filename"
	allRulesFlagName      = "all-rules"
	excludeRulesFlagName  = "exclude-rules"
	includeRulesFlagName  = "include-rules"

	defaultStdinFilename = "stdin.ts"
)

const lintLongDescription = `Lint a single file, or standard input when the argument is "-".

The lint configuration and ignore files are not consulted. The recommended
rules run unless --all-rules is given; --exclude-rules and --include-rules
refine the selection. Diagnostics are printed to standard output.`

var lintStdinFilenameFlag string
var lintAllRulesFlag bool
var lintExcludeRulesFlag []string
var lintIncludeRulesFlag []string
var lintFormatFlag string

// lintCmd represents the lint command.
var lintCmd = newLintCmd()

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint <file|->",
		Short: "Lint a single file or standard input",
		Long:  lintLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// --format is shared with run; it is read here without a viper binding.
			formatValue := viper.GetString(lintFormatKey)
			if cmd.Flags().Changed(formatFlagName) {
				formatValue = lintFormatFlag
			}

			format, err := adapter.ParseFormat(formatValue)
			if err != nil {
				return err
			}

			fileName, source, err := readLintInput(cmd, args[0])
			if err != nil {
				return err
			}

			lines, err := workflow.LintSource(cmd.Context(), domain.LintArgs{
				FileName:     fileName,
				Source:       source,
				AllRules:     lintAllRulesFlag,
				ExcludeRules: lintExcludeRulesFlag,
				IncludeRules: lintIncludeRulesFlag,
				Format:       format,
			})
			if err != nil {
				return err
			}

			controller.NewUI(cmd, false).DisplayLines(cmd.Context(), lines)

			if len(lines) > 0 {
				return domain.ErrDiagnosticsFound
			}

			return nil
		},
	}

	configureLintFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func configureLintFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&lintStdinFilenameFlag, stdinFilenameFlagName, defaultStdinFilename, "file name used to classify standard input")
	cmd.Flags().BoolVar(&lintAllRulesFlag, allRulesFlagName, false, "start from every built-in rule instead of the recommended ones")
	cmd.Flags().StringSliceVar(&lintExcludeRulesFlag, excludeRulesFlagName, nil, "rule codes to remove from the selection")
	cmd.Flags().StringSliceVar(&lintIncludeRulesFlag, includeRulesFlagName, nil, "rule codes to add to the selection")
	cmd.Flags().StringVar(&lintFormatFlag, formatFlagName, defaultLintFormat, "diagnostic format: pretty or compact")
}

func readLintInput(cmd *cobra.Command, arg string) (string, []byte, error) {
	if arg == stdinArg {
		source, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}

		return lintStdinFilenameFlag, source, nil
	}

	path := m.Path(arg)

	source, err := fsAdapter.ReadFile(path)
	if err != nil {
		return "", nil, &domain.PathError{Path: path, Err: err}
	}

	return arg, source, nil
}
