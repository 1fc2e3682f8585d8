package cmd

import (
	"github.com/spf13/cobra"

	"denolint.dev/pkg/denolint/internal/controller"
	"denolint.dev/pkg/denolint/internal/domain/rules"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in lint rules",
		Long:  "Prints every built-in rule with its code, whether it is recommended, and a short description.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			controller.NewUI(cmd, false).DisplayRules(cmd.Context(), ruleInfos(rules.All()))
		},
	}
}

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func ruleInfos(rs []rules.Rule) []controller.RuleInfo {
	infos := make([]controller.RuleInfo, 0, len(rs))
	for _, r := range rs {
		infos = append(infos, controller.RuleInfo{
			Code:        r.Code(),
			Description: r.Description(),
			Recommended: r.Recommended(),
		})
	}

	return infos
}
