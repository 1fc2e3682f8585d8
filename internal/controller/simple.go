package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "denolint.dev/pkg/denolint/internal/model"
)

// SimpleUI implements UI with plain line output. Diagnostics and errors go to
// the error stream, tables and single-buffer results to the output stream.
type SimpleUI struct {
	out        func() io.Writer
	errOut     func() io.Writer
	color      bool
	errorStyle lipgloss.Style
}

// NewSimpleUI creates a SimpleUI writing through cmd's streams.
func NewSimpleUI(cmd *cobra.Command, color bool) *SimpleUI {
	return newSimpleUI(cmd.OutOrStdout, cmd.ErrOrStderr, color)
}

// NewStreamUI creates a SimpleUI writing to fixed streams.
func NewStreamUI(out, errOut io.Writer) *SimpleUI {
	return newSimpleUI(func() io.Writer { return out }, func() io.Writer { return errOut }, false)
}

func newSimpleUI(out, errOut func() io.Writer, color bool) *SimpleUI {
	return &SimpleUI{
		out:        out,
		errOut:     errOut,
		color:      color,
		errorStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// DisplayIssues prints each diagnostic of a file on its own line.
func (s *SimpleUI) DisplayIssues(ctx context.Context, _ m.Path, issues []string) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, issue := range issues {
		s.eprintf("%s\n", issue)
	}
}

// DisplayFileError prints a failure for one file. Typed file errors already
// carry the path.
func (s *SimpleUI) DisplayFileError(ctx context.Context, _ m.Path, err error) {
	if ctx.Err() != nil || err == nil {
		return
	}

	label := "error"
	if s.color {
		label = s.errorStyle.Render(label)
	}

	s.eprintf("%s: %v\n", label, err)
}

// DisplaySummary prints a per-file table of the files with diagnostics or
// errors, followed by the totals.
func (s *SimpleUI) DisplaySummary(ctx context.Context, result m.RunResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if result.FilesWithIssues() == 0 && len(result.Errors) == 0 {
		s.eprintf("Checked %d file(s), no problems found\n", len(result.Files))
		return
	}

	s.eprintf("\n%s", renderSummaryTable(result))
}

func renderSummaryTable(result m.RunResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Problems", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, f := range result.Files {
		if f.Count == 0 && f.Err == nil {
			continue
		}

		status := "problems"
		if f.Err != nil {
			status = "error"
		}

		table.Append([]string{f.Path.String(), fmt.Sprintf("%d", f.Count), status})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Checked %d file(s)", len(result.Files)),
		fmt.Sprintf("%d", result.DiagnosticCount()),
		fmt.Sprintf("%d error(s)", len(result.Errors)),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayLines prints lines to the output stream.
func (s *SimpleUI) DisplayLines(ctx context.Context, lines []string) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, line := range lines {
		s.printf("%s\n", line)
	}
}

// DisplayRules prints the rule catalog as a table.
func (s *SimpleUI) DisplayRules(ctx context.Context, rules []RuleInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Code", "Recommended", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	recommended := 0

	for _, r := range rules {
		mark := ""
		if r.Recommended {
			mark = "yes"
			recommended++
		}

		table.Append([]string{r.Code, mark, r.Description})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Rules %d", len(rules)),
		fmt.Sprintf("%d", recommended),
		"",
	})

	table.Render()
	s.printf("%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out(), format, args...)
}

func (s *SimpleUI) eprintf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.errOut(), format, args...)
}
