package adapter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	m "denolint.dev/pkg/denolint/internal/model"
)

// Format selects how diagnostics are rendered.
type Format string

const (
	// FormatPretty renders a header, location and annotated source snippet.
	FormatPretty Format = "pretty"
	// FormatCompact renders one "file:line:col - message (code)" line.
	FormatCompact Format = "compact"
)

// ParseFormat validates a format name.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatPretty:
		return FormatPretty, nil
	case FormatCompact:
		return FormatCompact, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want %q or %q)", value, FormatPretty, FormatCompact)
	}
}

// DiagnosticFormatter renders diagnostics for the operator stream. Each
// returned string is one issue.
type DiagnosticFormatter interface {
	Format(diagnostics []m.Diagnostic, info m.SourceInfo, fileName string) ([]string, error)
}

// TextDiagnosticFormatter renders diagnostics as plain or ANSI-colored text.
type TextDiagnosticFormatter struct {
	format Format
	color  bool

	codeStyle   lipgloss.Style
	gutterStyle lipgloss.Style
	markStyle   lipgloss.Style
	hintStyle   lipgloss.Style
}

// NewDiagnosticFormatter constructs a formatter. Colors are applied only when
// color is true.
func NewDiagnosticFormatter(format Format, color bool) *TextDiagnosticFormatter {
	return &TextDiagnosticFormatter{
		format:      format,
		color:       color,
		codeStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		gutterStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		markStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		hintStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// Format renders every diagnostic in order.
func (f *TextDiagnosticFormatter) Format(diagnostics []m.Diagnostic, info m.SourceInfo, fileName string) ([]string, error) {
	issues := make([]string, 0, len(diagnostics))

	for _, d := range diagnostics {
		var (
			issue string
			err   error
		)

		switch f.format {
		case FormatCompact:
			issue = f.compact(d, fileName)
		default:
			issue, err = f.pretty(d, info, fileName)
		}

		if err != nil {
			return nil, err
		}

		issues = append(issues, issue)
	}

	return issues, nil
}

func (f *TextDiagnosticFormatter) compact(d m.Diagnostic, fileName string) string {
	return fmt.Sprintf("%s:%d:%d - %s (%s)",
		fileName, d.Range.Start.Line, d.Range.Start.Column, d.Message, f.style(f.codeStyle, d.Code))
}

func (f *TextDiagnosticFormatter) pretty(d m.Diagnostic, info m.SourceInfo, fileName string) (string, error) {
	start := d.Range.Start

	text, ok := info.Line(start.Line)
	if !ok {
		return "", fmt.Errorf("render %s at %s:%d: line out of range (source has %d lines)",
			d.Code, fileName, start.Line, info.LineCount())
	}

	lineLabel := strconv.Itoa(start.Line)
	pad := strings.Repeat(" ", len(lineLabel))
	bar := f.style(f.gutterStyle, "|")

	var b strings.Builder

	fmt.Fprintf(&b, "(%s) %s\n", f.style(f.codeStyle, d.Code), d.Message)
	fmt.Fprintf(&b, "%s%s %s:%d:%d\n", pad, f.style(f.gutterStyle, "-->"), fileName, start.Line, start.Column)
	fmt.Fprintf(&b, "%s %s\n", pad, bar)
	fmt.Fprintf(&b, "%s %s %s\n", f.style(f.gutterStyle, lineLabel), bar, text)
	fmt.Fprintf(&b, "%s %s %s%s", pad, bar, markerIndent(text, start.Column), f.style(f.markStyle, carets(d.Range, text)))

	if d.Hint != "" {
		fmt.Fprintf(&b, "\n%s %s", pad, f.style(f.hintStyle, "= hint: "+d.Hint))
	}

	return b.String(), nil
}

func (f *TextDiagnosticFormatter) style(s lipgloss.Style, text string) string {
	if !f.color {
		return text
	}

	return s.Render(text)
}

// markerIndent mirrors the characters before column so tabs line up.
func markerIndent(text string, column int) string {
	end := column - 1
	if end > len(text) {
		end = len(text)
	}

	if end < 0 {
		end = 0
	}

	var b strings.Builder

	for _, r := range text[:end] {
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
	}

	return b.String()
}

func carets(r m.Range, text string) string {
	startByte := clamp(r.Start.Column-1, 0, len(text))
	endByte := len(text)

	if r.End.Line == r.Start.Line {
		endByte = clamp(r.End.Column-1, startByte, len(text))
	}

	width := utf8.RuneCountInString(text[startByte:endByte])
	if width < 1 {
		width = 1
	}

	return strings.Repeat("^", width)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
