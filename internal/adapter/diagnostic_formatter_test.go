package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "denolint.dev/pkg/denolint/internal/model"
)

func emptyBlockDiagnostic() m.Diagnostic {
	return m.Diagnostic{
		Code:     "no-empty",
		Message:  "Empty block statement",
		Hint:     "Add code or comment to the empty block",
		Filename: "a.ts",
		Range: m.Range{
			Start: m.Position{Line: 2, Column: 8},
			End:   m.Position{Line: 2, Column: 10},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatPretty, false},
		{"pretty", FormatPretty, false},
		{"COMPACT", FormatCompact, false},
		{"json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextDiagnosticFormatter_Pretty(t *testing.T) {
	info := m.NewSourceInfo("const a = 1;\nif (a) {}\n")

	issues, err := NewDiagnosticFormatter(FormatPretty, false).Format([]m.Diagnostic{emptyBlockDiagnostic()}, info, "a.ts")
	require.NoError(t, err)
	require.Len(t, issues, 1)

	want := "(no-empty) Empty block statement\n" +
		" --> a.ts:2:8\n" +
		"  |\n" +
		"2 | if (a) {}\n" +
		"  |        ^^\n" +
		"  = hint: Add code or comment to the empty block"
	assert.Equal(t, want, issues[0])
}

func TestTextDiagnosticFormatter_Compact(t *testing.T) {
	info := m.NewSourceInfo("const a = 1;\nif (a) {}\n")

	issues, err := NewDiagnosticFormatter(FormatCompact, false).Format([]m.Diagnostic{emptyBlockDiagnostic()}, info, "a.ts")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.ts:2:8 - Empty block statement (no-empty)"}, issues)
}

func TestTextDiagnosticFormatter_PreservesOrder(t *testing.T) {
	info := m.NewSourceInfo("debugger;\nif (a) {}\n")
	first := m.Diagnostic{Code: "no-debugger", Message: "x", Range: m.Range{Start: m.Position{Line: 1, Column: 1}, End: m.Position{Line: 1, Column: 10}}}
	second := emptyBlockDiagnostic()

	issues, err := NewDiagnosticFormatter(FormatCompact, false).Format([]m.Diagnostic{second, first}, info, "a.ts")
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Contains(t, issues[0], "no-empty")
	assert.Contains(t, issues[1], "no-debugger")
}

func TestTextDiagnosticFormatter_LineOutOfRange(t *testing.T) {
	d := emptyBlockDiagnostic()
	d.Range.Start.Line = 42

	_, err := NewDiagnosticFormatter(FormatPretty, false).Format([]m.Diagnostic{d}, m.NewSourceInfo("x\n"), "a.ts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line out of range")
}

func TestTextDiagnosticFormatter_NoDiagnostics(t *testing.T) {
	issues, err := NewDiagnosticFormatter(FormatPretty, false).Format(nil, m.NewSourceInfo(""), "a.ts")
	require.NoError(t, err)
	assert.Empty(t, issues)
}
