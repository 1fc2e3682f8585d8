package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"denolint.dev/pkg/denolint/internal/adapter"
	"denolint.dev/pkg/denolint/internal/domain"
	domainmocks "denolint.dev/pkg/denolint/internal/domain/mocks"
)

func TestLintCmd_Stdin(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newLintCmd())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("debugger;\n"))

	mockWorkflow.On("LintSource", mock.Anything, mock.MatchedBy(func(args domain.LintArgs) bool {
		return args.FileName == "input.js" &&
			string(args.Source) == "debugger;\n" &&
			args.Format == adapter.FormatCompact
	})).Return([]string{"input.js:1:1 - `debugger` statement is not allowed (no-debugger)"}, nil)

	cmd.SetArgs([]string{"lint", "--stdin-filename", "input.js", "--format", "compact", "-"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrDiagnosticsFound)

	assert.Equal(t, "input.js:1:1 - `debugger` statement is not allowed (no-debugger)\n", out.String())
	mockWorkflow.AssertExpectations(t)
}

func TestLintCmd_FileWithRuleFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	path := filepath.Join(t.TempDir(), "clean.ts")
	require.NoError(t, os.WriteFile(path, []byte("const a = 1;\n"), 0o644))

	cmd := newRootCmd()
	cmd.AddCommand(newLintCmd())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("LintSource", mock.Anything, mock.MatchedBy(func(args domain.LintArgs) bool {
		return args.FileName == path &&
			args.AllRules &&
			len(args.ExcludeRules) == 2 &&
			args.ExcludeRules[0] == "no-var" &&
			args.ExcludeRules[1] == "no-console" &&
			len(args.IncludeRules) == 1 &&
			args.IncludeRules[0] == "eqeqeq"
	})).Return(nil, nil)

	cmd.SetArgs([]string{"lint", "--all-rules", "--exclude-rules", "no-var,no-console", "--include-rules", "eqeqeq", path})
	err := cmd.Execute()
	require.NoError(t, err)

	assert.Empty(t, out.String())
	mockWorkflow.AssertExpectations(t)
}

func TestLintCmd_MissingFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newLintCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"lint", filepath.Join(t.TempDir(), "missing.ts")})
	err := cmd.Execute()

	var pathErr *domain.PathError
	require.ErrorAs(t, err, &pathErr)
	mockWorkflow.AssertNotCalled(t, "LintSource", mock.Anything, mock.Anything)
}

func TestLintCmd_EngineErrorIsReturned(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newLintCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("let = ;"))

	engineErr := &domain.EngineError{Path: "stdin.ts", Err: domain.ErrSyntax}
	mockWorkflow.On("LintSource", mock.Anything, mock.MatchedBy(func(args domain.LintArgs) bool {
		return args.FileName == defaultStdinFilename
	})).Return(nil, engineErr)

	cmd.SetArgs([]string{"lint", "-"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrSyntax)
}

func TestLintCmd_RequiresOneArgument(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newLintCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"lint"})
	require.Error(t, cmd.Execute())
}

func TestNewLintCmd(t *testing.T) {
	cmd := newLintCmd()

	assert.Equal(t, "lint <file|->", cmd.Use)
	assert.Equal(t, lintLongDescription, cmd.Long)

	stdinFlag := cmd.Flags().Lookup(stdinFilenameFlagName)
	require.NotNil(t, stdinFlag)
	assert.Equal(t, defaultStdinFilename, stdinFlag.DefValue)

	for _, name := range []string{allRulesFlagName, excludeRulesFlagName, includeRulesFlagName, formatFlagName} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
