package domain

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"denolint.dev/pkg/denolint/internal/adapter"
	m "denolint.dev/pkg/denolint/internal/model"
)

type failingEngine struct{ err error }

func (e failingEngine) Lint(context.Context, LintRequest) (m.SourceInfo, []m.Diagnostic, error) {
	return m.SourceInfo{}, nil, e.err
}

type recordingEngine struct{ req LintRequest }

func (e *recordingEngine) Lint(_ context.Context, req LintRequest) (m.SourceInfo, []m.Diagnostic, error) {
	e.req = req
	return m.NewSourceInfo(string(req.Source)), nil, nil
}

func newTestRunner(engine LintEngine) Runner {
	return NewRunner(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewDiagnosticFormatter(adapter.FormatCompact, false),
		engine,
	)
}

func TestRunner_LintSource(t *testing.T) {
	runner := newTestRunner(NewLinter(adapter.NewTreeSitterParser()))
	ctx := context.Background()

	t.Run("formats diagnostics", func(t *testing.T) {
		issues, count, err := runner.LintSource(ctx, "a.ts", []byte("if (a) {}\n"), m.RuleSet{"no-empty"})
		require.NoError(t, err)

		assert.Equal(t, 1, count)
		assert.Equal(t, []string{"a.ts:1:8 - Empty block statement (no-empty)"}, issues)
	})

	t.Run("valid utf-8 never fails on encoding", func(t *testing.T) {
		for _, src := range []string{"", "const s = \"héllo wörld\";\n", "// 日本語 🎉\nlet a = 1;\n", "\uFEFF\nlet b = 2;\n"} {
			_, _, err := runner.LintSource(ctx, "a.ts", []byte(src), m.RuleSet{"no-empty"})

			var decodeErr *DecodeError
			assert.False(t, errors.As(err, &decodeErr), "source %q", src)
		}
	})

	t.Run("invalid utf-8 is a decode error naming the file", func(t *testing.T) {
		_, _, err := runner.LintSource(ctx, "bad.ts", []byte("let a = \"\xff\";\n"), m.RuleSet{"no-empty"})

		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, m.Path("bad.ts"), decodeErr.Path)
		assert.Equal(t, 9, decodeErr.Offset)
		assert.Contains(t, err.Error(), "bad.ts")
	})

	t.Run("engine failures are wrapped with the file", func(t *testing.T) {
		cause := errors.New("engine exploded")
		failing := newTestRunner(failingEngine{err: cause})

		_, _, err := failing.LintSource(ctx, "a.ts", []byte("let a = 1;\n"), nil)

		var engineErr *EngineError
		require.True(t, errors.As(err, &engineErr))
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "Lint failed: engine exploded, at: a.ts", err.Error())
	})

	t.Run("engine receives dialect and directives", func(t *testing.T) {
		engine := &recordingEngine{}
		_, _, err := newTestRunner(engine).LintSource(ctx, "comp.jsx", []byte("x"), m.RuleSet{"no-var"})
		require.NoError(t, err)

		assert.Equal(t, LintRequest{
			Filename:            "comp.jsx",
			Source:              []byte("x"),
			Dialect:             m.DialectJSX,
			Rules:               m.RuleSet{"no-var"},
			FileIgnoreDirective: "eslint-disable",
			LineIgnoreDirective: "eslint-disable-next-line",
		}, engine.req)
	})
}

func TestRunner_RuleSelection(t *testing.T) {
	runner := newTestRunner(NewLinter(adapter.NewTreeSitterParser()))
	src := []byte("if (a) {}\n")

	_, count, err := runner.LintSource(context.Background(), "a.ts", src, SelectForSingleFile(true, []string{"no-empty"}, nil))
	require.NoError(t, err)
	assert.Zero(t, count)

	_, count, err = runner.LintSource(context.Background(), "a.ts", src, SelectForSingleFile(false, nil, []string{"no-empty"}))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunner_LintFile(t *testing.T) {
	runner := newTestRunner(NewLinter(adapter.NewTreeSitterParser()))
	dir := t.TempDir()

	t.Run("reads and lints", func(t *testing.T) {
		path := filepath.Join(dir, "a.ts")
		writeFile(t, path, "var a = 1;\n")

		result := runner.LintFile(context.Background(), m.Path(path), m.RuleSet{"no-var"})

		require.NoError(t, result.Err)
		assert.Equal(t, m.Path(path), result.Path)
		assert.Equal(t, 1, result.Count)
		assert.Len(t, result.Issues, 1)
	})

	t.Run("unreadable file is a path error", func(t *testing.T) {
		path := m.Path(filepath.Join(dir, "missing.ts"))

		result := runner.LintFile(context.Background(), path, m.RuleSet{"no-var"})

		var pathErr *PathError
		require.True(t, errors.As(result.Err, &pathErr))
		assert.Equal(t, path, pathErr.Path)
		assert.Zero(t, result.Count)
	})
}

func TestInvalidUTF8(t *testing.T) {
	_, bad := invalidUTF8([]byte("ok"))
	assert.False(t, bad)

	offset, bad := invalidUTF8([]byte{'a', 'b', 0xc3})
	assert.True(t, bad)
	assert.Equal(t, 2, offset)
}
