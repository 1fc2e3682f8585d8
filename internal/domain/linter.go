package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"

	"denolint.dev/pkg/denolint/internal/adapter"
	"denolint.dev/pkg/denolint/internal/domain/rules"
	m "denolint.dev/pkg/denolint/internal/model"
)

// Suppression comment names recognized in source files.
const (
	FileIgnoreDirective = "eslint-disable"
	LineIgnoreDirective = "eslint-disable-next-line"
)

// ErrSyntax is wrapped by the engine when a source does not parse.
var ErrSyntax = errors.New("syntax error")

// LintRequest is one file handed to the lint engine.
type LintRequest struct {
	Filename            string
	Source              []byte
	Dialect             m.Dialect
	Rules               m.RuleSet
	FileIgnoreDirective string
	LineIgnoreDirective string
}

// LintEngine evaluates a rule set against one source.
type LintEngine interface {
	Lint(ctx context.Context, req LintRequest) (m.SourceInfo, []m.Diagnostic, error)
}

type linter struct {
	adapter.SourceParser
}

// NewLinter creates the built-in engine on top of parser.
func NewLinter(parser adapter.SourceParser) LintEngine {
	return &linter{SourceParser: parser}
}

// directive is a parsed suppression comment. An empty code list means every rule.
type directive struct {
	codes []string
}

func (d directive) covers(code string) bool {
	if len(d.codes) == 0 {
		return true
	}

	for _, c := range d.codes {
		if c == code {
			return true
		}
	}

	return false
}

func (l *linter) Lint(ctx context.Context, req LintRequest) (m.SourceInfo, []m.Diagnostic, error) {
	info := m.NewSourceInfo(string(req.Source))

	tree, err := l.Parse(ctx, req.Dialect, req.Source)
	if err != nil {
		return info, nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		pos := rules.NodeRange(firstError(root)).Start
		return info, nil, fmt.Errorf("%w at %s:%d:%d", ErrSyntax, req.Filename, pos.Line, pos.Column)
	}

	active := rules.Resolve(req.Rules)
	rc := rules.NewContext(req.Filename, req.Source, req.Dialect)

	var comments []*sitter.Node

	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.Type() == "comment" {
			comments = append(comments, n)
		}

		for _, rule := range active {
			rc.Check(rule, n)
		}

		for i := int(n.ChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, n.Child(i))
		}
	}

	fileIgnore, lineIgnores := collectDirectives(root, comments, req)

	var diagnostics []m.Diagnostic

	for _, d := range rc.Diagnostics() {
		if fileIgnore != nil && fileIgnore.covers(d.Code) {
			continue
		}

		if lineIgnore, ok := lineIgnores[d.Range.Start.Line]; ok && lineIgnore.covers(d.Code) {
			continue
		}

		diagnostics = append(diagnostics, d)
	}

	sort.SliceStable(diagnostics, func(i, j int) bool {
		a, b := diagnostics[i].Range.Start, diagnostics[j].Range.Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}

		if a.Column != b.Column {
			return a.Column < b.Column
		}

		return diagnostics[i].Code < diagnostics[j].Code
	})

	return info, diagnostics, nil
}

// collectDirectives returns the file-level directive, if one precedes the
// first statement, and the line directives keyed by the line they suppress.
func collectDirectives(root *sitter.Node, comments []*sitter.Node, req LintRequest) (*directive, map[int]directive) {
	var fileIgnore *directive

	leadingEnd := root.EndByte()

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != "comment" && child.Type() != "hash_bang_line" {
			leadingEnd = child.StartByte()
			break
		}
	}

	lineIgnores := map[int]directive{}

	for _, c := range comments {
		name, codes, ok := parseDirective(c.Content(req.Source))
		if !ok {
			continue
		}

		switch name {
		case req.LineIgnoreDirective:
			// EndPoint().Row is 0-based, diagnostics are 1-based.
			lineIgnores[int(c.EndPoint().Row)+2] = directive{codes: codes}
		case req.FileIgnoreDirective:
			if c.EndByte() <= leadingEnd && fileIgnore == nil {
				fileIgnore = &directive{codes: codes}
			}
		}
	}

	return fileIgnore, lineIgnores
}

// parseDirective reads "name code, code -- reason" out of a comment.
func parseDirective(text string) (string, []string, bool) {
	switch {
	case strings.HasPrefix(text, "//"):
		text = strings.TrimPrefix(text, "//")
	case strings.HasPrefix(text, "/*"):
		text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	default:
		return "", nil, false
	}

	if idx := strings.Index(text, "--"); idx >= 0 {
		text = text[:idx]
	}

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return "", nil, false
	}

	return fields[0], fields[1:], true
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.HasError() || child.IsMissing() {
			return firstError(child)
		}
	}

	return n
}
