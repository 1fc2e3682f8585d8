// Package rules contains the built-in lint rules evaluated by the default
// lint engine.
package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	m "denolint.dev/pkg/denolint/internal/model"
)

// TagRecommended is the rule tag selected when a configuration names no tags.
const TagRecommended = "recommended"

// Rule inspects syntax nodes and reports violations through a Context.
type Rule interface {
	Code() string
	Description() string
	Recommended() bool
	// Visit is called once for every node of the syntax tree.
	Visit(n *sitter.Node, ctx *Context)
}

var catalog = []Rule{
	banTSComment{},
	eqeqeq{},
	noConsole{},
	noDebugger{},
	noEmpty{},
	noEval{},
	noExplicitAny{},
	noVar{},
}

// All returns every built-in rule ordered by code.
func All() []Rule {
	out := make([]Rule, len(catalog))
	copy(out, catalog)

	return out
}

// Recommended returns the rules carrying the recommended tag.
func Recommended() []Rule {
	var out []Rule

	for _, r := range catalog {
		if r.Recommended() {
			out = append(out, r)
		}
	}

	return out
}

// Tagged returns the rules carrying tag. Unknown tags select nothing.
func Tagged(tag string) []Rule {
	if tag == TagRecommended {
		return Recommended()
	}

	return nil
}

// Lookup finds a built-in rule by code.
func Lookup(code string) (Rule, bool) {
	for _, r := range catalog {
		if r.Code() == code {
			return r, true
		}
	}

	return nil, false
}

// Codes returns the codes of rs in order.
func Codes(rs []Rule) m.RuleSet {
	out := make(m.RuleSet, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Code())
	}

	return out
}

// Resolve maps a rule set back to rules, skipping codes that are not built in.
func Resolve(set m.RuleSet) []Rule {
	out := make([]Rule, 0, len(set))

	for _, code := range set {
		if r, ok := Lookup(code); ok {
			out = append(out, r)
		}
	}

	return out
}

// Context is the per-file state shared by rules while a tree is visited.
type Context struct {
	filename    string
	src         []byte
	dialect     m.Dialect
	code        string
	diagnostics []m.Diagnostic
}

// NewContext creates a context for one file.
func NewContext(filename string, src []byte, dialect m.Dialect) *Context {
	return &Context{filename: filename, src: src, dialect: dialect}
}

// Dialect returns the dialect the file was parsed with.
func (c *Context) Dialect() m.Dialect {
	return c.dialect
}

// Text returns the source text covered by n.
func (c *Context) Text(n *sitter.Node) string {
	return n.Content(c.src)
}

// Check runs rule against n, attributing reports to the rule's code.
func (c *Context) Check(rule Rule, n *sitter.Node) {
	c.code = rule.Code()
	rule.Visit(n, c)
}

// Report records a diagnostic spanning n.
func (c *Context) Report(n *sitter.Node, message, hint string) {
	c.diagnostics = append(c.diagnostics, m.Diagnostic{
		Code:     c.code,
		Message:  message,
		Hint:     hint,
		Filename: c.filename,
		Range:    NodeRange(n),
	})
}

// Diagnostics returns everything reported so far.
func (c *Context) Diagnostics() []m.Diagnostic {
	return c.diagnostics
}

// NodeRange converts tree-sitter's 0-based points into 1-based positions.
func NodeRange(n *sitter.Node) m.Range {
	start, end := n.StartPoint(), n.EndPoint()

	return m.Range{
		Start: m.Position{Line: int(start.Row) + 1, Column: int(start.Column) + 1},
		End:   m.Position{Line: int(end.Row) + 1, Column: int(end.Column) + 1},
	}
}

func fieldText(n *sitter.Node, field string, ctx *Context) (string, string) {
	child := n.ChildByFieldName(field)
	if child == nil {
		return "", ""
	}

	return child.Type(), ctx.Text(child)
}
