package rules

import sitter "github.com/smacker/go-tree-sitter"

type noConsole struct{}

func (noConsole) Code() string        { return "no-console" }
func (noConsole) Recommended() bool   { return false }
func (noConsole) Description() string { return "Disallows the use of the `console` global" }

func (noConsole) Visit(n *sitter.Node, ctx *Context) {
	if n.Type() != "member_expression" {
		return
	}

	if kind, name := fieldText(n, "object", ctx); kind != "identifier" || name != "console" {
		return
	}

	ctx.Report(n, "`console` usage is not allowed.", "Remove the console statement or use a logger")
}
