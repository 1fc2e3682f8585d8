package rules

import sitter "github.com/smacker/go-tree-sitter"

type noExplicitAny struct{}

func (noExplicitAny) Code() string        { return "no-explicit-any" }
func (noExplicitAny) Recommended() bool   { return true }
func (noExplicitAny) Description() string { return "Disallows use of the `any` type" }

func (noExplicitAny) Visit(n *sitter.Node, ctx *Context) {
	if !ctx.Dialect().IsTypeScript() || n.Type() != "predefined_type" {
		return
	}

	if ctx.Text(n) != "any" {
		return
	}

	ctx.Report(n, "`any` type is not allowed",
		"Use a specific type other than `any` or use `unknown` to indicate that the type may be anything")
}
