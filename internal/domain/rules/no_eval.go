package rules

import sitter "github.com/smacker/go-tree-sitter"

type noEval struct{}

func (noEval) Code() string        { return "no-eval" }
func (noEval) Recommended() bool   { return false }
func (noEval) Description() string { return "Disallows the use of `eval`" }

func (noEval) Visit(n *sitter.Node, ctx *Context) {
	if n.Type() != "call_expression" {
		return
	}

	if kind, name := fieldText(n, "function", ctx); kind != "identifier" || name != "eval" {
		return
	}

	ctx.Report(n, "`eval` call is not allowed", "Remove the use of `eval`")
}
