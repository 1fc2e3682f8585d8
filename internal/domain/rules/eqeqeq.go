package rules

import sitter "github.com/smacker/go-tree-sitter"

type eqeqeq struct{}

func (eqeqeq) Code() string        { return "eqeqeq" }
func (eqeqeq) Recommended() bool   { return false }
func (eqeqeq) Description() string { return "Enforces the use of type-safe equality operators" }

func (eqeqeq) Visit(n *sitter.Node, ctx *Context) {
	if n.Type() != "binary_expression" {
		return
	}

	switch op, _ := fieldText(n, "operator", ctx); op {
	case "==":
		ctx.Report(n, "expected '===' and instead saw '=='.", "Use '===' instead")
	case "!=":
		ctx.Report(n, "expected '!==' and instead saw '!='.", "Use '!==' instead")
	}
}
