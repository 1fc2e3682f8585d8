package rules

import sitter "github.com/smacker/go-tree-sitter"

type noVar struct{}

func (noVar) Code() string        { return "no-var" }
func (noVar) Recommended() bool   { return true }
func (noVar) Description() string { return "Enforces the use of block scoped variables over `var`" }

// The grammar emits lexical_declaration for let and const.
func (noVar) Visit(n *sitter.Node, ctx *Context) {
	if n.Type() != "variable_declaration" {
		return
	}

	ctx.Report(n, "`var` keyword is not allowed.", "Use `let` or `const` instead")
}
