package rules

import sitter "github.com/smacker/go-tree-sitter"

type noDebugger struct{}

func (noDebugger) Code() string        { return "no-debugger" }
func (noDebugger) Recommended() bool   { return true }
func (noDebugger) Description() string { return "Disallows the use of the debugger statement" }

func (noDebugger) Visit(n *sitter.Node, ctx *Context) {
	if n.Type() != "debugger_statement" {
		return
	}

	ctx.Report(n, "`debugger` statement is not allowed", "Remove the `debugger` statement")
}
