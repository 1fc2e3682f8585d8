package rules

import sitter "github.com/smacker/go-tree-sitter"

// Function bodies may legitimately be empty.
var functionLike = map[string]bool{
	"arrow_function":                 true,
	"function":                       true,
	"function_declaration":           true,
	"function_expression":            true,
	"generator_function":             true,
	"generator_function_declaration": true,
	"method_definition":              true,
}

type noEmpty struct{}

func (noEmpty) Code() string        { return "no-empty" }
func (noEmpty) Recommended() bool   { return true }
func (noEmpty) Description() string { return "Disallows empty block statements" }

func (noEmpty) Visit(n *sitter.Node, ctx *Context) {
	switch n.Type() {
	case "statement_block":
		// A comment counts as content.
		if n.NamedChildCount() > 0 {
			return
		}

		if parent := n.Parent(); parent != nil && functionLike[parent.Type()] {
			return
		}

		ctx.Report(n, "Empty block statement", "Add code or comment to the empty block")
	case "switch_body":
		if n.NamedChildCount() > 0 {
			return
		}

		ctx.Report(n.Parent(), "Empty switch statement", "Add case statements or remove the switch")
	}
}
