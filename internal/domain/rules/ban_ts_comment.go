package rules

import (
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

var tsDirective = regexp.MustCompile(`^/*\s*@ts-(expect-error|ignore|nocheck)\b(.*)$`)

type banTSComment struct{}

func (banTSComment) Code() string      { return "ban-ts-comment" }
func (banTSComment) Recommended() bool { return true }
func (banTSComment) Description() string {
	return "Disallows `@ts-<directive>` comments without a description"
}

func (banTSComment) Visit(n *sitter.Node, ctx *Context) {
	if n.Type() != "comment" {
		return
	}

	text := ctx.Text(n)
	if !strings.HasPrefix(text, "//") {
		return
	}

	match := tsDirective.FindStringSubmatch(strings.TrimPrefix(text, "//"))
	if match == nil {
		return
	}

	directive, rest := match[1], strings.TrimSpace(match[2])

	switch directive {
	case "nocheck":
		ctx.Report(n, "`@ts-nocheck` is not allowed", "Remove the directive and fix the type errors")
	default:
		rest = strings.TrimSpace(strings.TrimLeft(rest, ":-"))
		if rest != "" {
			return
		}

		ctx.Report(n, "`@ts-"+directive+"` is not allowed without comment",
			"Add an in-line comment explaining the reason for using `@ts-"+directive+"`, like `// @ts-"+directive+": <reason>`")
	}
}
