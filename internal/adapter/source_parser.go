package adapter

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	m "denolint.dev/pkg/denolint/internal/model"
)

// SourceParser encapsulates grammar selection and parsing so the linter can
// focus on rule evaluation while delegating syntax details to an
// infrastructure component.
type SourceParser interface {
	// Parse builds a syntax tree for src using the grammar of dialect. The
	// caller owns the returned tree and must Close it.
	Parse(ctx context.Context, dialect m.Dialect, src []byte) (*sitter.Tree, error)
}

// TreeSitterParser provides a concrete SourceParser backed by tree-sitter.
type TreeSitterParser struct{}

// NewTreeSitterParser constructs a TreeSitterParser.
func NewTreeSitterParser() *TreeSitterParser {
	return &TreeSitterParser{}
}

// Parse parses src with a fresh parser. Parsers are not safe for concurrent
// use, so one is created per call.
func (p *TreeSitterParser) Parse(ctx context.Context, dialect m.Dialect, src []byte) (*sitter.Tree, error) {
	lang, err := languageFor(dialect)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s source: %w", dialect, err)
	}

	return tree, nil
}

func languageFor(dialect m.Dialect) (*sitter.Language, error) {
	switch dialect {
	case m.DialectTSX:
		return tsx.GetLanguage(), nil
	case m.DialectTypeScript:
		return typescript.GetLanguage(), nil
	case m.DialectJSX, m.DialectJavaScript:
		// The JavaScript grammar accepts JSX.
		return javascript.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}
