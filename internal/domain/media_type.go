package domain

import (
	"path/filepath"

	m "denolint.dev/pkg/denolint/internal/model"
)

// Classify picks the dialect used to parse path. The extension match is exact;
// anything unrecognized is parsed as TSX, the most permissive grammar.
func Classify(path m.Path) m.Dialect {
	switch filepath.Ext(string(path)) {
	case ".tsx":
		return m.DialectTSX
	case ".jsx":
		return m.DialectJSX
	case ".js", ".mjs":
		return m.DialectJavaScript
	case ".ts":
		return m.DialectTypeScript
	default:
		return m.DialectTSX
	}
}
