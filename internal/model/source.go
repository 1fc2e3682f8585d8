// Package model defines the data structures shared by the lint workflow.
package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Dialect is the source-syntax variant used to pick a grammar for parsing.
type Dialect string

const (
	// DialectTSX is TypeScript with JSX. It is the most permissive grammar and
	// the fallback for unknown extensions.
	DialectTSX Dialect = "tsx"
	// DialectJSX is JavaScript with JSX.
	DialectJSX Dialect = "jsx"
	// DialectJavaScript is plain JavaScript (.js, .mjs).
	DialectJavaScript Dialect = "javascript"
	// DialectTypeScript is plain TypeScript (.ts).
	DialectTypeScript Dialect = "typescript"
)

// IsTypeScript reports whether the dialect carries TypeScript syntax.
func (d Dialect) IsTypeScript() bool {
	return d == DialectTSX || d == DialectTypeScript
}

// CandidateFile is a file produced by the traversal engine.
type CandidateFile struct {
	Path Path
}
