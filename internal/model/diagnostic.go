package model

import "strings"

// Position is a 1-based line and column location in a source file.
type Position struct {
	Line   int
	Column int
}

// Range spans a diagnostic from Start to End.
type Range struct {
	Start Position
	End   Position
}

// Diagnostic is one reported rule violation.
type Diagnostic struct {
	Code     string
	Message  string
	Hint     string
	Filename string
	Range    Range
}

// SourceInfo carries the linted text so formatters can render snippets.
type SourceInfo struct {
	Text  string
	lines []string
}

// NewSourceInfo indexes text by line.
func NewSourceInfo(text string) SourceInfo {
	return SourceInfo{
		Text:  text,
		lines: strings.Split(text, "\n"),
	}
}

// LineCount returns the number of lines in the source.
func (s SourceInfo) LineCount() int {
	return len(s.lines)
}

// Line returns the text of the 1-based line n without its line terminator.
func (s SourceInfo) Line(n int) (string, bool) {
	if n < 1 || n > len(s.lines) {
		return "", false
	}

	return strings.TrimSuffix(s.lines[n-1], "\r"), true
}
