package domain

import (
	"path/filepath"
	"strings"

	m "denolint.dev/pkg/denolint/internal/model"
)

// ResolutionKind tells how a path was resolved.
type ResolutionKind int

const (
	// ResolvedAbsolute means the input was already absolute and returned as is.
	ResolvedAbsolute ResolutionKind = iota
	// ResolvedCanonical means the joined path exists and was canonicalized.
	ResolvedCanonical
	// ResolvedFallback means canonicalization failed and the joined path was
	// returned instead. Err holds the failure.
	ResolvedFallback
)

// Resolution is the result of resolving a raw path against a base.
type Resolution struct {
	Path m.Path
	Kind ResolutionKind
	Err  error
}

// Canonical reports whether the path came from the filesystem.
func (r Resolution) Canonical() bool {
	return r.Kind != ResolvedFallback
}

const extendedLengthPrefix = `\\?\`

// Resolve turns raw into a usable path. Absolute input is returned unchanged.
// Relative input is joined to base and canonicalized; when that fails the
// joined path is returned so that a nonexistent path still produces a value.
func Resolve(raw string, base m.Path) Resolution {
	if filepath.IsAbs(raw) {
		return Resolution{Path: m.Path(raw), Kind: ResolvedAbsolute}
	}

	joined := filepath.Join(string(base), raw)

	abs, err := filepath.Abs(joined)
	if err == nil {
		abs, err = filepath.EvalSymlinks(abs)
	}

	if err != nil {
		return Resolution{Path: m.Path(joined), Kind: ResolvedFallback, Err: err}
	}

	return Resolution{Path: m.Path(strings.TrimPrefix(abs, extendedLengthPrefix)), Kind: ResolvedCanonical}
}

// ResolvePath is Resolve without the branch information.
func ResolvePath(raw string, base m.Path) m.Path {
	return Resolve(raw, base).Path
}
