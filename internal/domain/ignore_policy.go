package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"denolint.dev/pkg/denolint/internal/adapter"
	m "denolint.dev/pkg/denolint/internal/model"
)

// Ignore file names looked up in the working directory, highest priority first.
const (
	CustomIgnoreFile = ".denolintignore"
	LegacyIgnoreFile = ".eslintignore"
)

// FileTypes are the globs a walked file must match to be linted.
var FileTypes = []string{
	// typescript
	"*.ts", "*.tsx", "*.mts", "*.cts",
	// javascript
	"*.js", "*.jsx", "*.mjs", "*.cjs", "*.vue",
}

// OverridePattern is a configured exclude compiled for matching against paths
// relative to the working directory.
type OverridePattern struct {
	Raw  string
	Glob string
	// Anchored patterns match the whole relative path, others only the base name.
	Anchored bool
	// Absolute patterns point outside the working directory and match the
	// absolute path.
	Absolute bool
	DirOnly  bool
}

// IgnorePolicy is built once per run and shared read-only by the walker.
type IgnorePolicy struct {
	WorkingDir       m.Path
	IgnoreFilePath   m.Path
	FileTypes        []string
	FollowSymlinks   bool
	OverrideExcludes []OverridePattern
	RawExcludes      []string

	custom *ignore.GitIgnore
	raw    *ignore.GitIgnore
}

// BuildIgnorePolicy picks the ignore file and compiles the configured excludes.
// It fails only when an exclude entry cannot be used as a pattern.
func BuildIgnorePolicy(fs adapter.SourceFSAdapter, run m.RunConfig, loaded *m.LoadedConfig) (*IgnorePolicy, error) {
	policy := &IgnorePolicy{
		WorkingDir:     run.WorkingDir,
		IgnoreFilePath: selectIgnoreFile(fs, run),
		FileTypes:      FileTypes,
		FollowSymlinks: true,
	}

	custom, err := ignore.CompileIgnoreFile(policy.IgnoreFilePath.String())
	if err != nil {
		// The fallback is usually a directory; it contributes no rules.
		slog.Debug("Ignore file not usable", "path", policy.IgnoreFilePath, "error", err)
	} else {
		policy.custom = custom
	}

	if loaded == nil || len(loaded.ExcludePaths) == 0 {
		return policy, nil
	}

	for _, raw := range loaded.ExcludePaths {
		pattern, err := compileOverride(raw.String(), run.WorkingDir)
		if err != nil {
			return nil, &ConfigError{Path: loaded.Path, Err: err}
		}

		policy.OverrideExcludes = append(policy.OverrideExcludes, pattern)
		policy.RawExcludes = append(policy.RawExcludes, raw.String())
	}

	policy.raw = ignore.CompileIgnoreLines(policy.RawExcludes...)

	return policy, nil
}

func selectIgnoreFile(fs adapter.SourceFSAdapter, run m.RunConfig) m.Path {
	for _, name := range []string{CustomIgnoreFile, LegacyIgnoreFile} {
		candidate := m.Path(filepath.Join(run.WorkingDir.String(), name))
		if _, err := fs.FileInfo(candidate); err == nil {
			return candidate
		}
	}

	return run.DefaultIgnoreDir
}

func compileOverride(raw string, cwd m.Path) (OverridePattern, error) {
	pattern := OverridePattern{Raw: raw}

	p := strings.TrimSpace(raw)
	if p == "" {
		return pattern, errors.New("empty exclude entry")
	}

	if filepath.IsAbs(p) {
		rel, err := filepath.Rel(cwd.String(), p)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			pattern.Absolute = true
		} else {
			p = rel
			pattern.Anchored = true
		}
	}

	p = filepath.ToSlash(p)
	p = strings.TrimPrefix(p, "./")

	if !pattern.Absolute && strings.HasPrefix(p, "/") {
		pattern.Anchored = true
		p = strings.TrimPrefix(p, "/")
	}

	if strings.HasSuffix(p, "/") {
		pattern.DirOnly = true
		p = strings.TrimRight(p, "/")
	}

	// Absolute patterns always match the whole absolute path.
	if !pattern.Absolute && strings.Contains(p, "/") {
		pattern.Anchored = true
	}

	if p == "" || p == "." {
		return pattern, fmt.Errorf("exclude entry %q matches the whole working directory", raw)
	}

	if !doublestar.ValidatePattern(p) {
		return pattern, fmt.Errorf("exclude entry %q is not a valid pattern", raw)
	}

	pattern.Glob = p

	return pattern, nil
}

// Excludes reports whether an override pattern removes p from the walk.
func (p *IgnorePolicy) Excludes(target m.Path, isDir bool) bool {
	if len(p.OverrideExcludes) == 0 {
		return false
	}

	abs := filepath.ToSlash(target.String())

	rel, err := filepath.Rel(p.WorkingDir.String(), target.String())
	if err != nil {
		rel = target.String()
	}

	rel = filepath.ToSlash(rel)
	outside := rel == ".." || strings.HasPrefix(rel, "../")

	for _, o := range p.OverrideExcludes {
		if o.DirOnly && !isDir {
			continue
		}

		var subject string

		switch {
		case o.Absolute:
			subject = abs
		case !o.Anchored:
			subject = path.Base(rel)
		case outside:
			continue
		default:
			subject = rel
		}

		if ok, _ := doublestar.Match(o.Glob, subject); ok {
			return true
		}
	}

	return false
}

// MatchesType reports whether a file name passes the type filter.
func (p *IgnorePolicy) MatchesType(name string) bool {
	for _, glob := range p.FileTypes {
		if ok, _ := doublestar.Match(glob, name); ok {
			return true
		}
	}

	return false
}

// RawExcluded applies the configured excludes again as ignore-file lines
// rooted at root. It is only active when override patterns exist.
func (p *IgnorePolicy) RawExcluded(root, target m.Path, isDir bool) bool {
	if p.raw == nil {
		return false
	}

	return matchRelative(p.raw, root, target, isDir)
}

// CustomIgnore returns the compiled ignore file, or nil when it has no rules.
func (p *IgnorePolicy) CustomIgnore() *ignore.GitIgnore {
	return p.custom
}

func matchRelative(matcher *ignore.GitIgnore, base, target m.Path, isDir bool) bool {
	rel, err := filepath.Rel(base.String(), target.String())
	if err != nil {
		return false
	}

	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}

	if isDir {
		rel += "/"
	}

	return matcher.MatchesPath(rel)
}
