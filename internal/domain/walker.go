package domain

import (
	"context"
	"iter"
	"log/slog"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"denolint.dev/pkg/denolint/internal/adapter"
	m "denolint.dev/pkg/denolint/internal/model"
)

// Roots is the selected set of walk roots. Primary is walked first; Extra are
// additional explicit paths layered onto the same walk.
type Roots struct {
	Primary m.Path
	Extra   []m.Path
}

// All returns the primary root followed by the extra roots.
func (r Roots) All() []m.Path {
	return append([]m.Path{r.Primary}, r.Extra...)
}

// SelectRoots applies root precedence: explicit scan directories, then the
// configured include paths, then the working directory. Only the winning
// source contributes extra roots.
func SelectRoots(cwd m.Path, scanDirs []string, loaded *m.LoadedConfig) Roots {
	var entries []string

	switch {
	case len(scanDirs) > 0:
		entries = scanDirs
	case loaded != nil && len(loaded.IncludePaths) > 0:
		for _, p := range loaded.IncludePaths {
			entries = append(entries, p.String())
		}
	default:
		return Roots{Primary: cwd}
	}

	roots := Roots{Primary: ResolvePath(entries[0], cwd)}
	for _, e := range entries[1:] {
		roots.Extra = append(roots.Extra, ResolvePath(e, cwd))
	}

	return roots
}

// Walker discovers candidate files.
type Walker interface {
	// Walk returns a fresh lazy sequence of files under roots. Iteration stops
	// when the consumer stops or ctx is done.
	Walk(ctx context.Context, roots Roots, policy *IgnorePolicy) iter.Seq[m.CandidateFile]
}

type walker struct {
	adapter.SourceFSAdapter
}

// NewWalker creates a Walker reading through fsAdapter.
func NewWalker(fsAdapter adapter.SourceFSAdapter) Walker {
	return &walker{SourceFSAdapter: fsAdapter}
}

// frame holds the ignore rules that apply below one directory.
type frame struct {
	dir      m.Path
	matchers []*ignore.GitIgnore
}

type walk struct {
	*walker
	ctx       context.Context
	policy    *IgnorePolicy
	root      m.Path
	seen      map[m.Path]bool
	ancestors map[m.Path]bool
	yield     func(m.CandidateFile) bool
}

func (w *walker) Walk(ctx context.Context, roots Roots, policy *IgnorePolicy) iter.Seq[m.CandidateFile] {
	return func(yield func(m.CandidateFile) bool) {
		state := &walk{
			walker: w,
			ctx:    ctx,
			policy: policy,
			seen:   map[m.Path]bool{},
			yield:  yield,
		}

		for _, root := range roots.All() {
			if !state.walkRoot(root) {
				return
			}
		}
	}
}

func (s *walk) walkRoot(root m.Path) bool {
	info, err := s.FileInfo(root)
	if err != nil {
		slog.Debug("Skipping walk root", "path", root, "error", err)
		return true
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return true
		}

		return s.emit(root)
	}

	real, err := s.RealPath(root)
	if err != nil {
		real = root
	}

	s.root = root
	s.ancestors = map[m.Path]bool{real: true}

	parents, inGit := s.parentFrames(root)

	return s.walkDir(root, parents, inGit)
}

func (s *walk) walkDir(dir m.Path, parents []frame, inGit bool) bool {
	if s.ctx.Err() != nil {
		return false
	}

	entries, err := s.ReadDir(dir)
	if err != nil {
		slog.Debug("Skipping unreadable directory", "path", dir, "error", err)
		return true
	}

	if !inGit {
		for _, e := range entries {
			if e.Name() == ".git" {
				inGit = true
				break
			}
		}
	}

	frames := append(parents[:len(parents):len(parents)], s.frameFor(dir, inGit))

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		path := m.Path(filepath.Join(dir.String(), name))

		// Stat follows symlinks; broken links fail here and are dropped.
		info, err := s.FileInfo(path)
		if err != nil {
			slog.Debug("Skipping entry", "path", path, "error", err)
			continue
		}

		isDir := info.IsDir()
		if s.ignored(frames, path, isDir) {
			continue
		}

		if isDir {
			if !s.descend(path, frames, inGit) {
				return false
			}

			continue
		}

		if !info.Mode().IsRegular() || !s.policy.MatchesType(name) {
			continue
		}

		if !s.emit(path) {
			return false
		}
	}

	return true
}

func (s *walk) descend(dir m.Path, frames []frame, inGit bool) bool {
	real, err := s.RealPath(dir)
	if err != nil {
		slog.Debug("Skipping directory", "path", dir, "error", err)
		return true
	}

	if s.ancestors[real] {
		slog.Debug("Skipping symlink loop", "path", dir, "target", real)
		return true
	}

	s.ancestors[real] = true
	defer delete(s.ancestors, real)

	return s.walkDir(dir, frames, inGit)
}

func (s *walk) frameFor(dir m.Path, inGit bool) frame {
	f := frame{dir: dir}

	if custom := s.policy.CustomIgnore(); custom != nil {
		f.matchers = append(f.matchers, custom)
	}

	if matcher := s.compileIgnore(dir, ".ignore"); matcher != nil {
		f.matchers = append(f.matchers, matcher)
	}

	if inGit {
		if matcher := s.compileIgnore(dir, ".gitignore"); matcher != nil {
			f.matchers = append(f.matchers, matcher)
		}
	}

	return f
}

func (s *walk) compileIgnore(dir m.Path, name string) *ignore.GitIgnore {
	content, err := s.ReadFile(m.Path(filepath.Join(dir.String(), name)))
	if err != nil {
		return nil
	}

	return ignore.CompileIgnoreLines(strings.Split(string(content), "\n")...)
}

func (s *walk) ignored(frames []frame, path m.Path, isDir bool) bool {
	for _, f := range frames {
		for _, matcher := range f.matchers {
			if matchRelative(matcher, f.dir, path, isDir) {
				return true
			}
		}
	}

	if s.policy.RawExcluded(s.root, path, isDir) {
		return true
	}

	return s.policy.Excludes(path, isDir)
}

// parentFrames builds the ignore frames of every directory above root,
// outermost first, and reports whether root lies inside a git tree. A
// directory gets .gitignore rules only at or below the nearest .git.
func (s *walk) parentFrames(root m.Path) ([]frame, bool) {
	chain := []string{root.String()}

	for current := root.String(); ; {
		parent := filepath.Dir(current)
		if parent == current {
			break
		}

		chain = append(chain, parent)
		current = parent
	}

	gitRoot := -1

	for i, dir := range chain {
		if _, err := s.FileInfo(m.Path(filepath.Join(dir, ".git"))); err == nil {
			gitRoot = i
			break
		}
	}

	frames := make([]frame, 0, len(chain)-1)
	for i := len(chain) - 1; i >= 1; i-- {
		frames = append(frames, s.frameFor(m.Path(chain[i]), gitRoot >= i))
	}

	return frames, gitRoot >= 0
}

func (s *walk) emit(path m.Path) bool {
	key := path
	if real, err := s.RealPath(path); err == nil {
		key = real
	}

	if s.seen[key] {
		return true
	}

	s.seen[key] = true

	return s.yield(m.CandidateFile{Path: path})
}
