// Package walker enumerates the files linelint should look at below a root.
package walker

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/linelint/internal/constants"
	"github.com/wizzomafizzo/linelint/internal/logging"
	"github.com/wizzomafizzo/linelint/internal/project"
	"github.com/wizzomafizzo/linelint/internal/storage"
)

// Options controls which files a Walker yields.
type Options struct {
	// Exclude holds doublestar globs matched against slash-separated paths
	// relative to the walk root. A matching directory is pruned.
	Exclude []string
	// FollowSymlinks makes symlinked files and directories part of the walk.
	FollowSymlinks bool
	// GitIgnore enables .gitignore, .git/info/exclude and, together with
	// GlobalGitIgnore, the user's global excludes file.
	GitIgnore       bool
	GlobalGitIgnore bool
}

// Candidate is a file selected for linting. Content is valid UTF-8.
type Candidate struct {
	Path    string
	Content []byte
}

// TraversalError is a failure to walk a directory or read a file.
type TraversalError struct {
	Err  error
	Path string
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}

// Walker walks file trees on an afero filesystem.
type Walker struct {
	fs         afero.Fs
	loadGlobal func() ([]gitignore.Pattern, error)
	opts       Options
}

// New creates a walker over fs.
func New(fs afero.Fs, opts Options) *Walker {
	w := &Walker{fs: fs, opts: opts}
	w.loadGlobal = w.loadGlobalPatterns
	return w
}

// Walk yields every candidate below root in name order. Errors do not stop
// the walk. A root that is a regular file yields only that file.
func (w *Walker) Walk(ctx context.Context, root string) iter.Seq2[Candidate, error] {
	return func(yield func(Candidate, error) bool) {
		log := logging.Get(ctx).With().Str("component", "walker").Logger()

		if hasGitComponent(root) {
			log.Debug().Str("path", root).Msg("skipping root inside .git")
			return
		}

		info, err := w.fs.Stat(root)
		if err != nil {
			yield(Candidate{}, &TraversalError{Path: root, Err: err})
			return
		}

		t := &traversal{w: w, log: log, root: root, yield: yield}

		if !info.IsDir() {
			if skippedName(filepath.Base(root)) {
				log.Debug().Str("path", root).Msg("skipping file root")
				return
			}
			t.emit(root)
			return
		}

		var patterns []gitignore.Pattern
		if w.opts.GitIgnore {
			t.prefix, patterns = w.basePatterns(&log, root)
		}

		t.walkDir(root, nil, patterns, []os.FileInfo{info})
	}
}

type traversal struct {
	w     *Walker
	yield func(Candidate, error) bool
	root  string
	// prefix is the root's location relative to the git work tree, the
	// domain against which ignore patterns are matched.
	prefix []string
	log    zerolog.Logger
}

// walkDir visits dir and returns false once the consumer stops iterating.
func (t *traversal) walkDir(dir string, rel []string, patterns []gitignore.Pattern, ancestors []os.FileInfo) bool {
	if t.w.opts.GitIgnore {
		domain := slices.Concat(t.prefix, rel)
		patterns = append(slices.Clip(patterns), t.w.readIgnoreFile(&t.log, filepath.Join(dir, constants.GitIgnoreFile), domain)...)
	}
	matcher := gitignore.NewMatcher(patterns)

	entries, err := afero.ReadDir(t.w.fs, dir)
	if err != nil {
		return t.yield(Candidate{}, &TraversalError{Path: t.root, Err: err})
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)
		entryRel := append(slices.Clip(rel), name)

		if name == constants.GitDir {
			continue
		}

		info := entry
		if entry.Mode()&os.ModeSymlink != 0 {
			if !t.w.opts.FollowSymlinks {
				t.log.Debug().Str("path", path).Msg("skipping symlink")
				continue
			}
			info, err = t.w.fs.Stat(path)
			if err != nil {
				if !t.yield(Candidate{}, &TraversalError{Path: t.root, Err: err}) {
					return false
				}
				continue
			}
		}

		if len(patterns) > 0 && matcher.Match(slices.Concat(t.prefix, entryRel), info.IsDir()) {
			t.log.Debug().Str("path", path).Msg("ignored by gitignore")
			continue
		}
		if t.excluded(entryRel) {
			t.log.Debug().Str("path", path).Msg("excluded by pattern")
			continue
		}

		switch {
		case info.IsDir():
			if slices.ContainsFunc(ancestors, func(a os.FileInfo) bool { return os.SameFile(a, info) }) {
				t.log.Debug().Str("path", path).Msg("skipping symlink loop")
				continue
			}
			if !t.walkDir(path, entryRel, patterns, append(slices.Clip(ancestors), info)) {
				return false
			}
		case !info.Mode().IsRegular():
			continue
		case skippedName(name):
			t.log.Debug().Str("path", path).Msg("skipping file")
		default:
			if !t.emit(path) {
				return false
			}
		}
	}

	return true
}

// emit reads path and yields it when the content is valid UTF-8.
func (t *traversal) emit(path string) bool {
	content, err := afero.ReadFile(t.w.fs, path)
	if err != nil {
		return t.yield(Candidate{}, &TraversalError{Path: path, Err: err})
	}
	if !utf8.Valid(content) {
		t.log.Debug().Str("path", path).Msg("skipping non-UTF-8 file")
		return true
	}
	return t.yield(Candidate{Path: path, Content: content}, nil)
}

func (t *traversal) excluded(rel []string) bool {
	name := strings.Join(rel, "/")
	for _, pattern := range t.w.opts.Exclude {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// basePatterns collects the ignore patterns that apply above the root: the
// global excludes file, .git/info/exclude and .gitignore files of the
// root's ancestors inside the work tree.
func (w *Walker) basePatterns(log *zerolog.Logger, root string) ([]string, []gitignore.Pattern) {
	var patterns []gitignore.Pattern

	if w.opts.GlobalGitIgnore {
		global, err := w.loadGlobal()
		if err != nil {
			log.Warn().Err(err).Msg("failed to load global gitignore")
		}
		patterns = append(patterns, global...)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, patterns
	}
	gitRoot, ok := project.FindGitRoot(w.fs, absRoot)
	if !ok {
		return nil, patterns
	}

	if gitDir, ok := project.GitDir(w.fs, gitRoot); ok {
		patterns = append(patterns, w.readIgnoreFile(log, filepath.Join(gitDir, "info", "exclude"), nil)...)
	}

	relRoot, err := filepath.Rel(gitRoot, absRoot)
	if err != nil || relRoot == "." {
		return nil, patterns
	}
	prefix := strings.Split(filepath.ToSlash(relRoot), "/")

	// the root's own .gitignore is read by walkDir
	for i := range prefix {
		dir := filepath.Join(append([]string{gitRoot}, prefix[:i]...)...)
		patterns = append(patterns, w.readIgnoreFile(log, filepath.Join(dir, constants.GitIgnoreFile), prefix[:i])...)
	}

	return prefix, patterns
}

// loadGlobalPatterns reads core.excludesfile from ~/.gitconfig, falling back
// to $XDG_CONFIG_HOME/git/ignore when it is unset.
func (w *Walker) loadGlobalPatterns() ([]gitignore.Pattern, error) {
	patterns, err := gitignore.LoadGlobalPatterns(osfs.New("/"))
	if err != nil || len(patterns) > 0 {
		return patterns, err
	}
	return w.readIgnoreFile(nil, storage.GlobalGitIgnorePath(), nil), nil
}

// readIgnoreFile parses a gitignore-format file. A missing file yields no
// patterns.
func (w *Walker) readIgnoreFile(log *zerolog.Logger, path string, domain []string) []gitignore.Pattern {
	data, err := afero.ReadFile(w.fs, path)
	if err != nil {
		if log != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("failed to read ignore file")
		}
		return nil
	}
	return parsePatterns(string(data), domain)
}

func parsePatterns(data string, domain []string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, slices.Clone(domain)))
	}
	return patterns
}

func skippedName(name string) bool {
	if name == constants.GitModulesFile {
		return true
	}
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return slices.Contains(constants.SkippedExtensions, ext)
}

func hasGitComponent(path string) bool {
	return slices.Contains(strings.Split(filepath.ToSlash(path), "/"), constants.GitDir)
}
