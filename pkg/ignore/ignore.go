// Package ignore decides which paths under a base directory are excluded by
// gitignore-style rules.
package ignore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"go.uber.org/zap"
)

const (
	gitDir        = ".git"
	gitignoreFile = ".gitignore"
)

// Options controls which rule sources are loaded.
type Options struct {
	Enabled        bool     // Load .gitignore files and the extra ignore file.
	Nested         bool     // Accept .gitignore files below the base directory via LoadDir.
	GlobalExcludes bool     // Load the user's core.excludesFile from ~/.gitconfig.
	IgnoreFile     string   // Extra ignore file, patterns relative to the base directory.
	Patterns       []string // Extra patterns; applied even when Enabled is false.
}

// GitIgnore matches paths relative to a base directory against the loaded
// patterns. Patterns are evaluated against paths rooted at the enclosing
// repository so that ancestor .gitignore files keep their own anchoring.
type GitIgnore struct {
	root       string   // Repository root, or the base directory outside a repository.
	domain     []string // Base directory relative to root.
	rootFS     billy.Filesystem
	patterns   []gitignore.Pattern // .gitignore sources, lowest precedence first.
	overrides  []gitignore.Pattern // Extra ignore file and command-line patterns.
	matcher    gitignore.Matcher
	nested     bool
	skipGitDir bool
	logger     *zap.Logger
}

// NewGitIgnore returns an empty GitIgnore rooted at base. It matches nothing
// until patterns are compiled into it.
func NewGitIgnore(base string, logger *zap.Logger) *GitIgnore {
	if logger == nil {
		logger = zap.NewNop()
	}
	gi := &GitIgnore{
		root:   base,
		rootFS: osfs.New(base),
		logger: logger,
	}
	gi.rebuild()
	return gi
}

// LoadIgnoreFiles collects ignore patterns for baseDir. Sources are added from
// lowest to highest precedence: global excludes, ancestor .gitignore files up
// to the repository root, the base .gitignore, the extra ignore file, then
// opts.Patterns. With opts.Nested, .gitignore files below the base are added
// later through LoadDir as the walk reaches them. Missing files are not
// errors.
//
// When the global or ancestor rules ignore the base directory itself they are
// dropped, so an explicitly chosen base is never emptied by its parents.
func LoadIgnoreFiles(baseDir string, opts Options, logger *zap.Logger) (*GitIgnore, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base directory: %w", err)
	}

	gi := NewGitIgnore(absBase, logger)
	if opts.Enabled {
		gi.root = findRepositoryRoot(absBase)
		gi.domain = splitPath(relOrDot(gi.root, absBase))
		gi.rootFS = osfs.New(gi.root)
		gi.nested = opts.Nested
		gi.skipGitDir = true

		if opts.GlobalExcludes {
			gi.loadGlobalExcludes()
		}
		gi.loadAncestors()
		gi.dropIfBaseIgnored()
		if err := gi.compileFS(gi.domain); err != nil {
			gi.logger.Warn("Failed to read base ignore file", zap.Error(err))
		}

		if opts.IgnoreFile != "" {
			if err := gi.CompileIgnoreFile(opts.IgnoreFile); err != nil {
				gi.logger.Warn("Failed to load ignore file", zap.String("file", opts.IgnoreFile), zap.Error(err))
			}
		}
	}

	if len(opts.Patterns) > 0 {
		gi.CompileIgnoreLines(opts.Patterns...)
		gi.logger.Debug("Added command-line ignore patterns", zap.Int("count", len(opts.Patterns)))
	}

	gi.logger.Debug("Finished loading ignore rules",
		zap.String("root", gi.root),
		zap.Strings("domain", gi.domain),
		zap.Int("totalPatterns", gi.Len()))
	return gi, nil
}

// CompileIgnoreLines parses gitignore lines relative to the base directory.
// Blank lines and comments are skipped. These patterns take precedence over
// every .gitignore file, including ones loaded later by LoadDir.
func (gi *GitIgnore) CompileIgnoreLines(lines ...string) {
	gi.overrides = append(gi.overrides, parseLines(gi.domain, lines)...)
	gi.rebuild()
}

// CompileIgnoreFile reads a gitignore-syntax file. The path is opened as
// given (relative paths resolve against the working directory); the patterns
// inside are relative to the base directory. A missing file is skipped.
func (gi *GitIgnore) CompileIgnoreFile(filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			gi.logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", filePath))
			return nil
		}
		return err
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return fmt.Errorf("failed to read ignore file %s: %w", filePath, err)
	}
	gi.CompileIgnoreLines(lines...)
	gi.logger.Debug("Compiled ignore file", zap.String("filePath", filePath), zap.Int("lineCount", len(lines)))
	return nil
}

// LoadDir compiles the .gitignore of rel, a directory relative to the base,
// when nested loading is enabled. A file that cannot be read is logged and
// skipped; rules already loaded stay in place.
func (gi *GitIgnore) LoadDir(rel string) {
	parts := splitPath(rel)
	if !gi.nested || len(parts) == 0 {
		return
	}
	domain := make([]string, 0, len(gi.domain)+len(parts))
	domain = append(domain, gi.domain...)
	domain = append(domain, parts...)
	if err := gi.compileFS(domain); err != nil {
		gi.logger.Warn("Failed to read nested ignore file", zap.String("dir", rel), zap.Error(err))
	}
}

// MatchesPath reports whether relPath, relative to the base directory, is
// ignored. The base directory itself is never ignored.
func (gi *GitIgnore) MatchesPath(relPath string, isDir bool) bool {
	parts := splitPath(relPath)
	if len(parts) == 0 {
		return false
	}
	if gi.skipGitDir && isDir && parts[len(parts)-1] == gitDir {
		return true
	}

	full := make([]string, 0, len(gi.domain)+len(parts))
	full = append(full, gi.domain...)
	full = append(full, parts...)
	return gi.matcher.Match(full, isDir)
}

// Len returns the number of compiled patterns.
func (gi *GitIgnore) Len() int {
	return len(gi.patterns) + len(gi.overrides)
}

// Root returns the directory patterns are anchored at.
func (gi *GitIgnore) Root() string {
	return gi.root
}

func (gi *GitIgnore) loadGlobalExcludes() {
	ps, err := gitignore.LoadGlobalPatterns(osfs.New(string(filepath.Separator)))
	if err != nil {
		gi.logger.Warn("Failed to load global git excludes", zap.Error(err))
		return
	}
	gi.patterns = append(gi.patterns, ps...)
	gi.rebuild()
	gi.logger.Debug("Loaded global git excludes", zap.Int("count", len(ps)))
}

// loadAncestors compiles .gitignore files between the repository root and the
// base directory, excluding the base itself.
func (gi *GitIgnore) loadAncestors() {
	for i := 0; i < len(gi.domain); i++ {
		domain := gi.domain[:i]
		if err := gi.compileFS(domain); err != nil {
			gi.logger.Warn("Failed to read ancestor ignore file",
				zap.String("dir", filepath.Join(gi.root, filepath.Join(domain...))),
				zap.Error(err))
		}
	}
}

// dropIfBaseIgnored discards the patterns loaded so far when they ignore the
// base directory or one of its parents below the repository root.
func (gi *GitIgnore) dropIfBaseIgnored() {
	if len(gi.patterns) == 0 {
		return
	}
	for i := range gi.domain {
		if gi.matcher.Match(gi.domain[:i+1], true) {
			gi.logger.Debug("Base directory is ignored by parent rules, skipping them",
				zap.Strings("domain", gi.domain),
				zap.Int("dropped", len(gi.patterns)))
			gi.patterns = nil
			gi.rebuild()
			return
		}
	}
}

// compileFS reads the .gitignore inside the directory at domain.
func (gi *GitIgnore) compileFS(domain []string) error {
	name := gi.rootFS.Join(append(append([]string{}, domain...), gitignoreFile)...)
	f, err := gi.rootFS.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return err
	}
	gi.patterns = append(gi.patterns, parseLines(domain, lines)...)
	gi.rebuild()
	gi.logger.Debug("Compiled .gitignore", zap.String("file", name), zap.Int("lineCount", len(lines)))
	return nil
}

func parseLines(domain []string, lines []string) []gitignore.Pattern {
	var ps []gitignore.Pattern
	for _, line := range lines {
		trimmed := strings.TrimRight(line, "\r")
		if strings.TrimSpace(trimmed) == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(trimmed, append([]string{}, domain...)))
	}
	return ps
}

func (gi *GitIgnore) rebuild() {
	all := make([]gitignore.Pattern, 0, len(gi.patterns)+len(gi.overrides))
	all = append(all, gi.patterns...)
	all = append(all, gi.overrides...)
	gi.matcher = gitignore.NewMatcher(all)
}

// findRepositoryRoot returns the nearest ancestor of dir (or dir itself)
// containing a .git entry, or dir when there is none.
func findRepositoryRoot(dir string) string {
	current := dir
	for {
		if _, err := os.Lstat(filepath.Join(current, gitDir)); err == nil {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return dir
		}
		current = parent
	}
}

func relOrDot(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "."
	}
	return rel
}

// splitPath turns a relative path into its components; "." and "" are empty.
func splitPath(p string) []string {
	p = filepath.ToSlash(filepath.Clean(p))
	if p == "." || p == "" {
		return nil
	}
	return strings.Split(strings.Trim(p, "/"), "/")
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
