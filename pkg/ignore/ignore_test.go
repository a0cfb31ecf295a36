package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func createTestDirectory(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for relPath, content := range files {
		path := filepath.Join(tempDir, relPath)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return tempDir
}

func TestLoadIgnoreFiles_BaseGitignore(t *testing.T) {
	assert := assert.New(t)

	dir := createTestDirectory(t, map[string]string{
		".gitignore": "*.log\nbuild/\n# comment\n\n!keep.log\n",
	})

	gi, err := LoadIgnoreFiles(dir, Options{Enabled: true}, zap.NewNop())
	require.NoError(t, err)

	assert.True(gi.MatchesPath("debug.log", false))
	assert.False(gi.MatchesPath("keep.log", false))
	assert.False(gi.MatchesPath("main.go", false))
	assert.True(gi.MatchesPath("build", true))
	assert.True(gi.MatchesPath("build/out.bin", false))
	assert.False(gi.MatchesPath("build", false), "directory-only pattern must not match a file")
	assert.False(gi.MatchesPath(".", true))
}

func TestLoadIgnoreFiles_MissingGitignore(t *testing.T) {
	dir := t.TempDir()

	gi, err := LoadIgnoreFiles(dir, Options{Enabled: true}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, gi.Len())
	assert.False(t, gi.MatchesPath("anything.txt", false))
}

func TestLoadIgnoreFiles_Disabled(t *testing.T) {
	dir := createTestDirectory(t, map[string]string{
		".gitignore": "*.log\n",
	})

	gi, err := LoadIgnoreFiles(dir, Options{Enabled: false}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, gi.MatchesPath("debug.log", false))
	assert.False(t, gi.MatchesPath(".git", true))
}

func TestLoadIgnoreFiles_GitDirAlwaysIgnored(t *testing.T) {
	dir := createTestDirectory(t, map[string]string{
		".git/HEAD": "ref: refs/heads/main\n",
	})

	gi, err := LoadIgnoreFiles(dir, Options{Enabled: true}, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, gi.MatchesPath(".git", true))
	assert.True(t, gi.MatchesPath("sub/.git", true))
}

func TestLoadIgnoreFiles_Nested(t *testing.T) {
	assert := assert.New(t)

	dir := createTestDirectory(t, map[string]string{
		"sub/.gitignore": "*.tmp\n",
		"sub/a.tmp":      "x",
	})

	nested, err := LoadIgnoreFiles(dir, Options{Enabled: true, Nested: true}, zap.NewNop())
	require.NoError(t, err)
	assert.False(nested.MatchesPath("sub/a.tmp", false), "nested files load only when their directory is entered")

	nested.LoadDir("sub")
	assert.True(nested.MatchesPath("sub/a.tmp", false))
	assert.False(nested.MatchesPath("a.tmp", false), "nested rules only apply below their directory")

	flat, err := LoadIgnoreFiles(dir, Options{Enabled: true}, zap.NewNop())
	require.NoError(t, err)
	flat.LoadDir("sub")
	assert.False(flat.MatchesPath("sub/a.tmp", false))
}

func TestLoadDir_UnreadableIgnoreFileKeepsOtherRules(t *testing.T) {
	assert := assert.New(t)

	dir := createTestDirectory(t, map[string]string{
		"app/.gitignore": "*.secret\n",
		"app/key.secret": "k",
	})
	// A directory named .gitignore opens but cannot be read as a file.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "broken", ".gitignore"), 0755))

	gi, err := LoadIgnoreFiles(dir, Options{Enabled: true, Nested: true}, zap.NewNop())
	require.NoError(t, err)

	gi.LoadDir("broken")
	gi.LoadDir("app")
	assert.True(gi.MatchesPath("app/key.secret", false))
	assert.Equal(1, gi.Len())
}

func TestLoadDir_OverridesKeepPrecedence(t *testing.T) {
	dir := createTestDirectory(t, map[string]string{
		"sub/.gitignore": "!keep.md\n",
	})

	gi, err := LoadIgnoreFiles(dir, Options{Enabled: true, Nested: true, Patterns: []string{"*.md"}}, zap.NewNop())
	require.NoError(t, err)
	gi.LoadDir("sub")

	assert.True(t, gi.MatchesPath("sub/keep.md", false), "command-line patterns outrank nested .gitignore files")
}

func TestLoadIgnoreFiles_BaseIgnoredByAncestor(t *testing.T) {
	assert := assert.New(t)

	repo := createTestDirectory(t, map[string]string{
		".git/HEAD":        "ref: refs/heads/main\n",
		".gitignore":       "build/\n*.tmp\n",
		"build/.gitignore": "*.o\n",
		"build/main.go":    "package main\n",
	})

	gi, err := LoadIgnoreFiles(filepath.Join(repo, "build"), Options{Enabled: true}, zap.NewNop())
	require.NoError(t, err)

	assert.False(gi.MatchesPath("main.go", false))
	assert.False(gi.MatchesPath("scratch.tmp", false), "parent rules are dropped once they ignore the base")
	assert.True(gi.MatchesPath("obj.o", false), "the base .gitignore still applies")
	assert.True(gi.MatchesPath(".git", true))
}

func TestLoadIgnoreFiles_AncestorsUpToRepositoryRoot(t *testing.T) {
	assert := assert.New(t)

	repo := createTestDirectory(t, map[string]string{
		".git/HEAD":              "ref: refs/heads/main\n",
		".gitignore":             "*.secret\n/top.txt\n",
		"pkg/.gitignore":         "generated/\n",
		"pkg/app/main.go":        "package main\n",
		"pkg/app/generated/x.go": "package generated\n",
	})
	base := filepath.Join(repo, "pkg", "app")

	gi, err := LoadIgnoreFiles(base, Options{Enabled: true, Nested: true}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(repo, gi.Root())
	assert.True(gi.MatchesPath("key.secret", false))
	assert.True(gi.MatchesPath("generated", true))
	assert.False(gi.MatchesPath("top.txt", false), "root-anchored pattern must not match inside pkg/app")
	assert.False(gi.MatchesPath("main.go", false))
}

func TestLoadIgnoreFiles_OutsideRepositoryIgnoresParents(t *testing.T) {
	parent := createTestDirectory(t, map[string]string{
		".gitignore": "*.go\n",
		"child/a.go": "package a\n",
	})

	gi, err := LoadIgnoreFiles(filepath.Join(parent, "child"), Options{Enabled: true}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, gi.MatchesPath("a.go", false))
}

func TestLoadIgnoreFiles_IgnoreFileAndPatterns(t *testing.T) {
	assert := assert.New(t)

	dir := createTestDirectory(t, map[string]string{
		".gitignore": "*.log\n",
	})
	extra := filepath.Join(t.TempDir(), "extra.ignore")
	require.NoError(t, os.WriteFile(extra, []byte("vendor/\n"), 0644))

	gi, err := LoadIgnoreFiles(dir, Options{
		Enabled:    true,
		IgnoreFile: extra,
		Patterns:   []string{"*.md", "!debug.log"},
	}, zap.NewNop())
	require.NoError(t, err)

	assert.True(gi.MatchesPath("vendor", true))
	assert.True(gi.MatchesPath("README.md", false))
	assert.False(gi.MatchesPath("debug.log", false), "command-line patterns take precedence")
	assert.True(gi.MatchesPath("other.log", false))
}

func TestLoadIgnoreFiles_PatternsApplyWhenDisabled(t *testing.T) {
	dir := createTestDirectory(t, map[string]string{
		".gitignore": "*.log\n",
	})

	gi, err := LoadIgnoreFiles(dir, Options{Patterns: []string{"*.md"}}, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, gi.MatchesPath("README.md", false))
	assert.False(t, gi.MatchesPath("debug.log", false))
}

func TestCompileIgnoreFile_Missing(t *testing.T) {
	gi := NewGitIgnore(t.TempDir(), nil)
	assert.NoError(t, gi.CompileIgnoreFile(filepath.Join(t.TempDir(), "nope")))
	assert.Equal(t, 0, gi.Len())
}

func TestSplitPath(t *testing.T) {
	assert.Nil(t, splitPath("."))
	assert.Nil(t, splitPath(""))
	assert.Equal(t, []string{"a", "b"}, splitPath(filepath.Join("a", "b")))
}
