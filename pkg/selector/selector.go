// Package selector walks a base directory and decides which directories and
// files make it into a snapshot, and in which order.
package selector

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dirclip/pkg/ignore"

	"go.uber.org/zap"
)

// IgnoreParser reports whether a path relative to the base directory is
// excluded by ignore rules.
type IgnoreParser interface {
	MatchesPath(path string, isDir bool) bool
}

// dirLoader is implemented by ignore parsers that read per-directory rule
// files as the walk enters each directory.
type dirLoader interface {
	LoadDir(rel string)
}

// Selector produces a Selection from a Config.
type Selector struct {
	logger *zap.Logger
	now    func() time.Time
}

// New returns a Selector logging through logger.
func New(logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{
		logger: logger,
		now:    time.Now,
	}
}

// Select validates cfg, loads ignore rules and walks the base directory.
// Configuration errors (ErrInvalidPath, ErrInvalidFilter) are returned before
// any traversal happens. An empty Selection is not an error.
func (s *Selector) Select(cfg Config) (*Selection, error) {
	base := cfg.BaseDir
	if base == "" {
		base = "."
	}

	if err := validateBaseDir(base); err != nil {
		s.logger.Error("Invalid base directory", zap.String("baseDir", base), zap.Error(err))
		return nil, err
	}

	filter, err := NewNameFilter(cfg.Filter)
	if err != nil {
		s.logger.Error("Invalid filter pattern", zap.String("filter", cfg.Filter), zap.Error(err))
		return nil, err
	}

	gi, err := ignore.LoadIgnoreFiles(base, ignore.Options{
		Enabled:        cfg.IgnoreEnabled,
		Nested:         cfg.Recursive,
		GlobalExcludes: cfg.GlobalExcludes,
		IgnoreFile:     cfg.IgnoreFile,
		Patterns:       cfg.Exclude,
	}, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load ignore rules: %w", err)
	}

	return s.SelectWith(base, cfg.Recursive, filter, gi)
}

// SelectWith walks base with an already built filter and ignore parser.
func (s *Selector) SelectWith(base string, recursive bool, filter *NameFilter, gi IgnoreParser) (*Selection, error) {
	s.logger.Debug("Starting selection",
		zap.String("baseDir", base),
		zap.Bool("recursive", recursive),
		zap.String("filter", filter.Pattern()))

	w := &walker{
		recursive: recursive,
		filter:    filter,
		ignore:    gi,
		logger:    s.logger,
		now:       s.now(),
	}
	_, dirs, err := w.visit(base, ".", 0)
	if err != nil {
		return nil, err
	}

	sel := &Selection{BaseDir: base, Directories: dirs}
	s.logger.Debug("Completed selection",
		zap.Int("directories", len(sel.Directories)),
		zap.Int("files", sel.FileCount()))
	return sel, nil
}

func validateBaseDir(base string) error {
	info, err := os.Stat(base)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidPath, base)
	}
	return nil
}

// relJoin joins a base-relative directory and a child name.
func relJoin(rel, name string) string {
	if rel == "." {
		return name
	}
	return filepath.Join(rel, name)
}
