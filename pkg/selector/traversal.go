package selector

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

type walker struct {
	recursive bool
	filter    *NameFilter
	ignore    IgnoreParser
	logger    *zap.Logger
	now       time.Time
}

// visit reads dir and returns whether it is included together with the
// included directories of its subtree in pre-order. Inclusion is decided
// after the children have been visited so that an ancestor without eligible
// files of its own still appears when it leads to one.
//
// Only a failure to read the base directory is returned as an error; deeper
// unreadable directories are skipped.
func (w *walker) visit(dir, rel string, depth int) (bool, []Directory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if depth == 0 {
			return false, nil, fmt.Errorf("%w: %w", ErrInvalidPath, err)
		}
		w.logger.Warn("Skipping unreadable directory", zap.String("dir", dir), zap.Error(err))
		return false, nil, nil
	}
	if l, ok := w.ignore.(dirLoader); ok {
		l.LoadDir(rel)
	}

	var files []File
	var descendants []Directory

	for _, entry := range entries {
		name := entry.Name()
		entryPath := childPath(dir, name)
		entryRel := relJoin(rel, name)
		typ := entry.Type()

		switch {
		case typ&fs.ModeSymlink != 0:
			w.logger.Debug("Skipping symbolic link", zap.String("path", entryPath))

		case entry.IsDir():
			if !w.recursive {
				continue
			}
			if w.ignore.MatchesPath(entryRel, true) {
				w.logger.Debug("Skipping ignored directory", zap.String("dir", entryPath))
				continue
			}
			included, sub, _ := w.visit(entryPath, entryRel, depth+1)
			if included {
				descendants = append(descendants, sub...)
			}

		case typ.IsRegular():
			if w.ignore.MatchesPath(entryRel, false) {
				w.logger.Debug("Skipping ignored file", zap.String("file", entryPath))
				continue
			}
			if !w.filter.Match(name) {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				w.logger.Warn("Failed to stat file", zap.String("file", entryPath), zap.Error(err))
				continue
			}
			files = append(files, File{
				Path:    entryPath,
				RelPath: entryRel,
				Name:    name,
				Size:    info.Size(),
			})

		default:
			w.logger.Debug("Skipping non-regular file", zap.String("path", entryPath), zap.Stringer("mode", typ))
		}
	}

	if len(files) == 0 && len(descendants) == 0 {
		return false, nil, nil
	}

	self := Directory{
		Path:    dir,
		RelPath: rel,
		Depth:   depth,
		Listing: formatListing(dir, entries, w.now),
		Files:   files,
	}
	return true, append([]Directory{self}, descendants...), nil
}

// childPath appends name to dir without cleaning dir, so a base given as "."
// yields "./name".
func childPath(dir, name string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}
