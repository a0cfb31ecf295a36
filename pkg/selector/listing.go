package selector

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

// recentWindow mirrors ls: timestamps within roughly six months show the
// time of day, older ones the year.
const recentWindow = 182 * 24 * time.Hour

type listingRow struct {
	mode    string
	size    string
	modTime string
	name    string
}

// formatListing renders the direct entries of dir in a long listing format:
// mode, size, modification time, name. Dot entries are left out as ls -l does.
func formatListing(dir string, entries []fs.DirEntry, now time.Time) string {
	var rows []listingRow
	sizeWidth := 0

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.Mode()&fs.ModeSymlink != 0 {
			if target, err := os.Readlink(filepath.Join(dir, name)); err == nil {
				name += " -> " + target
			}
		}
		row := listingRow{
			mode:    info.Mode().String(),
			size:    strconv.FormatInt(info.Size(), 10),
			modTime: formatModTime(info.ModTime(), now),
			name:    name,
		}
		sizeWidth = max(sizeWidth, len(row.size))
		rows = append(rows, row)
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 1, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%*s %s %s\n", row.mode, sizeWidth, row.size, row.modTime, row.name)
	}
	tw.Flush()
	return b.String()
}

func formatModTime(t, now time.Time) string {
	if d := now.Sub(t); d < recentWindow && d > -recentWindow {
		return t.Format("Jan _2 15:04")
	}
	return t.Format("Jan _2  2006")
}
