package selector

// Config holds the traversal configuration for one run.
type Config struct {
	BaseDir        string   // Traversal root; "" means the current directory.
	Recursive      bool     // Walk subdirectories instead of only the base directory.
	Filter         string   // Glob matched against file names; "" matches all.
	IgnoreEnabled  bool     // Apply .gitignore rules and the extra ignore file.
	IgnoreFile     string   // Extra gitignore-syntax file, opened as given; its patterns are relative to the base directory.
	GlobalExcludes bool     // Apply the user's global git excludes file.
	Exclude        []string // Extra gitignore-style patterns, applied even without IgnoreEnabled.
}

// File is an eligible file of an included directory.
type File struct {
	Path    string // Path as reached from the base directory.
	RelPath string // Path relative to the base directory.
	Name    string // Base name.
	Size    int64  // Size in bytes at traversal time.
}

// Directory is an included directory together with its eligible files.
type Directory struct {
	Path    string // Path as reached from the base directory.
	RelPath string // Path relative to the base directory; "." for the base.
	Depth   int    // Depth relative to the base directory.
	Listing string // Long-format listing of the direct entries, unfiltered.
	Files   []File // Eligible files in filesystem order.
}

// Selection is the ordered result of a traversal: included directories in
// pre-order, each followed by its own eligible files.
type Selection struct {
	BaseDir     string
	Directories []Directory
}

// Empty reports whether no directory was included.
func (s *Selection) Empty() bool {
	return len(s.Directories) == 0
}

// FileCount returns the number of eligible files across all directories.
func (s *Selection) FileCount() int {
	n := 0
	for _, d := range s.Directories {
		n += len(d.Files)
	}
	return n
}
