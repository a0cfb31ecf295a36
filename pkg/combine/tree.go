// File: pkg/combine/tree.go
package combine

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"dirclip/pkg/selector"
)

type treeNode struct {
	name  string
	isDir bool
	rel   string
}

// GenerateTree draws the selected directories and files as a tree rooted at
// the base directory. Only included directories and eligible files appear.
func GenerateTree(sel *selector.Selection) string {
	children := make(map[string][]treeNode)
	for _, dir := range sel.Directories {
		if dir.RelPath != "." {
			parent := filepath.Dir(dir.RelPath)
			children[parent] = append(children[parent], treeNode{name: filepath.Base(dir.RelPath), isDir: true, rel: dir.RelPath})
		}
		for _, file := range dir.Files {
			children[dir.RelPath] = append(children[dir.RelPath], treeNode{name: file.Name, rel: file.RelPath})
		}
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString("=== Tree ===\n")
	fmt.Fprintf(&treeBuilder, "%s/\n", strings.TrimSuffix(sel.BaseDir, string(filepath.Separator)))
	generateTreeRecursively(&treeBuilder, children, ".", "")
	return treeBuilder.String()
}

// generateTreeRecursively writes the children of rel, directories first, then
// files, each group sorted case-insensitively.
func generateTreeRecursively(b *strings.Builder, children map[string][]treeNode, rel, prefix string) {
	entries := children[rel]
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].isDir != entries[j].isDir {
			return entries[i].isDir
		}
		return strings.ToLower(entries[i].name) < strings.ToLower(entries[j].name)
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.isDir {
			fmt.Fprintf(b, "%s%s%s/\n", prefix, connector, entry.name)
			generateTreeRecursively(b, children, entry.rel, prefix+extension)
			continue
		}
		fmt.Fprintf(b, "%s%s%s\n", prefix, connector, entry.name)
	}
}
