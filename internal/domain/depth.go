package domain

import (
	"path/filepath"
	"strings"

	m "srcalias.dev/pkg/srcalias/internal/model"
)

const (
	// AscentSegment is the parent-directory step in a relative import path.
	AscentSegment = "../"

	// DefaultSourceRoot is the directory name file depth is measured from.
	DefaultSourceRoot = "src"
)

// ImportDepth counts the ascent segments in the last whitespace-delimited
// token of line, which for an import statement is the quoted specifier.
func ImportDepth(line string) int {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0
	}

	return strings.Count(fields[len(fields)-1], AscentSegment)
}

// FileDepth returns how many directory levels separate path from its nearest
// ancestor named marker. A file directly inside marker has depth 0. Without
// such an ancestor the result is the number of levels up to the filesystem
// root.
func FileDepth(path m.Path, marker string) int {
	depth := 0
	current := filepath.Clean(string(path))

	for {
		parent := filepath.Dir(current)
		if parent == current {
			return depth
		}

		if filepath.Base(parent) == marker {
			return depth
		}

		current = parent
		depth++
	}
}
