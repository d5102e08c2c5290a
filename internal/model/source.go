// Package model defines the data structures shared by the import rewrite pass.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// FileEntry is a file discovered during traversal.
type FileEntry struct {
	Path Path
	Ext  string
}

// NewFileEntry builds a FileEntry for path, deriving its extension.
func NewFileEntry(path Path) FileEntry {
	return FileEntry{
		Path: path,
		Ext:  filepath.Ext(string(path)),
	}
}
