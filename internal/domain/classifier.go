package domain

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultExtensions are the TypeScript source extensions rewritten by default.
var DefaultExtensions = []string{".ts", ".tsx"}

// DefaultPruneNames are directory names never descended into.
var DefaultPruneNames = []string{"node_modules"}

type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Classifier decides which walked entries are pruned and which files are
// eligible for rewriting.
type Classifier struct {
	extensions map[string]struct{}
	pruneNames map[string]struct{}
	excludes   []compiledPattern
}

// NewClassifier builds a Classifier. Extensions may be given with or without
// the leading dot. Exclude patterns are globs matched against slash-separated
// paths relative to the walk root.
func NewClassifier(extensions, pruneNames, excludes []string) (*Classifier, error) {
	c := &Classifier{
		extensions: make(map[string]struct{}, len(extensions)),
		pruneNames: make(map[string]struct{}, len(pruneNames)),
	}

	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		c.extensions[ext] = struct{}{}
	}

	for _, name := range pruneNames {
		if name = strings.TrimSpace(name); name != "" {
			c.pruneNames[name] = struct{}{}
		}
	}

	for _, pattern := range excludes {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		c.excludes = append(c.excludes, compiledPattern{pattern: pattern, glob: g})
	}

	return c, nil
}

// Prune reports whether the entry at path must be skipped entirely. For a
// directory this means the walk must not descend into it. rel is the path
// relative to the walk root and is only used for exclude globs.
func (c *Classifier) Prune(path, rel string, isDir bool) bool {
	if _, ok := c.pruneNames[filepath.Base(path)]; ok {
		return true
	}

	if rel == "" || rel == "." {
		return false
	}

	rel = filepath.ToSlash(rel)
	for _, cp := range c.excludes {
		if cp.glob.Match(rel) {
			return true
		}

		// "dist/**" should also prune the "dist" directory itself.
		if isDir && cp.glob.Match(rel+"/**") {
			return true
		}
	}

	return false
}

// Eligible reports whether d is a regular file with a recognized extension.
func (c *Classifier) Eligible(path string, d fs.DirEntry) bool {
	if d == nil || !d.Type().IsRegular() {
		return false
	}

	_, ok := c.extensions[filepath.Ext(path)]

	return ok
}
