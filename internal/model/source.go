// Package model defines the data structures shared by the codemod commands.
package model

import "os"

// Path represents a file system path.
type Path string

// SourceFile is an unstructured text file loaded from disk.
type SourceFile struct {
	Path    Path
	Content string
	Mode    os.FileMode
}

// Change records the content of a file before and after a rewrite.
type Change struct {
	Path   Path
	Before string
	After  string
}

// Changed reports whether the rewrite altered the content.
func (c Change) Changed() bool {
	return c.Before != c.After
}
