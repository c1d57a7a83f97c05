// Package model defines the data structures shared by the fold classifier,
// the workflows and the adapters.
package model

// Path represents a file system path.
type Path string

// File represents a source code file on disk.
type File struct {
	FullPath  Path
	ShortPath Path
	Hash      string
}

// Source is an Elixir source file discovered for classification.
type Source struct {
	Origin *File
}
