// Package model defines the data structures shared by the scanners.
package model

// Path represents a file system path.
type Path string

// Origin identifies which scanned tree a file came from.
type Origin string

const (
	// OriginA is the first tree handed to the extractor (backend by default).
	OriginA Origin = "A"
	// OriginB is the second tree handed to the extractor (frontend by default).
	OriginB Origin = "B"
)

// FileRecord holds the declarations extracted from one scanned file.
// Records only live for the duration of a single run.
type FileRecord struct {
	Path         Path                `json:"path" yaml:"path"`
	RelPath      Path                `json:"relPath" yaml:"relPath"`
	Origin       Origin              `json:"origin" yaml:"origin"`
	Declarations []DeclarationRecord `json:"declarations" yaml:"declarations"`
}

// Tree describes one scanned source tree.
type Tree struct {
	Origin   Origin   `json:"origin" yaml:"origin"`
	Label    string   `json:"label" yaml:"label"`
	Root     Path     `json:"root" yaml:"root"`
	Patterns []string `json:"patterns" yaml:"patterns"`
}
