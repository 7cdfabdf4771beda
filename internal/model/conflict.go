package model

// Location points at the file that holds a declaration.
type Location struct {
	Origin Origin `json:"origin" yaml:"origin"`
	Path   Path   `json:"path" yaml:"path"`
}

// ConflictRecord is produced when a name is declared in both origins with
// differing raw text.
type ConflictRecord struct {
	Name      string   `json:"name" yaml:"name"`
	Reason    string   `json:"reason" yaml:"reason"`
	LocationA Location `json:"locationA" yaml:"locationA"`
	LocationB Location `json:"locationB" yaml:"locationB"`
	RawA      string   `json:"rawA" yaml:"rawA"`
	RawB      string   `json:"rawB" yaml:"rawB"`
}

// Extraction is the outcome of scanning both trees.
type Extraction struct {
	TreeA     Tree             `json:"treeA" yaml:"treeA"`
	TreeB     Tree             `json:"treeB" yaml:"treeB"`
	FilesA    []FileRecord     `json:"filesA" yaml:"filesA"`
	FilesB    []FileRecord     `json:"filesB" yaml:"filesB"`
	Conflicts []ConflictRecord `json:"conflicts" yaml:"conflicts"`
}

// DeclarationCount returns the number of declarations across files.
func DeclarationCount(files []FileRecord) int {
	total := 0
	for _, f := range files {
		total += len(f.Declarations)
	}

	return total
}
