package model

// Release describes a finished or simulated package release.
type Release struct {
	PreviousVersion string `json:"previousVersion" yaml:"previousVersion"`
	Version         string `json:"version" yaml:"version"`
	Changelog       string `json:"changelog" yaml:"changelog"`
	DryRun          bool   `json:"dryRun" yaml:"dryRun"`
	// Conflicts found by the extraction run during the release.
	Conflicts []ConflictRecord `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
}
