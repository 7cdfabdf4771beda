package model

// Category classifies a finding produced by the consistency checker.
type Category string

// Finding categories.
const (
	CategoryMissingFile         Category = "missingFile"
	CategorySyntaxError         Category = "syntaxError"
	CategoryDuplicateDefinition Category = "duplicateDefinition"
	CategoryUnusedImport        Category = "unusedImport"
	CategoryNamingConvention    Category = "namingConvention"
	CategoryMissingExport       Category = "missingExport"
	CategoryFileReadError       Category = "fileReadError"
)

// Categories lists every category in taxonomy order.
var Categories = []Category{
	CategoryMissingFile,
	CategorySyntaxError,
	CategoryDuplicateDefinition,
	CategoryUnusedImport,
	CategoryNamingConvention,
	CategoryMissingExport,
	CategoryFileReadError,
}

// Finding is an issue or a warning. Which list holds it decides severity.
type Finding struct {
	Category Category `json:"category" yaml:"category"`
	Message  string   `json:"message" yaml:"message"`
	FilePath Path     `json:"file,omitempty" yaml:"file,omitempty"`
}

// Report accumulates findings across one validation run, in order.
type Report struct {
	Root     Path      `json:"root" yaml:"root"`
	Issues   []Finding `json:"issues" yaml:"issues"`
	Warnings []Finding `json:"warnings" yaml:"warnings"`
}

// Failed reports whether the run must exit non-zero. Warnings never fail a run.
func (r Report) Failed() bool {
	return len(r.Issues) > 0
}

// CountByCategory tallies issues and warnings per category.
func (r Report) CountByCategory() map[Category][2]int {
	counts := make(map[Category][2]int)

	for _, f := range r.Issues {
		c := counts[f.Category]
		c[0]++
		counts[f.Category] = c
	}

	for _, f := range r.Warnings {
		c := counts[f.Category]
		c[1]++
		counts[f.Category] = c
	}

	return counts
}
