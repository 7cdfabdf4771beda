package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_Failed(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   bool
	}{
		{"empty", Report{}, false},
		{"warnings only", Report{Warnings: []Finding{{Category: CategoryUnusedImport}}}, false},
		{"issues", Report{Issues: []Finding{{Category: CategoryMissingFile}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.report.Failed())
		})
	}
}

func TestReport_CountByCategory(t *testing.T) {
	report := Report{
		Issues: []Finding{
			{Category: CategoryMissingFile},
			{Category: CategoryMissingFile},
			{Category: CategorySyntaxError},
		},
		Warnings: []Finding{{Category: CategoryUnusedImport}},
	}

	counts := report.CountByCategory()
	assert.Equal(t, [2]int{2, 0}, counts[CategoryMissingFile])
	assert.Equal(t, [2]int{1, 0}, counts[CategorySyntaxError])
	assert.Equal(t, [2]int{0, 1}, counts[CategoryUnusedImport])
	assert.NotContains(t, counts, CategoryMissingExport)
}

func TestDeclarationCount(t *testing.T) {
	files := []FileRecord{
		{Declarations: []DeclarationRecord{{Name: "A"}, {Name: "B"}}},
		{},
		{Declarations: []DeclarationRecord{{Name: "C"}}},
	}

	assert.Equal(t, 3, DeclarationCount(files))
}
