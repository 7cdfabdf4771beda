package domain

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "typelint.dev/pkg/typelint/internal/model"
)

const examplesDir = "../../examples"

func TestExamples_SharedTypesPassCheck(t *testing.T) {
	for _, strict := range []bool{false, true} {
		report := runCheck(t, CheckArgs{
			Root: m.Path(filepath.Join(examplesDir, "shared-types", "src")),
			RequiredFiles: []string{
				"index.ts",
				"core/index.ts",
				"core/entities/index.ts",
				"core/enums/index.ts",
				"core/interfaces/index.ts",
				"modules/index.ts",
				"utils/index.ts",
			},
			AggregatorName: DefaultAggregatorName,
			DirectoryIndex: true,
			Strict:         strict,
		})

		assert.False(t, report.Failed(), "strict=%v issues: %v", strict, report.Issues)
		assert.Empty(t, report.Warnings, "strict=%v", strict)
	}
}

func TestExamples_SharedTypesNeedDirectoryIndex(t *testing.T) {
	report := runCheck(t, CheckArgs{
		Root:           m.Path(filepath.Join(examplesDir, "shared-types", "src")),
		AggregatorName: DefaultAggregatorName,
	})

	var messages []string
	for _, finding := range findingsOf(report.Issues, m.CategoryMissingExport) {
		messages = append(messages, finding.Message)
	}

	assert.Contains(t, messages, "Exported file does not exist: ./core")
	assert.Contains(t, messages, "Exported file does not exist: ./entities")
	assert.NotContains(t, messages, "Exported file does not exist: ./user")
}

func TestExamples_BackendFrontendConflicts(t *testing.T) {
	extraction, err := newTestExtractor().Extract(context.Background(), ExtractArgs{
		TreeA: m.Tree{
			Origin:   m.OriginA,
			Label:    "backend",
			Root:     m.Path(filepath.Join(examplesDir, "backend", "src")),
			Patterns: []string{"*.dto.ts", "*.entity.ts", "*.interface.ts"},
		},
		TreeB: m.Tree{
			Origin:   m.OriginB,
			Label:    "frontend",
			Root:     m.Path(filepath.Join(examplesDir, "frontend", "src")),
			Patterns: []string{"*.types.ts", "*.interface.ts"},
		},
	})
	require.NoError(t, err)

	require.Len(t, extraction.FilesA, 2)
	require.Len(t, extraction.FilesB, 2)
	require.Len(t, extraction.Conflicts, 1)
	assert.Equal(t, "User", extraction.Conflicts[0].Name)
	assert.Equal(t, "definition differs between backend and frontend", extraction.Conflicts[0].Reason)
}
