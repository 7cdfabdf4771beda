package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	m "typelint.dev/pkg/typelint/internal/model"
)

func TestRenderTypesDoc(t *testing.T) {
	extraction := m.Extraction{
		TreeA: m.Tree{Origin: m.OriginA, Label: "backend"},
		TreeB: m.Tree{Origin: m.OriginB, Label: "frontend"},
		FilesA: []m.FileRecord{
			{RelPath: "user.entity.ts", Declarations: []m.DeclarationRecord{
				{Kind: m.KindInterface, Name: "User"},
				{Kind: m.KindEnum, Name: "Role"},
			}},
			{RelPath: "empty.dto.ts"},
		},
		FilesB: []m.FileRecord{
			{RelPath: "user.types.ts", Declarations: []m.DeclarationRecord{
				{Kind: m.KindTypeAlias, Name: "UserID"},
			}},
		},
	}

	generated := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	expected := "# Extracted Types Documentation\n\n" +
		"Generated on: 2026-03-01T12:30:00Z\n\n" +
		"## Backend Types\n\n" +
		"### user.entity.ts\n\n" +
		"- **User** (interface)\n" +
		"- **Role** (enum)\n\n" +
		"## Frontend Types\n\n" +
		"### user.types.ts\n\n" +
		"- **UserID** (type)\n\n"

	assert.Equal(t, expected, RenderTypesDoc(extraction, generated))
}

func TestDocKindName(t *testing.T) {
	tests := []struct {
		kind m.DeclarationKind
		want string
	}{
		{m.KindInterface, "interface"},
		{m.KindEnum, "enum"},
		{m.KindTypeAlias, "type"},
		{m.KindClass, "class"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, docKindName(tt.kind))
		})
	}
}
