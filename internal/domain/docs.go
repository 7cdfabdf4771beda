package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"typelint.dev/pkg/typelint/internal/adapter"
	m "typelint.dev/pkg/typelint/internal/model"
)

var docKindNames = map[m.DeclarationKind]string{
	m.KindTypeAlias: "type",
}

// RenderTypesDoc renders the markdown listing of every declaration found by an
// extraction. Files without declarations are left out.
func RenderTypesDoc(extraction m.Extraction, generated time.Time) string {
	var b strings.Builder

	b.WriteString("# Extracted Types Documentation\n\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", generated.Format(time.RFC3339))

	writeTreeSection(&b, extraction.TreeA, extraction.FilesA)
	writeTreeSection(&b, extraction.TreeB, extraction.FilesB)

	return b.String()
}

func writeTreeSection(b *strings.Builder, tree m.Tree, files []m.FileRecord) {
	fmt.Fprintf(b, "## %s Types\n\n", titleCase(tree.Label))

	for _, file := range files {
		if len(file.Declarations) == 0 {
			continue
		}

		fmt.Fprintf(b, "### %s\n\n", file.RelPath)

		for _, decl := range file.Declarations {
			fmt.Fprintf(b, "- **%s** (%s)\n", decl.Name, docKindName(decl.Kind))
		}

		b.WriteString("\n")
	}
}

func titleCase(label string) string {
	if label == "" {
		return label
	}

	return strings.ToUpper(label[:1]) + label[1:]
}

// docKindName is the keyword a declaration kind is listed under.
func docKindName(kind m.DeclarationKind) string {
	if name, ok := docKindNames[kind]; ok {
		return name
	}

	return string(kind)
}

// writeTypesDoc renders the extraction to path. An empty path skips it.
func writeTypesDoc(ctx context.Context, fsAdapter adapter.SourceFSAdapter, path m.Path, extraction m.Extraction, now time.Time) error {
	if path == "" {
		return nil
	}

	doc := RenderTypesDoc(extraction, now)
	if err := fsAdapter.WriteFile(ctx, path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write types documentation: %w", err)
	}

	return nil
}
