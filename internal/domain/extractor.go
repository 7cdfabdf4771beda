package domain

import (
	"regexp"

	m "typelint.dev/pkg/typelint/internal/model"
)

// Declaration patterns match an exported declaration, its name, and a body that
// ends at the first closing brace (or semicolon for type aliases). They do not
// track nesting: a body holding an object literal is cut at the inner `}`, and
// interfaces with an `extends` clause are not matched at all. Callers that need
// exact bodies use the strict parser instead.
var declarationPatterns = map[m.DeclarationKind]*regexp.Regexp{
	m.KindInterface: regexp.MustCompile(`export\s+interface\s+(\w+)(?:\s*<[^>]*>)?\s*\{[^}]*\}`),
	m.KindEnum:      regexp.MustCompile(`export\s+enum\s+(\w+)\s*\{[^}]*\}`),
	m.KindTypeAlias: regexp.MustCompile(`export\s+type\s+(\w+)(?:\s*<[^>]*>)?\s*=\s*[^;]+;`),
	m.KindClass:     regexp.MustCompile(`export\s+class\s+(\w+)(?:\s*<[^>]*>)?\s*(?:extends\s+\w+)?\s*\{[^}]*\}`),
}

// ExtractDeclarations returns every textual match of the given kind, in order
// of first occurrence. Unknown kinds yield nil.
func ExtractDeclarations(content string, kind m.DeclarationKind) []m.DeclarationRecord {
	pattern, ok := declarationPatterns[kind]
	if !ok {
		return nil
	}

	matches := pattern.FindAllStringSubmatchIndex(content, -1)
	records := make([]m.DeclarationRecord, 0, len(matches))

	for _, loc := range matches {
		records = append(records, m.DeclarationRecord{
			Kind:    kind,
			Name:    content[loc[2]:loc[3]],
			RawText: content[loc[0]:loc[1]],
		})
	}

	return records
}

// ExtractAll runs the extractor for every kind: interfaces, enums, type aliases
// and classes, in that order.
func ExtractAll(content string) []m.DeclarationRecord {
	var records []m.DeclarationRecord

	for _, kind := range m.DeclarationKinds {
		records = append(records, ExtractDeclarations(content, kind)...)
	}

	return records
}
