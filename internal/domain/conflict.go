package domain

import (
	"fmt"

	m "typelint.dev/pkg/typelint/internal/model"
)

type indexedDeclaration struct {
	record m.DeclarationRecord
	file   m.FileRecord
}

// AnalyzeConflicts reports names declared in both origins whose raw text
// differs in any byte. Within one origin a later file overwrites an earlier
// declaration of the same name, so only the last one is compared. Results
// follow the order in which names first appear in origin A.
func AnalyzeConflicts(filesA, filesB []m.FileRecord, labelA, labelB string) []m.ConflictRecord {
	indexA, orderA := indexDeclarations(filesA)
	indexB, _ := indexDeclarations(filesB)

	conflicts := make([]m.ConflictRecord, 0)

	for _, name := range orderA {
		declB, shared := indexB[name]
		if !shared {
			continue
		}

		declA := indexA[name]
		if declA.record.RawText == declB.record.RawText {
			continue
		}

		conflicts = append(conflicts, m.ConflictRecord{
			Name:      name,
			Reason:    fmt.Sprintf("definition differs between %s and %s", labelA, labelB),
			LocationA: m.Location{Origin: declA.file.Origin, Path: declA.file.RelPath},
			LocationB: m.Location{Origin: declB.file.Origin, Path: declB.file.RelPath},
			RawA:      declA.record.RawText,
			RawB:      declB.record.RawText,
		})
	}

	return conflicts
}

func indexDeclarations(files []m.FileRecord) (map[string]indexedDeclaration, []string) {
	index := make(map[string]indexedDeclaration)
	order := make([]string, 0)

	for _, file := range files {
		for _, decl := range file.Declarations {
			if _, seen := index[decl.Name]; !seen {
				order = append(order, decl.Name)
			}

			index[decl.Name] = indexedDeclaration{record: decl, file: file}
		}
	}

	return index, order
}
