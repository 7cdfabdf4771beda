package adapter

import (
	"context"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	m "typelint.dev/pkg/typelint/internal/model"
)

// SyntaxProblem locates the first parse error found in a file.
type SyntaxProblem struct {
	Line   int
	Column int
}

// TypeScriptAdapter is the strict-parse counterpart of the textual scanner.
// It builds a real syntax tree, so nested bodies and heritage clauses are
// handled, at the cost of matching a different set of inputs.
type TypeScriptAdapter interface {
	// ExtractDeclarations returns exported interface, enum, type alias and
	// class declarations in source order.
	ExtractDeclarations(ctx context.Context, content []byte) ([]m.DeclarationRecord, error)

	// CheckSyntax returns the first parse error, or nil when the file parses cleanly.
	CheckSyntax(ctx context.Context, content []byte) (*SyntaxProblem, error)
}

// LocalTypeScriptAdapter provides a TypeScriptAdapter backed by tree-sitter.
type LocalTypeScriptAdapter struct {
	language *sitter.Language
}

// NewLocalTypeScriptAdapter constructs a LocalTypeScriptAdapter.
func NewLocalTypeScriptAdapter() *LocalTypeScriptAdapter {
	return &LocalTypeScriptAdapter{
		language: sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()),
	}
}

var declarationKindsByNode = map[string]m.DeclarationKind{
	"interface_declaration":      m.KindInterface,
	"enum_declaration":           m.KindEnum,
	"type_alias_declaration":     m.KindTypeAlias,
	"class_declaration":          m.KindClass,
	"abstract_class_declaration": m.KindClass,
}

func (a *LocalTypeScriptAdapter) parse(ctx context.Context, content []byte) (*sitter.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(a.language); err != nil {
		return nil, fmt.Errorf("set typescript language: %w", err)
	}

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, fmt.Errorf("typescript parse failed")
	}

	return tree, nil
}

// ExtractDeclarations walks export statements and records their declarations.
func (a *LocalTypeScriptAdapter) ExtractDeclarations(ctx context.Context, content []byte) ([]m.DeclarationRecord, error) {
	tree, err := a.parse(ctx, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var records []m.DeclarationRecord

	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil {
			return
		}

		if node.Kind() == "export_statement" {
			if record, ok := exportedDeclaration(node, content); ok {
				records = append(records, record)
			}

			return
		}

		for i := uint(0); i < node.NamedChildCount(); i++ {
			walk(node.NamedChild(i))
		}
	}

	walk(tree.RootNode())

	return records, nil
}

func exportedDeclaration(export *sitter.Node, content []byte) (m.DeclarationRecord, bool) {
	decl := export.ChildByFieldName("declaration")
	if decl == nil {
		return m.DeclarationRecord{}, false
	}

	kind, ok := declarationKindsByNode[decl.Kind()]
	if !ok {
		return m.DeclarationRecord{}, false
	}

	name := decl.ChildByFieldName("name")
	if name == nil {
		return m.DeclarationRecord{}, false
	}

	return m.DeclarationRecord{
		Kind:    kind,
		Name:    nodeText(name, content),
		RawText: nodeText(export, content),
	}, true
}

// CheckSyntax reports the first ERROR or MISSING node in the tree.
func (a *LocalTypeScriptAdapter) CheckSyntax(ctx context.Context, content []byte) (*SyntaxProblem, error) {
	tree, err := a.parse(ctx, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil, nil
	}

	bad := firstErrorNode(root)
	if bad == nil {
		bad = root
	}

	pos := bad.StartPosition()

	return &SyntaxProblem{Line: int(pos.Row) + 1, Column: int(pos.Column) + 1}, nil
}

func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}

	if !node.HasError() {
		return nil
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		if found := firstErrorNode(node.Child(i)); found != nil {
			return found
		}
	}

	return nil
}

func nodeText(node *sitter.Node, content []byte) string {
	return string(content[node.StartByte():node.EndByte()])
}
