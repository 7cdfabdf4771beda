package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "typelint.dev/pkg/typelint/internal/model"
)

func TestExtractDeclarations(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		kind     m.DeclarationKind
		expected []m.DeclarationRecord
	}{
		{
			name:    "interface",
			content: "export interface User {\n  id: string;\n}\n",
			kind:    m.KindInterface,
			expected: []m.DeclarationRecord{
				{Kind: m.KindInterface, Name: "User", RawText: "export interface User {\n  id: string;\n}"},
			},
		},
		{
			name:    "generic interface",
			content: "export interface Page<T> { items: T[] }",
			kind:    m.KindInterface,
			expected: []m.DeclarationRecord{
				{Kind: m.KindInterface, Name: "Page", RawText: "export interface Page<T> { items: T[] }"},
			},
		},
		{
			name:     "interface with extends is not matched",
			content:  "export interface Admin extends User { role: string }",
			kind:     m.KindInterface,
			expected: []m.DeclarationRecord{},
		},
		{
			name:    "nested braces truncate the body",
			content: "export interface Config { nested: { a: string }; b: number }",
			kind:    m.KindInterface,
			expected: []m.DeclarationRecord{
				{Kind: m.KindInterface, Name: "Config", RawText: "export interface Config { nested: { a: string }"},
			},
		},
		{
			name:    "enum",
			content: "export enum LoanStatus {\n  PENDING = 'pending',\n  APPROVED = 'approved',\n}",
			kind:    m.KindEnum,
			expected: []m.DeclarationRecord{
				{Kind: m.KindEnum, Name: "LoanStatus", RawText: "export enum LoanStatus {\n  PENDING = 'pending',\n  APPROVED = 'approved',\n}"},
			},
		},
		{
			name:    "type alias stops at the first semicolon",
			content: "export type ID = string;\nexport type Handler<T> = (value: T) => void;",
			kind:    m.KindTypeAlias,
			expected: []m.DeclarationRecord{
				{Kind: m.KindTypeAlias, Name: "ID", RawText: "export type ID = string;"},
				{Kind: m.KindTypeAlias, Name: "Handler", RawText: "export type Handler<T> = (value: T) => void;"},
			},
		},
		{
			name:    "class with extends",
			content: "export class LoginDto extends BaseDto {\n  email: string;\n}",
			kind:    m.KindClass,
			expected: []m.DeclarationRecord{
				{Kind: m.KindClass, Name: "LoginDto", RawText: "export class LoginDto extends BaseDto {\n  email: string;\n}"},
			},
		},
		{
			name:     "non exported declarations are ignored",
			content:  "interface Hidden { a: string }",
			kind:     m.KindInterface,
			expected: []m.DeclarationRecord{},
		},
		{
			name:     "unknown kind",
			content:  "export interface User { id: string }",
			kind:     m.DeclarationKind("function"),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractDeclarations(tt.content, tt.kind))
		})
	}
}

func TestExtractDeclarations_FirstOccurrenceOrder(t *testing.T) {
	content := "export interface B { b: string }\nexport interface A { a: string }\nexport interface C { c: string }"

	records := ExtractDeclarations(content, m.KindInterface)
	require.Len(t, records, 3)

	assert.Equal(t, "B", records[0].Name)
	assert.Equal(t, "A", records[1].Name)
	assert.Equal(t, "C", records[2].Name)
}

func TestExtractAll_KindOrder(t *testing.T) {
	content := "export class Service { run() {} }\n" +
		"export type ID = string;\n" +
		"export enum Role { ADMIN }\n" +
		"export interface User { id: ID }\n"

	records := ExtractAll(content)
	require.Len(t, records, 4)

	kinds := make([]m.DeclarationKind, 0, len(records))
	for _, record := range records {
		kinds = append(kinds, record.Kind)
	}

	assert.Equal(t, []m.DeclarationKind{m.KindInterface, m.KindEnum, m.KindTypeAlias, m.KindClass}, kinds)
}

func TestExtractAll_Empty(t *testing.T) {
	assert.Empty(t, ExtractAll("const x = 1;\n"))
}
