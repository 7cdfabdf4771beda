package model

// DeclarationKind is the syntactic kind of an exported declaration.
type DeclarationKind string

const (
	// KindInterface is an `export interface` declaration.
	KindInterface DeclarationKind = "interface"
	// KindEnum is an `export enum` declaration.
	KindEnum DeclarationKind = "enum"
	// KindTypeAlias is an `export type X = ...;` declaration.
	KindTypeAlias DeclarationKind = "typeAlias"
	// KindClass is an `export class` declaration.
	KindClass DeclarationKind = "class"
)

// DeclarationKinds lists every kind in extraction order.
var DeclarationKinds = []DeclarationKind{KindInterface, KindEnum, KindTypeAlias, KindClass}

// DeclarationRecord is a single named declaration pulled out of a file.
// RawText is the verbatim matched text and is compared byte for byte.
type DeclarationRecord struct {
	Kind    DeclarationKind `json:"kind" yaml:"kind"`
	Name    string          `json:"name" yaml:"name"`
	RawText string          `json:"rawText" yaml:"rawText"`
}
