package ast

import (
	"github.com/BabisK/snmpcodec/internal/types"
)

// Listener receives a stream of rule-entry/exit and field events from the
// parser. It never sees a concrete parse tree: a Listener implementation
// (the builder) must assemble whatever state it needs from the events
// themselves, typically with an explicit stack.
type Listener interface {
	// EnterRule announces the start of a production. name is nil for
	// productions that have no identifier of their own (e.g. RuleImports).
	EnterRule(rule Rule, name *Ident, span types.Span)
	// ExitRule announces that a production's tokens have all been consumed.
	ExitRule(rule Rule, span types.Span)
	// Field reports one attribute of the rule currently open on top of the
	// listener's own notion of "current rule" (the most recent EnterRule
	// without a matching ExitRule).
	Field(field Field, value any, span types.Span)
	// Imports reports a module's IMPORTS clause in one batch, since imports
	// are resolved as a unit rather than streamed member-by-member.
	Imports(imports []ImportClause, span types.Span)
	// Error reports a non-fatal diagnostic or a recovered parse error.
	Error(diag types.Diagnostic)
}

// DefinitionsKind distinguishes DEFINITIONS from PIB-DEFINITIONS.
type DefinitionsKind int

const (
	DefinitionsKindDefinitions DefinitionsKind = iota
	DefinitionsKindPibDefinitions
)

// ImportClause groups symbols imported from a single source module.
type ImportClause struct {
	Symbols    []Ident
	FromModule Ident
	Span       types.Span
}

// NewImportClause creates an ImportClause from its components.
func NewImportClause(symbols []Ident, fromModule Ident, span types.Span) ImportClause {
	return ImportClause{Symbols: symbols, FromModule: fromModule, Span: span}
}
