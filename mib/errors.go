package mib

import "fmt"

// ErrorKind classifies the structured errors this package raises while
// building or resolving a Store. Each kind corresponds to a specific
// failure mode named in the compiler's design: duplicate bindings,
// unresolved cross-module references, cyclic REFERENCED chains, constraint
// violations encountered while decoding an index, and malformed textual
// syntax surfaced by the lexer/parser layers.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrDuplicateModule
	ErrDuplicateSymbol
	ErrUnresolvedImport
	ErrTypeCycle
	ErrConstraintViolation
	ErrTrailingIndex
	ErrUnknownSmiType
	ErrLexError
	ErrParseError
	ErrInvalidAssignment
)

func (k ErrorKind) String() string {
	switch k {
	case ErrDuplicateModule:
		return "DuplicateModule"
	case ErrDuplicateSymbol:
		return "DuplicateSymbol"
	case ErrUnresolvedImport:
		return "UnresolvedImport"
	case ErrTypeCycle:
		return "TypeCycle"
	case ErrConstraintViolation:
		return "ConstraintViolation"
	case ErrTrailingIndex:
		return "TrailingIndex"
	case ErrUnknownSmiType:
		return "UnknownSmiType"
	case ErrLexError:
		return "LexError"
	case ErrParseError:
		return "ParseError"
	case ErrInvalidAssignment:
		return "InvalidAssignment"
	default:
		return "Unknown"
	}
}

// Error is the structured error type returned by Store construction and
// resolution. It carries a Kind for errors.Is-style discrimination, the
// Symbol the error concerns (zero value if not symbol-specific), and an
// optional Position for lex/parse errors.
type Error struct {
	Kind     ErrorKind
	Symbol   Symbol
	Module   string
	Line     int
	Column   int
	Message  string
	Wrapped  error
}

func (e *Error) Error() string {
	var loc string
	switch {
	case e.Line > 0:
		loc = fmt.Sprintf(" at %s:%d:%d", e.Module, e.Line, e.Column)
	case !e.Symbol.IsZero():
		loc = " (" + e.Symbol.String() + ")"
	case e.Module != "":
		loc = " (" + e.Module + ")"
	}
	if e.Message != "" {
		return fmt.Sprintf("%s%s: %s", e.Kind, loc, e.Message)
	}
	return fmt.Sprintf("%s%s", e.Kind, loc)
}

func (e *Error) Unwrap() error { return e.Wrapped }

// Is reports whether target is an *Error with the same Kind, allowing
// errors.Is(err, &mib.Error{Kind: mib.ErrDuplicateSymbol}) style checks.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

func newDuplicateModuleErr(name string) error {
	return &Error{Kind: ErrDuplicateModule, Module: name, Message: "module already loaded"}
}

func newDuplicateSymbolErr(sym Symbol) error {
	return &Error{Kind: ErrDuplicateSymbol, Symbol: sym, Message: "symbol already bound"}
}

func newUnresolvedImportErr(sym Symbol) error {
	return &Error{Kind: ErrUnresolvedImport, Symbol: sym, Message: "import could not be resolved"}
}

func newTypeCycleErr(sym Symbol) error {
	return &Error{Kind: ErrTypeCycle, Symbol: sym, Message: "cyclic REFERENCED chain"}
}

func newConstraintViolationErr(sym Symbol, msg string) error {
	return &Error{Kind: ErrConstraintViolation, Symbol: sym, Message: msg}
}

func newTrailingIndexErr(sym Symbol, remaining []uint32) error {
	return &Error{Kind: ErrTrailingIndex, Symbol: sym, Message: fmt.Sprintf("unconsumed index arcs: %v", remaining)}
}

func newUnknownSmiTypeErr(name string) error {
	return &Error{Kind: ErrUnknownSmiType, Message: "unknown SMI type: " + name}
}
