package mib

// OidComponent is a single element of a symbolic OidPath: a bare integer
// arc, a bare reference to a previously declared OidPath, or a reference
// paired with an integer arc (the "name(n)" form). Concrete variants
// implement this as a closed sum via the unexported marker method, mirroring
// the teacher's ast.OidComponent variant family (internal/ast/oid.go) but
// carrying resolved Symbols instead of raw identifier text.
type OidComponent interface {
	isOidComponent()
}

// OidComponentNumber is a bare integer arc, e.g. the "6" in { 1 3 6 }.
type OidComponentNumber struct {
	Value uint32
}

func (OidComponentNumber) isOidComponent() {}

// OidComponentSymbol is a bare reference to a previously declared OidPath,
// e.g. "enterprises" in { enterprises 9 }.
type OidComponentSymbol struct {
	Ref Symbol
}

func (OidComponentSymbol) isOidComponent() {}

// OidComponentSymbolNumber is a reference paired with an explicit arc
// number, the "name(n)" form, e.g. "mib-2(1)".
type OidComponentSymbolNumber struct {
	Ref   Symbol
	Value uint32
}

func (OidComponentSymbolNumber) isOidComponent() {}

// OidPath is an ordered sequence of OidComponents: the symbolic form of an
// OID assignment as it appeared in source, before recursive resolution to
// a numeric OID.
type OidPath []OidComponent
