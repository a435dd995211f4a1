package mib

import "slices"

// SequenceField is one named member of a SEQUENCE or CHOICE TypeDescriptor,
// kept in declaration order.
type SequenceField struct {
	Name string
	Type *TypeDescriptor
}

// TypeDescriptor is a discriminated record describing an SMI type: either a
// builtin kind (INTEGER, OCTET STRING, ...), a reference to a previously
// declared type/textual-convention, or a structural type (SEQUENCE,
// SEQUENCE OF, CHOICE). A TypeDescriptor is fully resolved only once every
// REFERENCED node's Resolved() is non-nil; the Store performs this
// resolution after all modules are loaded, mirroring the teacher's
// mibimpl.Type parent-chain walk (internal/mibimpl/types.go) but modeling
// the link explicitly as "reference Symbol + resolved pointer" instead of
// an always-present parent pointer, since an unresolved import must be
// representable mid-load.
type TypeDescriptor struct {
	kind   TypeKind
	name   string // "" for an anonymous inline refinement
	module *Module
	status Status
	hint   string
	desc   string
	ref    string

	names      []NamedValue // INTEGER { a(1), b(2) } enumerations
	bits       []NamedValue // BITS named positions
	constraint *Constraint

	elem   *TypeDescriptor // SEQUENCE OF element type
	fields []SequenceField // SEQUENCE / CHOICE members, declaration order

	reference Symbol          // REFERENCED: the textual name, pre-resolution
	resolved  *TypeDescriptor // REFERENCED: filled in by Store.ResolveTypes

	isTC bool
}

// NewTypeDescriptor returns a TypeDescriptor of the given kind.
func NewTypeDescriptor(kind TypeKind) *TypeDescriptor {
	return &TypeDescriptor{kind: kind}
}

func (t *TypeDescriptor) Kind() TypeKind       { return t.kind }
func (t *TypeDescriptor) Name() string         { return t.name }
func (t *TypeDescriptor) Module() *Module      { return t.module }
func (t *TypeDescriptor) Status() Status       { return t.status }
func (t *TypeDescriptor) DisplayHint() string  { return t.hint }
func (t *TypeDescriptor) Description() string  { return t.desc }
func (t *TypeDescriptor) Reference() string    { return t.ref }
func (t *TypeDescriptor) IsTextualConvention() bool { return t.isTC }

func (t *TypeDescriptor) Names() []NamedValue { return slices.Clone(t.names) }
func (t *TypeDescriptor) Bits() []NamedValue  { return slices.Clone(t.bits) }
func (t *TypeDescriptor) Constraint() *Constraint { return t.constraint }
func (t *TypeDescriptor) Elem() *TypeDescriptor   { return t.elem }
func (t *TypeDescriptor) Fields() []SequenceField { return slices.Clone(t.fields) }

// ReferenceSymbol returns the Symbol named by a REFERENCED TypeDescriptor's
// source-text type name, before resolution.
func (t *TypeDescriptor) ReferenceSymbol() Symbol { return t.reference }

// Resolved returns the TypeDescriptor a REFERENCED node points to, or nil
// if not yet resolved (or not a REFERENCED node).
func (t *TypeDescriptor) Resolved() *TypeDescriptor { return t.resolved }

// Enum looks up a named value by label among the enum entries; Bit covers BITS.
func (t *TypeDescriptor) Enum(label string) (NamedValue, bool) { return findNamedValue(t.names, label) }

// Bit looks up a bit position by label.
func (t *TypeDescriptor) Bit(label string) (NamedValue, bool) { return findNamedValue(t.bits, label) }

// chainNext returns the next TypeDescriptor in the REFERENCED chain, or nil
// at the end of the chain.
func (t *TypeDescriptor) chainNext() *TypeDescriptor {
	if t.kind != TypeReferenced {
		return nil
	}
	return t.resolved
}

// EffectiveBase walks the REFERENCED chain and returns the first concrete
// (non-REFERENCED) kind.
func (t *TypeDescriptor) EffectiveBase() TypeKind {
	for cur := t; cur != nil; cur = cur.chainNext() {
		if cur.kind != TypeReferenced {
			return cur.kind
		}
	}
	return TypeUnknown
}

// EffectiveDisplayHint walks the REFERENCED chain for the first non-empty
// DISPLAY-HINT.
func (t *TypeDescriptor) EffectiveDisplayHint() string {
	for cur := t; cur != nil; cur = cur.chainNext() {
		if cur.hint != "" {
			return cur.hint
		}
	}
	return ""
}

// EffectiveConstraint walks the REFERENCED chain for the first declared
// constraint.
func (t *TypeDescriptor) EffectiveConstraint() *Constraint {
	for cur := t; cur != nil; cur = cur.chainNext() {
		if cur.constraint != nil {
			return cur.constraint
		}
	}
	return nil
}

// EffectiveNames walks the REFERENCED chain for the first non-empty
// enumeration list.
func (t *TypeDescriptor) EffectiveNames() []NamedValue {
	for cur := t; cur != nil; cur = cur.chainNext() {
		if len(cur.names) > 0 {
			return slices.Clone(cur.names)
		}
	}
	return nil
}

// EffectiveBits walks the REFERENCED chain for the first non-empty BITS
// list.
func (t *TypeDescriptor) EffectiveBits() []NamedValue {
	for cur := t; cur != nil; cur = cur.chainNext() {
		if len(cur.bits) > 0 {
			return slices.Clone(cur.bits)
		}
	}
	return nil
}

// applicationTypeNames are builtin SMI types that all share TypeInteger or
// TypeOctetString as their underlying TypeKind but decode differently on
// the wire (and in codec.Registry lookups): Unsigned32, the Counter/Gauge
// family, TimeTicks, IpAddress, and Opaque. The builder stamps one of these
// names directly onto the TypeDescriptor it builds for a SYNTAX clause
// naming one of them, alongside the concrete TypeKind.
var applicationTypeNames = map[string]bool{
	"Unsigned32": true, "Counter32": true, "Counter64": true,
	"Gauge32": true, "TimeTicks": true, "IpAddress": true, "Opaque": true,
}

// EffectiveBaseName walks the REFERENCED chain for the first application-
// type name (Unsigned32, Counter32, ...), falling back to the effective
// base TypeKind's name (INTEGER, OCTET STRING, ...) when none of the
// chain's links name one. Used by index decoding to pick the right
// codec.Registry entry, since Unsigned32/Counter32/Gauge32 are
// wire-distinct despite sharing TypeInteger as their TypeKind.
func (t *TypeDescriptor) EffectiveBaseName() string {
	for cur := t; cur != nil; cur = cur.chainNext() {
		if cur.kind != TypeReferenced && applicationTypeNames[cur.name] {
			return cur.name
		}
	}
	return t.EffectiveBase().String()
}

// String returns a brief summary: "Name (Kind)", or just the effective base
// kind for anonymous types.
func (t *TypeDescriptor) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.name == "" {
		return t.EffectiveBase().String()
	}
	return t.name + " (" + t.EffectiveBase().String() + ")"
}

func (t *TypeDescriptor) SetName(name string)          { t.name = name }
func (t *TypeDescriptor) SetModule(m *Module)          { t.module = m }
func (t *TypeDescriptor) SetStatus(s Status)           { t.status = s }
func (t *TypeDescriptor) SetDisplayHint(h string)      { t.hint = h }
func (t *TypeDescriptor) SetDescription(d string)      { t.desc = d }
func (t *TypeDescriptor) SetReferenceClause(r string)  { t.ref = r }
func (t *TypeDescriptor) SetNames(n []NamedValue)      { t.names = n }
func (t *TypeDescriptor) SetBits(b []NamedValue)       { t.bits = b }
func (t *TypeDescriptor) SetConstraint(c *Constraint)  { t.constraint = c }
func (t *TypeDescriptor) SetElem(e *TypeDescriptor)    { t.elem = e }
func (t *TypeDescriptor) SetFields(f []SequenceField)  { t.fields = f }
func (t *TypeDescriptor) SetReferenceSymbol(sym Symbol) { t.reference = sym }
func (t *TypeDescriptor) SetResolved(resolved *TypeDescriptor) { t.resolved = resolved }
func (t *TypeDescriptor) SetIsTC(isTC bool)            { t.isTC = isTC }
