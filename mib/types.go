package mib

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// Import describes a group of symbols imported from a single source module.
type Import struct {
	Module  string   // source module name
	Symbols []string // imported symbol names
}

// Range represents a min..max constraint for sizes or values. A singleton
// value is represented with Min == Max.
type Range struct {
	Min, Max int64
}

// String returns the range as "min..max", or just "value" if Min == Max.
func (r Range) String() string {
	if r.Min == r.Max {
		return strconv.FormatInt(r.Min, 10)
	}
	return strconv.FormatInt(r.Min, 10) + ".." + strconv.FormatInt(r.Max, 10)
}

// Contains reports whether v falls within the range, inclusive.
func (r Range) Contains(v int64) bool {
	return v >= r.Min && v <= r.Max
}

// NamedValue represents a labeled integer from an enumeration or BITS
// definition.
type NamedValue struct {
	Label string
	Value int64
}

func findNamedValue(values []NamedValue, label string) (NamedValue, bool) {
	for _, nv := range values {
		if nv.Label == label {
			return nv, true
		}
	}
	return NamedValue{}, false
}

// Revision describes a module or textual-convention REVISION clause.
type Revision struct {
	Date        string // "YYYY-MM-DD" or the original clause text
	Description string
}

// IndexEntry describes one resolved component of a table row's INDEX list.
type IndexEntry struct {
	Object  *ObjectType // the index object; always non-nil once resolved
	Implied bool        // IMPLIED keyword present
}

// DefValKind identifies the interpreted shape of a DefVal.
type DefValKind int

const (
	DefValKindNone   DefValKind = iota
	DefValKindInt               // int64
	DefValKindUint               // uint64
	DefValKindString             // string (quoted)
	DefValKindBytes              // []byte (from hex/binary string)
	DefValKindEnum               // string (enum label)
	DefValKindBits               // []string (bit labels)
	DefValKindOID                // OID
)

func (k DefValKind) String() string {
	switch k {
	case DefValKindInt:
		return "int"
	case DefValKindUint:
		return "uint"
	case DefValKindString:
		return "string"
	case DefValKindBytes:
		return "bytes"
	case DefValKindEnum:
		return "enum"
	case DefValKindBits:
		return "bits"
	case DefValKindOID:
		return "oid"
	default:
		return "none"
	}
}

// DefVal represents a DEFVAL clause's value: both the interpreted (typed)
// value and the original MIB source text.
type DefVal struct {
	kind  DefValKind
	value any
	raw   string
}

func DefValInt(v int64, raw string) DefVal        { return DefVal{kind: DefValKindInt, value: v, raw: raw} }
func DefValUint(v uint64, raw string) DefVal       { return DefVal{kind: DefValKindUint, value: v, raw: raw} }
func DefValString(v string, raw string) DefVal     { return DefVal{kind: DefValKindString, value: v, raw: raw} }
func DefValBytes(v []byte, raw string) DefVal      { return DefVal{kind: DefValKindBytes, value: v, raw: raw} }
func DefValEnum(label string, raw string) DefVal   { return DefVal{kind: DefValKindEnum, value: label, raw: raw} }
func DefValBits(labels []string, raw string) DefVal {
	return DefVal{kind: DefValKindBits, value: labels, raw: raw}
}
func DefValOID(oid OID, raw string) DefVal { return DefVal{kind: DefValKindOID, value: oid, raw: raw} }

// Kind returns the interpreted shape of the default value.
func (d DefVal) Kind() DefValKind { return d.kind }

// Value returns the interpreted value.
func (d DefVal) Value() any { return d.value }

// Raw returns the original MIB source text.
func (d DefVal) Raw() string { return d.raw }

// IsZero reports whether no default value was set.
func (d DefVal) IsZero() bool { return d.kind == DefValKindNone }

// String returns a human-readable representation.
func (d DefVal) String() string {
	switch d.kind {
	case DefValKindInt:
		return strconv.FormatInt(d.value.(int64), 10)
	case DefValKindUint:
		return strconv.FormatUint(d.value.(uint64), 10)
	case DefValKindString:
		return `"` + d.value.(string) + `"`
	case DefValKindBytes:
		b := d.value.([]byte)
		if len(b) == 0 {
			return "0"
		}
		return "0x" + strings.ToUpper(hex.EncodeToString(b))
	case DefValKindEnum:
		return d.value.(string)
	case DefValKindBits:
		labels := d.value.([]string)
		if len(labels) == 0 {
			return "{ }"
		}
		return "{ " + strings.Join(labels, ", ") + " }"
	case DefValKindOID:
		return d.raw
	default:
		return d.raw
	}
}

// DefValAs returns the value as type T if compatible.
func DefValAs[T any](d DefVal) (T, bool) {
	v, ok := d.value.(T)
	return v, ok
}

// ComplianceModule is a MODULE clause within a MODULE-COMPLIANCE definition.
type ComplianceModule struct {
	ModuleName      string             // empty = current module
	MandatoryGroups []string
	Groups          []ComplianceGroup
	Objects         []ComplianceObject
}

// ComplianceGroup is a GROUP clause within MODULE-COMPLIANCE.
type ComplianceGroup struct {
	Group       string
	Description string
}

// ComplianceObject is an OBJECT refinement within MODULE-COMPLIANCE.
type ComplianceObject struct {
	Object      string
	MinAccess   *Access
	Description string
}

// CapabilitiesModule is a SUPPORTS clause within an AGENT-CAPABILITIES definition.
type CapabilitiesModule struct {
	ModuleName             string
	Includes               []string
	ObjectVariations       []ObjectVariation
	NotificationVariations []NotificationVariation
}

// ObjectVariation is an object VARIATION within AGENT-CAPABILITIES.
type ObjectVariation struct {
	Object      string
	Access      *Access
	DefVal      DefVal
	Description string
}

// NotificationVariation is a notification VARIATION within AGENT-CAPABILITIES.
type NotificationVariation struct {
	Notification string
	Access       *Access
	Description  string
}

// UnresolvedKind identifies the category of an unresolved reference.
type UnresolvedKind int

const (
	UnresolvedImport UnresolvedKind = iota
	UnresolvedType
	UnresolvedOID
	UnresolvedIndex
	UnresolvedAugments
	UnresolvedGroupMember
	UnresolvedNotificationObject
)

func (k UnresolvedKind) String() string {
	switch k {
	case UnresolvedImport:
		return "import"
	case UnresolvedType:
		return "type"
	case UnresolvedOID:
		return "oid"
	case UnresolvedIndex:
		return "index"
	case UnresolvedAugments:
		return "augments"
	case UnresolvedGroupMember:
		return "group-member"
	case UnresolvedNotificationObject:
		return "notification-object"
	default:
		return "unknown"
	}
}

// UnresolvedRef describes a symbol that could not be resolved by end of load.
type UnresolvedRef struct {
	Kind   UnresolvedKind
	Symbol string
	Module string
}
