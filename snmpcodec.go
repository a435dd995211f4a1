package snmpcodec

import (
	"github.com/BabisK/snmpcodec/codec"
	"github.com/BabisK/snmpcodec/mib"
)

// Type aliases for the package's public surface. All the actual definitions
// live in mib/codec; this file re-exports the handful a caller needs to load
// a Store and read back out of it, the way the teacher's exports.go
// re-exports its own mib subpackage at the root.

// Store is the compiled, queryable result of Load/LoadModules.
type Store = mib.Store

// Symbol names one (module, identifier) binding.
type Symbol = mib.Symbol

// OID is a sequence of arc values.
type OID = mib.OID

// Module is a compiled MIB module.
type Module = mib.Module

// Node is a point in the OID tree.
type Node = mib.Node

// ObjectType is a scalar/table/row/column OBJECT-TYPE definition.
type ObjectType = mib.ObjectType

// TypeDescriptor describes a type definition (textual convention or inline syntax).
type TypeDescriptor = mib.TypeDescriptor

// Notification is a NOTIFICATION-TYPE or TRAP-TYPE.
type Notification = mib.Notification

// Group is an OBJECT-GROUP or NOTIFICATION-GROUP.
type Group = mib.Group

// Compliance is a MODULE-COMPLIANCE.
type Compliance = mib.Compliance

// Capability is an AGENT-CAPABILITIES definition.
type Capability = mib.Capability

// Kind identifies what an OID node represents.
type Kind = mib.Kind

// Access levels for OBJECT-TYPE definitions.
type Access = mib.Access

// Status values for MIB definitions.
type Status = mib.Status

// Language identifies the SMI version of a module.
type Language = mib.Language

// TypeKind is the discriminated base kind of a TypeDescriptor.
type TypeKind = mib.TypeKind

// Constraint is a value-range or size constraint on a type.
type Constraint = mib.Constraint

// Range is one min..max element of a Constraint.
type Range = mib.Range

// NamedValue represents a labeled integer from an enum or BITS definition.
type NamedValue = mib.NamedValue

// IndexValue is one decoded component of an index/OID codec result.
type IndexValue = mib.IndexValue

// Diagnostic represents a parse or resolution issue.
type Diagnostic = mib.Diagnostic

// UnresolvedRef describes a symbol that could not be resolved by end of load.
type UnresolvedRef = mib.UnresolvedRef

// UnresolvedKind identifies the category of an unresolved reference.
type UnresolvedKind = mib.UnresolvedKind

// DiagnosticConfig controls strictness and diagnostic filtering.
type DiagnosticConfig = mib.DiagnosticConfig

// StrictnessLevel selects a DiagnosticConfig reporting threshold.
type StrictnessLevel = mib.StrictnessLevel

// Severity ranks how serious a Diagnostic is.
type Severity = mib.Severity

// Kind constants.
const (
	KindUnknown      = mib.KindUnknown
	KindInternal     = mib.KindInternal
	KindNode         = mib.KindNode
	KindScalar       = mib.KindScalar
	KindTable        = mib.KindTable
	KindRow          = mib.KindRow
	KindColumn       = mib.KindColumn
	KindNotification = mib.KindNotification
	KindGroup        = mib.KindGroup
	KindCompliance   = mib.KindCompliance
	KindCapabilities = mib.KindCapabilities
)

// Access constants.
const (
	AccessNotAccessible       = mib.AccessNotAccessible
	AccessAccessibleForNotify = mib.AccessAccessibleForNotify
	AccessReadOnly            = mib.AccessReadOnly
	AccessReadWrite           = mib.AccessReadWrite
	AccessReadCreate          = mib.AccessReadCreate
	AccessWriteOnly           = mib.AccessWriteOnly
	AccessNotImplemented      = mib.AccessNotImplemented
)

// Status constants.
const (
	StatusCurrent    = mib.StatusCurrent
	StatusDeprecated = mib.StatusDeprecated
	StatusObsolete   = mib.StatusObsolete
	StatusMandatory  = mib.StatusMandatory
	StatusOptional   = mib.StatusOptional
)

// Language constants.
const (
	LanguageUnknown = mib.LanguageUnknown
	LanguageSMIv1   = mib.LanguageSMIv1
	LanguageSMIv2   = mib.LanguageSMIv2
)

// TypeKind constants.
const (
	TypeUnknown          = mib.TypeUnknown
	TypeInteger          = mib.TypeInteger
	TypeOctetString      = mib.TypeOctetString
	TypeBitString        = mib.TypeBitString
	TypeBits             = mib.TypeBits
	TypeObjectIdentifier = mib.TypeObjectIdentifier
	TypeNull             = mib.TypeNull
	TypeSequence         = mib.TypeSequence
	TypeSequenceOf       = mib.TypeSequenceOf
	TypeChoice           = mib.TypeChoice
	TypeReferenced       = mib.TypeReferenced
)

// UnresolvedKind constants.
const (
	UnresolvedImport             = mib.UnresolvedImport
	UnresolvedType               = mib.UnresolvedType
	UnresolvedOID                = mib.UnresolvedOID
	UnresolvedIndex              = mib.UnresolvedIndex
	UnresolvedAugments           = mib.UnresolvedAugments
	UnresolvedGroupMember        = mib.UnresolvedGroupMember
	UnresolvedNotificationObject = mib.UnresolvedNotificationObject
)

// Severity constants (libsmi-compatible, lower = more severe).
const (
	SeverityFatal   = mib.SeverityFatal
	SeveritySevere  = mib.SeveritySevere
	SeverityError   = mib.SeverityError
	SeverityMinor   = mib.SeverityMinor
	SeverityStyle   = mib.SeverityStyle
	SeverityWarning = mib.SeverityWarning
	SeverityInfo    = mib.SeverityInfo
)

// StrictnessLevel constants.
const (
	StrictnessStrict     = mib.StrictnessStrict
	StrictnessNormal     = mib.StrictnessNormal
	StrictnessPermissive = mib.StrictnessPermissive
	StrictnessSilent     = mib.StrictnessSilent
)

// Config constructors.
var (
	DefaultConfig    = mib.DefaultConfig
	StrictConfig     = mib.StrictConfig
	PermissiveConfig = mib.PermissiveConfig
)

// ParseOID parses a dotted-decimal OID string (e.g. "1.3.6.1.2.1").
var ParseOID = mib.ParseOID

// NewSymbol builds a Symbol from a module and identifier name.
var NewSymbol = mib.NewSymbol

// ResolveIndex decodes a table row's trailing OID arcs into typed IndexValues
// using registry to look up each index component's codec.
var ResolveIndex = mib.ResolveIndex

// DefaultCodecs returns a Registry covering the twelve named SMI base types.
var DefaultCodecs = codec.Default

// NewCodecRegistry returns an empty codec.Registry.
var NewCodecRegistry = codec.NewRegistry
