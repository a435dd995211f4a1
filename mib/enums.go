package mib

import "fmt"

// Kind identifies what an OID node represents.
type Kind int

const (
	KindUnknown      Kind = iota
	KindInternal          // internal node without a definition
	KindNode              // OBJECT-IDENTITY, MODULE-IDENTITY, value assignment
	KindScalar            // scalar OBJECT-TYPE
	KindTable             // table (SEQUENCE OF)
	KindRow               // row (has INDEX or AUGMENTS)
	KindColumn            // column (child of row)
	KindNotification      // NOTIFICATION-TYPE or TRAP-TYPE
	KindGroup             // OBJECT-GROUP or NOTIFICATION-GROUP
	KindCompliance        // MODULE-COMPLIANCE
	KindCapabilities      // AGENT-CAPABILITIES
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindInternal:
		return "internal"
	case KindNode:
		return "node"
	case KindScalar:
		return "scalar"
	case KindTable:
		return "table"
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	case KindNotification:
		return "notification"
	case KindGroup:
		return "group"
	case KindCompliance:
		return "compliance"
	case KindCapabilities:
		return "capabilities"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// IsObjectType reports whether this is a scalar/table/row/column.
func (k Kind) IsObjectType() bool {
	switch k {
	case KindScalar, KindTable, KindRow, KindColumn:
		return true
	default:
		return false
	}
}

// IsConformance reports whether this is a group/compliance/capabilities node.
func (k Kind) IsConformance() bool {
	switch k {
	case KindGroup, KindCompliance, KindCapabilities:
		return true
	default:
		return false
	}
}

// Access levels for OBJECT-TYPE definitions.
type Access int

const (
	AccessNotAccessible Access = iota
	AccessAccessibleForNotify
	AccessReadOnly
	AccessReadWrite
	AccessReadCreate
	AccessWriteOnly
	AccessNotImplemented // AGENT-CAPABILITIES VARIATION: not supported
)

func (a Access) String() string {
	switch a {
	case AccessNotAccessible:
		return "not-accessible"
	case AccessAccessibleForNotify:
		return "accessible-for-notify"
	case AccessReadOnly:
		return "read-only"
	case AccessReadWrite:
		return "read-write"
	case AccessReadCreate:
		return "read-create"
	case AccessWriteOnly:
		return "write-only"
	case AccessNotImplemented:
		return "not-implemented"
	default:
		return fmt.Sprintf("Access(%d)", a)
	}
}

// Status values for MIB definitions.
type Status int

const (
	StatusCurrent Status = iota
	StatusDeprecated
	StatusObsolete
	StatusMandatory // SMIv1
	StatusOptional  // SMIv1
)

func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusDeprecated:
		return "deprecated"
	case StatusObsolete:
		return "obsolete"
	case StatusMandatory:
		return "mandatory"
	case StatusOptional:
		return "optional"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

// Language identifies the SMI version of a module.
type Language int

const (
	LanguageUnknown Language = iota
	LanguageSMIv1
	LanguageSMIv2
)

func (l Language) String() string {
	switch l {
	case LanguageUnknown:
		return "unknown"
	case LanguageSMIv1:
		return "SMIv1"
	case LanguageSMIv2:
		return "SMIv2"
	default:
		return fmt.Sprintf("Language(%d)", l)
	}
}

// TypeKind is the discriminated base kind of a TypeDescriptor, per the
// SMIv2 type grammar.
type TypeKind int

const (
	TypeUnknown TypeKind = iota
	TypeInteger
	TypeOctetString
	TypeBitString
	TypeBits
	TypeObjectIdentifier
	TypeNull
	TypeSequence
	TypeSequenceOf
	TypeChoice
	TypeReferenced
)

func (k TypeKind) String() string {
	switch k {
	case TypeInteger:
		return "INTEGER"
	case TypeOctetString:
		return "OCTET STRING"
	case TypeBitString:
		return "BIT STRING"
	case TypeBits:
		return "BITS"
	case TypeObjectIdentifier:
		return "OBJECT IDENTIFIER"
	case TypeNull:
		return "NULL"
	case TypeSequence:
		return "SEQUENCE"
	case TypeSequenceOf:
		return "SEQUENCE OF"
	case TypeChoice:
		return "CHOICE"
	case TypeReferenced:
		return "REFERENCED"
	default:
		return fmt.Sprintf("TypeKind(%d)", k)
	}
}
