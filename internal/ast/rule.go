package ast

import "github.com/BabisK/snmpcodec/internal/types"

// Rule tags a grammar production the parser recognizes. The parser never
// assembles these into a tree; it calls Listener.EnterRule/ExitRule around
// the tokens of each production and reports the production's attributes
// through Listener.Field as they are recognized.
type Rule int

const (
	RuleModule Rule = iota
	RuleImports
	RuleValueAssignment
	RuleTypeAssignment
	RuleModuleIdentity
	RuleObjectIdentity
	RuleObjectType
	RuleNotificationType
	RuleTrapType
	RuleTextualConvention
	RuleObjectGroup
	RuleNotificationGroup
	RuleModuleCompliance
	RuleComplianceModule
	RuleAgentCapabilities
	RuleSupportsModule
	RuleMacroDefinition
)

func (r Rule) String() string {
	switch r {
	case RuleModule:
		return "Module"
	case RuleImports:
		return "Imports"
	case RuleValueAssignment:
		return "ValueAssignment"
	case RuleTypeAssignment:
		return "TypeAssignment"
	case RuleModuleIdentity:
		return "ModuleIdentity"
	case RuleObjectIdentity:
		return "ObjectIdentity"
	case RuleObjectType:
		return "ObjectType"
	case RuleNotificationType:
		return "NotificationType"
	case RuleTrapType:
		return "TrapType"
	case RuleTextualConvention:
		return "TextualConvention"
	case RuleObjectGroup:
		return "ObjectGroup"
	case RuleNotificationGroup:
		return "NotificationGroup"
	case RuleModuleCompliance:
		return "ModuleCompliance"
	case RuleComplianceModule:
		return "ComplianceModule"
	case RuleAgentCapabilities:
		return "AgentCapabilities"
	case RuleSupportsModule:
		return "SupportsModule"
	case RuleMacroDefinition:
		return "MacroDefinition"
	default:
		return "Unknown"
	}
}

// Field tags a single attribute reported via Listener.Field while a rule is
// open. The dynamic type carried in the value depends on the field; see the
// comment on each constant.
type Field int

const (
	// FieldSyntax carries a SyntaxClause.
	FieldSyntax Field = iota
	// FieldUnits carries a QuotedString.
	FieldUnits
	// FieldAccess carries an AccessClause.
	FieldAccess
	// FieldStatus carries a StatusClause.
	FieldStatus
	// FieldDescription carries a QuotedString.
	FieldDescription
	// FieldReference carries a QuotedString.
	FieldReference
	// FieldIndex carries an IndexClause.
	FieldIndex
	// FieldAugments carries an AugmentsClause.
	FieldAugments
	// FieldDefVal carries a DefValClause.
	FieldDefVal
	// FieldOidAssignment carries an OidAssignment.
	FieldOidAssignment
	// FieldLastUpdated carries a QuotedString.
	FieldLastUpdated
	// FieldOrganization carries a QuotedString.
	FieldOrganization
	// FieldContactInfo carries a QuotedString.
	FieldContactInfo
	// FieldRevision carries a RevisionClause, one event per REVISION clause.
	FieldRevision
	// FieldObjects carries []Ident (OBJECTS list).
	FieldObjects
	// FieldNotifications carries []Ident (NOTIFICATIONS list).
	FieldNotifications
	// FieldEnterprise carries an Ident.
	FieldEnterprise
	// FieldVariables carries []Ident (VARIABLES list, TRAP-TYPE).
	FieldVariables
	// FieldTrapNumber carries a uint32.
	FieldTrapNumber
	// FieldDisplayHint carries a QuotedString.
	FieldDisplayHint
	// FieldProductRelease carries a QuotedString.
	FieldProductRelease
	// FieldMandatoryGroups carries []Ident.
	FieldMandatoryGroups
	// FieldComplianceGroup carries a ComplianceGroupClause, one per GROUP clause.
	FieldComplianceGroup
	// FieldComplianceObject carries a ComplianceObjectClause, one per OBJECT clause.
	FieldComplianceObject
	// FieldInclude carries []Ident (INCLUDES list, SUPPORTS clause).
	FieldInclude
	// FieldTypeSyntax carries a TypeSyntax (plain type assignment RHS).
	FieldTypeSyntax
)

func (f Field) String() string {
	names := [...]string{
		"Syntax", "Units", "Access", "Status", "Description", "Reference",
		"Index", "Augments", "DefVal", "OidAssignment", "LastUpdated",
		"Organization", "ContactInfo", "Revision", "Objects", "Notifications",
		"Enterprise", "Variables", "TrapNumber", "DisplayHint",
		"ProductRelease", "MandatoryGroups", "ComplianceGroup",
		"ComplianceObject", "Include", "TypeSyntax",
	}
	if int(f) < len(names) {
		return names[f]
	}
	return "Unknown"
}

// ComplianceGroupClause is a GROUP refinement within MODULE-COMPLIANCE.
type ComplianceGroupClause struct {
	Group       Ident
	Description QuotedString
	Span        types.Span
}

// ComplianceObjectClause is an OBJECT refinement within MODULE-COMPLIANCE.
type ComplianceObjectClause struct {
	Object      Ident
	Syntax      *SyntaxClause
	WriteSyntax *SyntaxClause
	MinAccess   *AccessClause
	Description QuotedString
	Span        types.Span
}
