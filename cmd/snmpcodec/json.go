package main

import "encoding/json"

// These mirror the teacher's cmd/gomib/json.go output shapes, adapted to
// this repo's richer entity set (Group/Compliance/Capability, absent from
// the teacher's catalogue).

// DumpOutput is the top-level JSON document produced by the dump command.
type DumpOutput struct {
	Modules       []ModuleJSON       `json:"modules,omitempty"`
	Types         []TypeJSON         `json:"types,omitempty"`
	Objects       []ObjectJSON       `json:"objects,omitempty"`
	Notifications []NotificationJSON `json:"notifications,omitempty"`
	Groups        []GroupJSON        `json:"groups,omitempty"`
	Compliances   []ComplianceJSON   `json:"compliances,omitempty"`
	Capabilities  []CapabilityJSON   `json:"capabilities,omitempty"`
	Tree          *TreeNodeJSON      `json:"tree,omitempty"`
	Diagnostics   []DiagnosticJSON   `json:"diagnostics,omitempty"`
}

type ModuleJSON struct {
	Name         string         `json:"name"`
	Language     string         `json:"language,omitempty"`
	SourcePath   string         `json:"sourcePath,omitempty"`
	OID          string         `json:"oid,omitempty"`
	Organization string         `json:"organization,omitempty"`
	ContactInfo  string         `json:"contactInfo,omitempty"`
	Description  string         `json:"description,omitempty"`
	Revisions    []RevisionJSON `json:"revisions,omitempty"`
}

type RevisionJSON struct {
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

type TypeJSON struct {
	Name        string      `json:"name"`
	Module      string      `json:"module,omitempty"`
	Base        string      `json:"base"`
	Status      string      `json:"status"`
	Description string      `json:"description,omitempty"`
	Hint        string      `json:"hint,omitempty"`
	Size        []RangeJSON `json:"size,omitempty"`
	Range       []RangeJSON `json:"range,omitempty"`
	Enums       []EnumJSON  `json:"enums,omitempty"`
	Bits        []BitJSON   `json:"bits,omitempty"`
	IsTC        bool        `json:"isTextualConvention,omitempty"`
}

type RangeJSON struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type EnumJSON struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

type BitJSON struct {
	Label    string `json:"label"`
	Position int64  `json:"position"`
}

type ObjectJSON struct {
	Name        string      `json:"name"`
	Module      string      `json:"module,omitempty"`
	OID         string      `json:"oid"`
	Kind        string      `json:"kind"`
	Type        string      `json:"type,omitempty"`
	BaseType    string      `json:"baseType,omitempty"`
	Access      string      `json:"access"`
	Status      string      `json:"status"`
	Description string      `json:"description,omitempty"`
	Units       string      `json:"units,omitempty"`
	Index       []IndexJSON `json:"index,omitempty"`
	Augments    string      `json:"augments,omitempty"`
	Enums       []EnumJSON  `json:"enums,omitempty"`
	Bits        []BitJSON   `json:"bits,omitempty"`
}

type IndexJSON struct {
	Object  string `json:"object"`
	Implied bool   `json:"implied,omitempty"`
}

type NotificationJSON struct {
	Name        string   `json:"name"`
	Module      string   `json:"module,omitempty"`
	OID         string   `json:"oid"`
	Status      string   `json:"status"`
	Description string   `json:"description,omitempty"`
	Objects     []string `json:"objects,omitempty"`
}

type GroupJSON struct {
	Name        string   `json:"name"`
	Module      string   `json:"module,omitempty"`
	OID         string   `json:"oid"`
	Status      string   `json:"status"`
	Description string   `json:"description,omitempty"`
	Members     []string `json:"members,omitempty"`
}

type ComplianceJSON struct {
	Name        string   `json:"name"`
	Module      string   `json:"module,omitempty"`
	OID         string   `json:"oid"`
	Status      string   `json:"status"`
	Description string   `json:"description,omitempty"`
	Groups      []string `json:"groups,omitempty"`
}

type CapabilityJSON struct {
	Name           string   `json:"name"`
	Module         string   `json:"module,omitempty"`
	OID            string   `json:"oid"`
	Status         string   `json:"status"`
	ProductRelease string   `json:"productRelease,omitempty"`
	Description    string   `json:"description,omitempty"`
	Supports       []string `json:"supports,omitempty"`
}

type TreeNodeJSON struct {
	Arc      uint32          `json:"arc"`
	Label    string          `json:"label,omitempty"`
	Module   string          `json:"module,omitempty"`
	OID      string          `json:"oid"`
	Kind     string          `json:"kind,omitempty"`
	Children []*TreeNodeJSON `json:"children,omitempty"`
}

type DiagnosticJSON struct {
	Severity string `json:"severity,omitempty"`
	Module   string `json:"module,omitempty"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
}

type UnresolvedJSON struct {
	Kind   string `json:"kind"`
	Symbol string `json:"symbol"`
	Module string `json:"module,omitempty"`
}

type NodeJSON struct {
	Name        string      `json:"name,omitempty"`
	Module      string      `json:"module,omitempty"`
	OID         string      `json:"oid"`
	Kind        string      `json:"kind"`
	Type        string      `json:"type,omitempty"`
	BaseType    string      `json:"baseType,omitempty"`
	Access      string      `json:"access,omitempty"`
	Status      string      `json:"status,omitempty"`
	Description string      `json:"description,omitempty"`
	Units       string      `json:"units,omitempty"`
	Index       []IndexJSON `json:"index,omitempty"`
	Augments    string      `json:"augments,omitempty"`
	Enums       []EnumJSON  `json:"enums,omitempty"`
	Bits        []BitJSON   `json:"bits,omitempty"`
	Children    []string    `json:"children,omitempty"`
}

func marshalJSON(v any, indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
