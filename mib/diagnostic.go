package mib

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BabisK/snmpcodec/internal/types"
)

// Severity ranks how serious a Diagnostic is. Lower values are more severe.
// Shares its scale with internal/types.Severity so internal diagnostics lift
// into this package without translation.
type Severity = types.Severity

const (
	SeverityFatal   = types.SeverityFatal
	SeveritySevere  = types.SeveritySevere
	SeverityError   = types.SeverityError
	SeverityMinor   = types.SeverityMinor
	SeverityStyle   = types.SeverityStyle
	SeverityWarning = types.SeverityWarning
	SeverityInfo    = types.SeverityInfo
)

// StrictnessLevel selects a DiagnosticConfig reporting threshold.
type StrictnessLevel = types.StrictnessLevel

const (
	StrictnessStrict     = types.StrictnessStrict
	StrictnessNormal     = types.StrictnessNormal
	StrictnessPermissive = types.StrictnessPermissive
	StrictnessSilent     = types.StrictnessSilent
)

// Diagnostic is a message surfaced while loading a module. For a
// lexer/parser diagnostic lifted by internal/builder, Module is set, Column
// holds the byte offset of the span's start, and Line is zero; line and
// column are not resolved from the source text.
type Diagnostic struct {
	Severity Severity
	Code     string
	Module   string
	Line     int
	Column   int
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: [%s] %s: %s", d.Module, d.Line, d.Column, d.Severity, d.Code, d.Message)
}

// DiagnosticConfig controls strictness and diagnostic filtering across a
// Store's module loads. Mirrors internal/types.DiagnosticConfig at the
// public package boundary, the way the teacher duplicates this logic
// between its internal and public mib packages.
type DiagnosticConfig struct {
	Level     StrictnessLevel
	FailAt    Severity
	Overrides map[string]Severity
	Ignore    []string
}

func DefaultConfig() DiagnosticConfig {
	return DiagnosticConfig{Level: StrictnessNormal, FailAt: SeveritySevere}
}

func StrictConfig() DiagnosticConfig {
	return DiagnosticConfig{Level: StrictnessStrict, FailAt: SeveritySevere}
}

func PermissiveConfig() DiagnosticConfig {
	return DiagnosticConfig{
		Level:  StrictnessPermissive,
		FailAt: SeverityFatal,
		Ignore: []string{
			types.DiagIdentifierUnderscore,
			types.DiagIdentifierLength32,
		},
	}
}

func (c DiagnosticConfig) ShouldReport(code string, sev Severity) bool {
	if slices.ContainsFunc(c.Ignore, func(pattern string) bool {
		return matchGlob(pattern, code)
	}) {
		return false
	}
	if override, ok := c.Overrides[code]; ok {
		sev = override
	}
	if c.Level >= StrictnessSilent {
		return false
	}
	if c.Level == StrictnessStrict {
		return true
	}
	return int(sev) <= int(c.Level)
}

func (c DiagnosticConfig) ShouldFail(sev Severity) bool {
	return sev <= c.FailAt
}

func matchGlob(pattern, s string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(s, prefix)
	}
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
		return strings.HasSuffix(s, suffix)
	}
	return pattern == s
}
