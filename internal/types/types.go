// Package types provides internal types shared across snmpcodec packages.
package types

import (
	"context"
	"fmt"
	"log/slog"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item iteration logging (tokens, OID nodes, imports).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// ctx is a package-level context for logging.
var ctx = context.Background()

// Logger wraps slog.Logger with nil-safe helpers.
type Logger struct {
	L *slog.Logger
}

// Enabled returns true if logging is enabled at the given level.
func (l *Logger) Enabled(level slog.Level) bool {
	return l.L != nil && l.L.Enabled(ctx, level)
}

// Log emits a log message if logging is enabled.
func (l *Logger) Log(level slog.Level, msg string, attrs ...slog.Attr) {
	if l.L != nil && l.L.Enabled(ctx, level) {
		l.L.LogAttrs(ctx, level, msg, attrs...)
	}
}

// TraceEnabled returns true if trace-level logging is enabled.
func (l *Logger) TraceEnabled() bool {
	return l.Enabled(LevelTrace)
}

// Trace emits a trace-level log.
func (l *Logger) Trace(msg string, attrs ...slog.Attr) {
	l.Log(LevelTrace, msg, attrs...)
}

// ByteOffset is a byte position in source text.
type ByteOffset uint32

// Span represents a range in source text.
type Span struct {
	Start ByteOffset // inclusive
	End   ByteOffset // exclusive
}

// Synthetic is a span for compiler-generated constructs.
var Synthetic = Span{Start: 0, End: 0}

// NewSpan creates a new span.
func NewSpan(start, end ByteOffset) Span {
	return Span{Start: start, End: end}
}

// Len returns the length of the span in bytes.
func (s Span) Len() ByteOffset {
	return s.End - s.Start
}

// IsEmpty returns true if the span is empty.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// IsSynthetic returns true if this is a synthetic span.
func (s Span) IsSynthetic() bool {
	return s.Start == 0 && s.End == 0
}

// Diagnostic is a message from the lexer, parser, or builder.
// It carries a byte-offset Span rather than a resolved line/column. When
// the builder lifts it into the public mib.Diagnostic, it attaches the
// module name and copies Span.Start into Column; Line stays zero, and no
// line/column is computed from the source text.
type Diagnostic struct {
	Severity Severity
	Code     string // e.g., "identifier-underscore", "import-not-found"
	Span     Span
	Message  string
}

// String returns a human-readable representation of the diagnostic.
func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s (%d..%d): %s", d.Severity, d.Code, d.Span.Start, d.Span.End, d.Message)
}

// Severity ranks how serious a diagnostic is. Lower values are more severe.
type Severity int

const (
	SeverityFatal Severity = iota
	SeveritySevere
	SeverityError
	SeverityMinor
	SeverityStyle
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	case SeveritySevere:
		return "severe"
	case SeverityError:
		return "error"
	case SeverityMinor:
		return "minor"
	case SeverityStyle:
		return "style"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// StrictnessLevel selects a DiagnosticConfig reporting threshold. It shares
// Severity's numeric scale so a level can be compared directly against a
// diagnostic's severity.
type StrictnessLevel int

const (
	StrictnessStrict     StrictnessLevel = StrictnessLevel(SeverityFatal)
	StrictnessNormal     StrictnessLevel = StrictnessLevel(SeverityMinor)
	StrictnessPermissive StrictnessLevel = StrictnessLevel(SeverityWarning)
	StrictnessSilent     StrictnessLevel = StrictnessLevel(SeverityInfo)
)
