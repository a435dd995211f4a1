package mib

import (
	"fmt"
	"slices"
	"strings"
)

// OID is a sequence of arc values representing a resolved, numeric SNMP
// Object Identifier. It is a defined type (not an alias) so methods can be
// attached.
type OID []uint32

// ParseOID parses an OID from a dotted string (e.g., "1.3.6.1.2.1").
func ParseOID(s string) (OID, error) {
	if s == "" {
		return nil, nil
	}
	if s[0] == '.' {
		s = s[1:]
	}
	if s == "" {
		return nil, fmt.Errorf("mib: empty arc in OID %q", ".")
	}

	var arcs []uint32
	var current uint32
	var hasDigit bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			current = current*10 + uint32(c-'0')
			hasDigit = true
		case c == '.':
			if !hasDigit {
				return nil, fmt.Errorf("mib: empty arc in OID %q", s)
			}
			arcs = append(arcs, current)
			current = 0
			hasDigit = false
		default:
			return nil, fmt.Errorf("mib: invalid character %q in OID %q", c, s)
		}
	}
	if !hasDigit {
		return nil, fmt.Errorf("mib: empty arc in OID %q", s)
	}
	arcs = append(arcs, current)
	return arcs, nil
}

// String returns the dotted string representation (e.g., "1.3.6.1.2.1").
func (o OID) String() string {
	if len(o) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d", o[0])
	for _, arc := range o[1:] {
		fmt.Fprintf(&b, ".%d", arc)
	}
	return b.String()
}

// Parent returns the parent OID (all arcs except the last), or nil if the
// OID has fewer than two arcs.
func (o OID) Parent() OID {
	if len(o) <= 1 {
		return nil
	}
	return slices.Clone(o[:len(o)-1])
}

// Child returns a new OID with the given arc appended.
func (o OID) Child(arc uint32) OID {
	result := make(OID, len(o)+1)
	copy(result, o)
	result[len(result)-1] = arc
	return result
}

// HasPrefix reports whether o starts with prefix.
func (o OID) HasPrefix(prefix OID) bool {
	if len(prefix) > len(o) {
		return false
	}
	for i, arc := range prefix {
		if o[i] != arc {
			return false
		}
	}
	return true
}

// Equal reports whether the two OIDs are identical.
func (o OID) Equal(other OID) bool {
	return slices.Equal(o, other)
}

// Compare returns -1 if o < other, 0 if equal, 1 if o > other, lexicographic
// by arc value.
func (o OID) Compare(other OID) int {
	return slices.Compare(o, other)
}

// LastArc returns the last arc value, or 0 if empty.
func (o OID) LastArc() uint32 {
	if len(o) == 0 {
		return 0
	}
	return o[len(o)-1]
}
