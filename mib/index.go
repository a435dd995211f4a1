package mib

// PrimitiveCodec decodes a constraint-bounded OID fragment into a typed
// Go value, and reports the Constraint governing how many OID arcs it
// consumes. Concrete implementations live in the companion codec package;
// this interface is declared here (rather than imported from codec) so
// that mib never depends on codec — codec depends on mib for Constraint,
// and a dependency the other way would cycle. Any codec.PrimitiveCodec
// satisfies this interface structurally.
type PrimitiveCodec interface {
	Decode(oid []uint32) (any, error)
	Constraint() *Constraint
}

// CodecRegistry looks up the PrimitiveCodec registered for a base SMI type
// name (e.g. "INTEGER", "IpAddress"). codec.Registry satisfies this
// interface structurally.
type CodecRegistry interface {
	Lookup(baseType string) (PrimitiveCodec, bool)
}

// IndexValue is one resolved component of a decoded table index: the
// object it belongs to, and its decoded, translated value.
type IndexValue struct {
	Object *ObjectType
	Value  any
}

// ResolveIndex decodes a table row's OID suffix into a value per index
// column, per the row's declared (or AUGMENTed) INDEX list. For each
// IndexEntry in turn: if the column's effective type carries a
// size/range Constraint, the constraint splits a prefix off the
// remaining OID (Constraint.Extract); otherwise exactly one arc is
// consumed, matching the original Java smi/Index.java's walk-the-
// INDEX-list algorithm. The consumed prefix is decoded via the
// registry's codec for the column's effective base type, then — per
// smi/SmiType.java's decode-then-translate ordering — an enum or BITS
// label is substituted for the raw decoded value when the column's
// TypeDescriptor declares one. Returns ErrTrailingIndex if arcs remain
// after every index entry is consumed.
func ResolveIndex(row *ObjectType, oid OID, registry CodecRegistry) ([]IndexValue, error) {
	entries := row.EffectiveIndexes()
	remaining := []uint32(oid)
	values := make([]IndexValue, 0, len(entries))

	for _, entry := range entries {
		col := entry.Object
		t := col.Type()

		constraint := col.constraintForIndex()

		var content []uint32
		var ok bool
		if constraint != nil {
			content, remaining, ok = constraint.Extract(remaining)
			if !ok {
				return nil, newConstraintViolationErr(col.Symbol(), "index value out of range or OID too short")
			}
		} else {
			if len(remaining) < 1 {
				return nil, newConstraintViolationErr(col.Symbol(), "OID too short for index entry")
			}
			content, remaining = remaining[0:1], remaining[1:]
			ok = true
		}

		baseType := ""
		if t != nil {
			baseType = t.EffectiveBaseName()
		}
		codec, found := registry.Lookup(baseType)
		if !found {
			return nil, newUnknownSmiTypeErr(baseType)
		}
		decoded, err := codec.Decode(content)
		if err != nil {
			return nil, newConstraintViolationErr(col.Symbol(), err.Error())
		}

		values = append(values, IndexValue{Object: col, Value: translateIndexValue(t, decoded)})
	}

	if len(remaining) > 0 {
		return values, newTrailingIndexErr(row.Symbol(), remaining)
	}
	return values, nil
}

// constraintForIndex returns the effective constraint governing how many
// OID arcs this column's index entry consumes, or nil if the column
// consumes exactly one bare arc (e.g. an unconstrained INTEGER index).
func (o *ObjectType) constraintForIndex() *Constraint {
	if o == nil || o.typ == nil {
		return nil
	}
	return o.typ.EffectiveConstraint()
}

// translateIndexValue substitutes an enum or BITS label for a raw decoded
// integer, if the column's effective type declares one. Values with no
// matching label, or columns with no enumeration at all, pass through
// unchanged.
func translateIndexValue(t *TypeDescriptor, decoded any) any {
	if t == nil {
		return decoded
	}
	n, ok := asInt64(decoded)
	if !ok {
		return decoded
	}
	for _, nv := range t.EffectiveNames() {
		if nv.Value == n {
			return nv.Label
		}
	}
	for _, nv := range t.EffectiveBits() {
		if nv.Value == n {
			return nv.Label
		}
	}
	return decoded
}

// asInt64 widens the narrowed integer types FitInteger/FitUnsigned produce
// back to int64 for comparison against a NamedValue's declared Value, since
// an enum/BITS column's decoded value is almost always narrowed to int8.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}
