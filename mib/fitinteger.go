package mib

import "math/big"

// FitInteger returns the narrowest Go numeric representation that can hold
// v: int8/int16/int32 in ascending order, else v itself as int64. Values
// wider than int64 go through FitBigInteger. SNMP index and constraint values are
// almost always small, so the common path allocates nothing beyond the
// int64 itself.
func FitInteger(v int64) any {
	switch {
	case v >= -128 && v <= 127:
		return int8(v)
	case v >= -32768 && v <= 32767:
		return int16(v)
	case v >= -2147483648 && v <= 2147483647:
		return int32(v)
	default:
		return v
	}
}

// FitUnsigned is FitInteger's unsigned counterpart, used for Counter/Gauge/
// Unsigned32-typed index components whose domain excludes negative values.
func FitUnsigned(v uint64) any {
	switch {
	case v <= 255:
		return uint8(v)
	case v <= 65535:
		return uint16(v)
	case v <= 4294967295:
		return uint32(v)
	default:
		return v
	}
}

// FitBigInteger is FitInteger's arbitrary-precision counterpart, used when a
// value arrives as a big.Int because it was assembled from an OID suffix
// too wide to fit an int64 (e.g. an Opaque-encoded BER INTEGER). Values that
// fit in an int64 are narrowed via FitInteger; values that don't are
// returned as *big.Int unchanged.
func FitBigInteger(v *big.Int) any {
	if v.IsInt64() {
		return FitInteger(v.Int64())
	}
	return v
}
