// Package codec provides the primitive SMI-codec capability: decoding a
// constraint-bounded fragment of an OID into a typed Go value for each of
// the twelve named SMI base types. It is new code — the teacher compiles
// and navigates MIB trees but never decodes index/OID content into typed
// values — grounded directly in spec.md §6's "capability table, not
// inheritance" external-interface contract and in the original Java
// smi/SmiType.java's decode-then-translate ordering (the translation step
// itself lives in mib.ResolveIndex, which consumes this package).
package codec

import (
	"fmt"
	"net"

	"github.com/BabisK/snmpcodec/mib"
)

// PrimitiveCodec decodes an OID fragment into a typed value and reports the
// Constraint governing how many arcs it consumes. Satisfies mib.PrimitiveCodec
// structurally; mib never imports this package to avoid a cycle.
type PrimitiveCodec interface {
	Decode(oid []uint32) (any, error)
	Constraint() *mib.Constraint
}

// Registry maps a base SMI type name (as returned by
// mib.TypeDescriptor.EffectiveBaseName: a base kind such as "OCTET STRING",
// or an application type such as Counter32 or IpAddress) to the
// PrimitiveCodec that decodes it.
type Registry struct {
	codecs map[string]PrimitiveCodec
}

// NewRegistry returns an empty Registry. Use Register to populate it, or
// Default for the standard twelve-type registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]PrimitiveCodec)}
}

// Register binds name to codec, overwriting any previous binding.
func (r *Registry) Register(name string, c PrimitiveCodec) {
	r.codecs[name] = c
}

// Lookup returns the PrimitiveCodec registered for name. Satisfies
// mib.CodecRegistry.
func (r *Registry) Lookup(name string) (mib.PrimitiveCodec, bool) {
	c, ok := r.codecs[name]
	if !ok {
		return nil, false
	}
	return c, true
}

// Default returns a Registry covering the twelve SMI base types named in
// spec.md §6: INTEGER, Unsigned32, Counter32, Counter64, Gauge32, IpAddress,
// OctetString, BitString, ObjectIdentifier, Opaque, TimeTicks, and Null.
func Default() *Registry {
	r := NewRegistry()
	r.Register("INTEGER", integerCodec{})
	r.Register("Unsigned32", unsigned32Codec{})
	r.Register("Counter32", unsigned32Codec{})
	r.Register("Counter64", counter64Codec{})
	r.Register("Gauge32", unsigned32Codec{})
	r.Register("IpAddress", ipAddressCodec{})
	r.Register("OCTET STRING", octetStringCodec{})
	r.Register("BIT STRING", bitStringCodec{})
	r.Register("OBJECT IDENTIFIER", objectIdentifierCodec{})
	r.Register("Opaque", opaqueCodec{})
	r.Register("TimeTicks", timeTicksCodec{})
	r.Register("NULL", nullCodec{})
	return r
}

// integerCodec decodes a single OID arc as a signed value. INTEGER indices
// are unconstrained unless the column's SYNTAX itself declares a
// value-range or enumeration constraint; Constraint returns nil here since
// the governing constraint, if any, lives on the column's TypeDescriptor
// rather than on the codec.
type integerCodec struct{}

func (integerCodec) Constraint() *mib.Constraint { return nil }

func (integerCodec) Decode(oid []uint32) (any, error) {
	if len(oid) != 1 {
		return nil, fmt.Errorf("codec: INTEGER expects exactly one arc, got %d", len(oid))
	}
	return mib.FitInteger(int64(int32(oid[0]))), nil
}

// unsigned32Codec decodes a single OID arc as an unsigned value; shared by
// Unsigned32, Counter32, and Gauge32, which are wire-distinct but
// index-identical 32-bit unsigned quantities.
type unsigned32Codec struct{}

func (unsigned32Codec) Constraint() *mib.Constraint { return nil }

func (unsigned32Codec) Decode(oid []uint32) (any, error) {
	if len(oid) != 1 {
		return nil, fmt.Errorf("codec: Unsigned32 expects exactly one arc, got %d", len(oid))
	}
	return mib.FitUnsigned(uint64(oid[0])), nil
}

// counter64Codec decodes two consecutive arcs as a 64-bit unsigned value,
// high arc first, since no single OID sub-identifier can carry 64 bits.
type counter64Codec struct{}

func (counter64Codec) Constraint() *mib.Constraint {
	c := mib.NewConstraint(true)
	c.AddElement(mib.Range{Min: 2, Max: 2})
	c.Normalize()
	return c
}

func (counter64Codec) Decode(oid []uint32) (any, error) {
	if len(oid) != 2 {
		return nil, fmt.Errorf("codec: Counter64 expects exactly two arcs, got %d", len(oid))
	}
	return mib.FitUnsigned(uint64(oid[0])<<32 | uint64(oid[1])), nil
}

// ipAddressCodec decodes a fixed four-arc IPv4 address, the canonical
// SIZE(4) OCTET STRING refinement.
type ipAddressCodec struct{}

func (ipAddressCodec) Constraint() *mib.Constraint {
	c := mib.NewConstraint(true)
	c.AddElement(mib.Range{Min: 4, Max: 4})
	c.Normalize()
	return c
}

func (ipAddressCodec) Decode(oid []uint32) (any, error) {
	if len(oid) != 4 {
		return nil, fmt.Errorf("codec: IpAddress expects exactly four arcs, got %d", len(oid))
	}
	return net.IPv4(byte(oid[0]), byte(oid[1]), byte(oid[2]), byte(oid[3])), nil
}

// octetStringCodec decodes a SIZE(n)-governed run of arcs as raw bytes. Its
// own Constraint is unbounded; the effective SIZE, if any, is supplied by
// the column's own TypeDescriptor constraint and applied by
// mib.ResolveIndex before Decode is called.
type octetStringCodec struct{}

func (octetStringCodec) Constraint() *mib.Constraint { return nil }

func (octetStringCodec) Decode(oid []uint32) (any, error) {
	b := make([]byte, len(oid))
	for i, arc := range oid {
		if arc > 255 {
			return nil, fmt.Errorf("codec: OCTET STRING arc %d out of byte range", arc)
		}
		b[i] = byte(arc)
	}
	return b, nil
}

// bitStringCodec decodes a run of arcs as a byte slice, matching
// OCTET STRING's wire shape (BIT STRING and BITS share an encoding).
type bitStringCodec struct{}

func (bitStringCodec) Constraint() *mib.Constraint { return nil }

func (bitStringCodec) Decode(oid []uint32) (any, error) {
	return octetStringCodec{}.Decode(oid)
}

// objectIdentifierCodec decodes a length-prefixed run of arcs (per
// Constraint.Extract's SIZE(a..b) case) as an mib.OID value.
type objectIdentifierCodec struct{}

func (objectIdentifierCodec) Constraint() *mib.Constraint { return nil }

func (objectIdentifierCodec) Decode(oid []uint32) (any, error) {
	out := make(mib.OID, len(oid))
	copy(out, oid)
	return out, nil
}

// opaqueCodec decodes a run of arcs as raw bytes, same wire shape as
// OCTET STRING; SMI's Opaque type exists to tag BER-within-BER content, a
// distinction this codec does not interpret.
type opaqueCodec struct{}

func (opaqueCodec) Constraint() *mib.Constraint { return nil }

func (opaqueCodec) Decode(oid []uint32) (any, error) {
	return octetStringCodec{}.Decode(oid)
}

// timeTicksCodec decodes a single OID arc as a count of hundredths-of-a-
// second ticks.
type timeTicksCodec struct{}

func (timeTicksCodec) Constraint() *mib.Constraint { return nil }

func (timeTicksCodec) Decode(oid []uint32) (any, error) {
	if len(oid) != 1 {
		return nil, fmt.Errorf("codec: TimeTicks expects exactly one arc, got %d", len(oid))
	}
	return mib.FitUnsigned(uint64(oid[0])), nil
}

// nullCodec decodes zero arcs; NULL carries no index content, but appears
// in the table so that a CHOICE or SEQUENCE referencing NULL resolves to a
// codec rather than an UnknownSmiType error.
type nullCodec struct{}

func (nullCodec) Constraint() *mib.Constraint {
	c := mib.NewConstraint(true)
	c.AddElement(mib.Range{Min: 0, Max: 0})
	c.Normalize()
	return c
}

func (nullCodec) Decode(oid []uint32) (any, error) {
	if len(oid) != 0 {
		return nil, fmt.Errorf("codec: NULL expects zero arcs, got %d", len(oid))
	}
	return nil, nil
}
