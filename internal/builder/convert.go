package builder

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/BabisK/snmpcodec/internal/ast"
	"github.com/BabisK/snmpcodec/mib"
)

// convertAccess maps the parser's ACCESS/MAX-ACCESS value onto mib.Access.
// SPPI-only values (Install/InstallNotify/ReportOnly) have no SPPI-specific
// counterpart in mib.Access, since PIB support was dropped at the parser
// layer already; they degrade to their closest read/write SMI analogue.
func convertAccess(ac *ast.AccessClause) mib.Access {
	if ac == nil {
		return mib.AccessNotAccessible
	}
	switch ac.Value {
	case ast.AccessValueReadOnly:
		return mib.AccessReadOnly
	case ast.AccessValueReadWrite:
		return mib.AccessReadWrite
	case ast.AccessValueReadCreate:
		return mib.AccessReadCreate
	case ast.AccessValueNotAccessible:
		return mib.AccessNotAccessible
	case ast.AccessValueAccessibleForNotify:
		return mib.AccessAccessibleForNotify
	case ast.AccessValueWriteOnly:
		return mib.AccessWriteOnly
	case ast.AccessValueNotImplemented:
		return mib.AccessNotImplemented
	case ast.AccessValueInstall, ast.AccessValueInstallNotify:
		return mib.AccessReadWrite
	case ast.AccessValueReportOnly:
		return mib.AccessReadOnly
	default:
		return mib.AccessNotAccessible
	}
}

func convertStatus(sc *ast.StatusClause) (mib.Status, bool) {
	if sc == nil {
		return mib.StatusCurrent, false
	}
	switch sc.Value {
	case ast.StatusValueCurrent:
		return mib.StatusCurrent, false
	case ast.StatusValueDeprecated:
		return mib.StatusDeprecated, false
	case ast.StatusValueObsolete:
		return mib.StatusObsolete, false
	case ast.StatusValueMandatory:
		return mib.StatusMandatory, true
	case ast.StatusValueOptional:
		return mib.StatusOptional, true
	default:
		return mib.StatusCurrent, false
	}
}

// rangeValueInt resolves a RangeValue to an int64, using 32-bit INTEGER
// bounds for the symbolic MIN/MAX endpoints (SMIv2's INTEGER is a 32-bit
// signed quantity; a type whose true bound differs gets refined by its own
// explicit numeric endpoints instead of MIN/MAX).
func rangeValueInt(v ast.RangeValue) int64 {
	switch rv := v.(type) {
	case *ast.RangeValueSigned:
		return rv.Value
	case *ast.RangeValueUnsigned:
		return int64(rv.Value)
	case *ast.RangeValueIdent:
		if rv.Name.Name == "MIN" {
			return math.MinInt32
		}
		return math.MaxInt32
	default:
		return 0
	}
}

func convertConstraint(c ast.Constraint) *mib.Constraint {
	if c == nil {
		return nil
	}
	var ranges []ast.Range
	var isSize bool
	switch cc := c.(type) {
	case *ast.ConstraintSize:
		ranges, isSize = cc.Ranges, true
	case *ast.ConstraintRange:
		ranges, isSize = cc.Ranges, false
	default:
		return nil
	}
	mc := mib.NewConstraint(isSize)
	for _, r := range ranges {
		mc.AddElement(mib.Range{Min: rangeValueInt(r.Min), Max: rangeValueInt(r.Max)})
	}
	mc.Normalize()
	return mc
}

func convertNamedNumbers(nns []ast.NamedNumber) []mib.NamedValue {
	out := make([]mib.NamedValue, len(nns))
	for i, nn := range nns {
		out[i] = mib.NamedValue{Label: nn.Name.Name, Value: nn.Value}
	}
	return out
}

// convertTypeSyntax converts a parsed SYNTAX expression into a
// mib.TypeDescriptor, recursively for structural types. Builtin
// application types (Unsigned32, Counter32, Counter64, Gauge32, TimeTicks,
// IpAddress, Opaque) are stamped with both a concrete mib.TypeKind and
// their distinguishing Name, since mib.TypeKind has no dedicated case for
// them (they are wire-distinct refinements of INTEGER/OCTET STRING, not
// separate ASN.1 base types) — see mib.TypeDescriptor.EffectiveBaseName.
func (b *Builder) convertTypeSyntax(syntax ast.TypeSyntax) *mib.TypeDescriptor {
	switch t := syntax.(type) {
	case *ast.TypeSyntaxTypeRef:
		return b.convertTypeRef(t.Name.Name)
	case *ast.TypeSyntaxIntegerEnum:
		td := mib.NewTypeDescriptor(mib.TypeInteger)
		td.SetNames(convertNamedNumbers(t.NamedNumbers))
		return td
	case *ast.TypeSyntaxBits:
		td := mib.NewTypeDescriptor(mib.TypeBits)
		td.SetBits(convertNamedNumbers(t.NamedBits))
		return td
	case *ast.TypeSyntaxConstrained:
		td := b.convertTypeSyntax(t.Base)
		if c := convertConstraint(t.Constraint); c != nil {
			td.SetConstraint(c)
		}
		return td
	case *ast.TypeSyntaxSequenceOf:
		td := mib.NewTypeDescriptor(mib.TypeSequenceOf)
		elem := mib.NewTypeDescriptor(mib.TypeReferenced)
		elem.SetReferenceSymbol(b.resolveSymbol(t.EntryType.Name))
		td.SetElem(elem)
		return td
	case *ast.TypeSyntaxSequence:
		td := mib.NewTypeDescriptor(mib.TypeSequence)
		fields := make([]mib.SequenceField, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = mib.SequenceField{Name: f.Name.Name, Type: b.convertTypeSyntax(f.Syntax)}
		}
		td.SetFields(fields)
		return td
	case *ast.TypeSyntaxChoice:
		td := mib.NewTypeDescriptor(mib.TypeChoice)
		fields := make([]mib.SequenceField, len(t.Alternatives))
		for i, alt := range t.Alternatives {
			fields[i] = mib.SequenceField{Name: alt.Name.Name, Type: b.convertTypeSyntax(alt.Syntax)}
		}
		td.SetFields(fields)
		return td
	case *ast.TypeSyntaxOctetString:
		return mib.NewTypeDescriptor(mib.TypeOctetString)
	case *ast.TypeSyntaxObjectIdentifier:
		return mib.NewTypeDescriptor(mib.TypeObjectIdentifier)
	default:
		return mib.NewTypeDescriptor(mib.TypeUnknown)
	}
}

func (b *Builder) convertTypeRef(name string) *mib.TypeDescriptor {
	switch name {
	case "INTEGER", "Integer32":
		return mib.NewTypeDescriptor(mib.TypeInteger)
	case "Unsigned32":
		td := mib.NewTypeDescriptor(mib.TypeInteger)
		td.SetName("Unsigned32")
		return td
	case "Counter32":
		td := mib.NewTypeDescriptor(mib.TypeInteger)
		td.SetName("Counter32")
		return td
	case "Counter64":
		td := mib.NewTypeDescriptor(mib.TypeInteger)
		td.SetName("Counter64")
		return td
	case "Gauge32":
		td := mib.NewTypeDescriptor(mib.TypeInteger)
		td.SetName("Gauge32")
		return td
	case "TimeTicks":
		td := mib.NewTypeDescriptor(mib.TypeInteger)
		td.SetName("TimeTicks")
		return td
	case "IpAddress":
		td := mib.NewTypeDescriptor(mib.TypeOctetString)
		td.SetName("IpAddress")
		return td
	case "Opaque":
		td := mib.NewTypeDescriptor(mib.TypeOctetString)
		td.SetName("Opaque")
		return td
	case "NULL":
		return mib.NewTypeDescriptor(mib.TypeNull)
	case "BIT STRING":
		return mib.NewTypeDescriptor(mib.TypeBitString)
	case "OCTET STRING":
		return mib.NewTypeDescriptor(mib.TypeOctetString)
	case "OBJECT IDENTIFIER":
		return mib.NewTypeDescriptor(mib.TypeObjectIdentifier)
	default:
		td := mib.NewTypeDescriptor(mib.TypeReferenced)
		td.SetReferenceSymbol(b.resolveSymbol(name))
		return td
	}
}

func decodeHexLoose(s string) []byte {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}

func decodeBinLoose(s string) []byte {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil
	}
	for len(s)%8 != 0 {
		s = "0" + s
	}
	b := make([]byte, len(s)/8)
	for i := range b {
		var v byte
		for j := 0; j < 8; j++ {
			v <<= 1
			if s[i*8+j] == '1' {
				v |= 1
			}
		}
		b[i] = v
	}
	return b
}

// convertDefVal interprets a parsed DEFVAL clause. Per the original Java
// smi/SmiType.java's decode-then-translate ordering, the interpreted value
// here is the raw parsed shape (int/uint/string/bytes/label/OID
// components) — enum and BITS label *translation* against the column's
// effective names/bits table happens only when a value is actually
// decoded off the wire (mib.ResolveIndex), not at build time, since a
// DEFVAL identifier is ambiguous between an enum label and a value
// reference until the column's type is fully resolved.
func (b *Builder) convertDefVal(clause *ast.DefValClause) mib.DefVal {
	if clause == nil {
		return mib.DefVal{}
	}
	switch v := clause.Value.(type) {
	case *ast.DefValContentInteger:
		return mib.DefValInt(v.Value, strconv.FormatInt(v.Value, 10))
	case *ast.DefValContentUnsigned:
		return mib.DefValUint(v.Value, strconv.FormatUint(v.Value, 10))
	case *ast.DefValContentString:
		return mib.DefValString(v.Value.Value, strconv.Quote(v.Value.Value))
	case *ast.DefValContentIdentifier:
		return mib.DefValEnum(v.Name.Name, v.Name.Name)
	case *ast.DefValContentBits:
		labels := identNames(v.Labels)
		return mib.DefValBits(labels, "{ "+strings.Join(labels, ", ")+" }")
	case *ast.DefValContentHexString:
		return mib.DefValBytes(decodeHexLoose(v.Content), "'"+v.Content+"'H")
	case *ast.DefValContentBinaryString:
		return mib.DefValBytes(decodeBinLoose(v.Content), "'"+v.Content+"'B")
	case *ast.DefValContentObjectIdentifier:
		path := b.convertOidPath(v.Components)
		oid, err := b.resolveOidPathBestEffort(path)
		if err != nil {
			return mib.DefValOID(nil, oidPathRawText(v.Components))
		}
		return mib.DefValOID(oid, oidPathRawText(v.Components))
	default:
		return mib.DefVal{}
	}
}

func oidPathRawText(components []ast.OidComponent) string {
	parts := make([]string, len(components))
	for i, c := range components {
		switch {
		case c.ComponentName() != nil && func() bool { _, ok := c.Number(); return ok }():
			n, _ := c.Number()
			parts[i] = c.ComponentName().Name + "(" + strconv.FormatUint(uint64(n), 10) + ")"
		case c.ComponentName() != nil:
			parts[i] = c.ComponentName().Name
		default:
			n, _ := c.Number()
			parts[i] = strconv.FormatUint(uint64(n), 10)
		}
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// resolveOidPathBestEffort resolves an OidPath to a numeric OID immediately
// (used only for DEFVAL OID literals, which typically reference
// already-defined symbols); unresolved references surface as an error the
// caller falls back on rather than propagating, since a DEFVAL that can't
// yet resolve shouldn't abort the whole module load.
func (b *Builder) resolveOidPathBestEffort(path mib.OidPath) (mib.OID, error) {
	return b.store.ResolvePath(path)
}

// convertOidPath converts the parser's ast.OidComponent sequence into the
// symbolic mib.OidPath the Store resolves numerically. Each referenced name
// is resolved against the current module's imports (or the universal SMI
// roots) at conversion time, matching mib.Symbol's "resolved once, equal
// forever" comparable-struct design.
func (b *Builder) convertOidPath(components []ast.OidComponent) mib.OidPath {
	path := make(mib.OidPath, len(components))
	for i, c := range components {
		num, hasNum := c.Number()
		name := c.ComponentName()
		switch {
		case name == nil && hasNum:
			path[i] = mib.OidComponentNumber{Value: num}
		case name != nil && hasNum:
			path[i] = mib.OidComponentSymbolNumber{Ref: b.resolveComponentSymbol(c), Value: num}
		case name != nil:
			path[i] = mib.OidComponentSymbol{Ref: b.resolveComponentSymbol(c)}
		}
	}
	return path
}

func (b *Builder) resolveComponentSymbol(c ast.OidComponent) mib.Symbol {
	name := c.ComponentName()
	if name == nil {
		return mib.Symbol{}
	}
	if mod := c.Module(); mod != nil {
		return mib.NewSymbol(mod.Name, name.Name)
	}
	return b.resolveSymbol(name.Name)
}
