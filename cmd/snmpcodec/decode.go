package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	snmpcodec "github.com/BabisK/snmpcodec"
	"github.com/BabisK/snmpcodec/mib"
)

var (
	decodeModules []string
	decodeAll     bool
	decodeRow     string
	decodeFormat  string
)

// DecodedIndexJSON is one decoded INDEX column, as printed by decode --format json.
type DecodedIndexJSON struct {
	Object string `json:"object"`
	Value  string `json:"value"`
}

var decodeCmd = &cobra.Command{
	Use:   "decode OID",
	Short: "Decode a captured OID's trailing arcs as a table row's INDEX values",
	Long: `decode walks a table row's INDEX list (following AUGMENTS where the row
declares no INDEX of its own) against the given OID's trailing arcs,
decoding each index column with the codec registered for its base SMI type
and substituting any enum/BITS label the column declares.

OID is the full captured instance OID; decode strips the row's own OID
prefix before resolving the index, so passing either the bare index suffix
or the full "<row-oid>.<index>" instance OID both work.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringArrayVarP(&decodeModules, "module", "m", nil, "module to load (repeatable)")
	decodeCmd.Flags().BoolVar(&decodeAll, "all", false, "load every module found on the search path")
	decodeCmd.Flags().StringVarP(&decodeRow, "row", "r", "", "row object name, e.g. MODULE::ifEntry (required)")
	decodeCmd.Flags().StringVar(&decodeFormat, "format", "text", "output format: text|json")
}

func runDecode(cmd *cobra.Command, args []string) error {
	if !decodeAll && len(decodeModules) == 0 {
		return fmt.Errorf("specify -m MODULE or --all")
	}
	if decodeRow == "" {
		return fmt.Errorf("-r/--row is required")
	}

	oid, err := snmpcodec.ParseOID(args[0])
	if err != nil {
		return fmt.Errorf("invalid OID %q: %w", args[0], err)
	}

	store, err := loadStore(decodeModules, decodeAll)
	if err != nil {
		return fmt.Errorf("failed to load: %w", err)
	}

	row, err := resolveRow(store, decodeRow)
	if err != nil {
		return err
	}
	if !row.IsRow() {
		return fmt.Errorf("%s is not a table row (kind: %s)", row.Name(), row.Kind())
	}

	suffix := indexSuffix(row, oid)

	registry := snmpcodec.DefaultCodecs()
	values, err := snmpcodec.ResolveIndex(row, suffix, registry)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	switch decodeFormat {
	case "json":
		out := make([]DecodedIndexJSON, len(values))
		for i, v := range values {
			out[i] = DecodedIndexJSON{
				Object: v.Object.Name(),
				Value:  fmt.Sprintf("%v", v.Value),
			}
		}
		data, err := marshalJSON(out, true)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	default:
		for _, v := range values {
			fmt.Printf("%s = %v\n", v.Object.Name(), v.Value)
		}
	}
	return nil
}

// resolveRow looks up a row object by a MODULE::name qualified reference or
// a bare name searched across every loaded module.
func resolveRow(store *mib.Store, ref string) (*mib.ObjectType, error) {
	if modName, objName, ok := strings.Cut(ref, "::"); ok {
		m := store.Module(modName)
		if m == nil {
			return nil, fmt.Errorf("module %s not loaded", modName)
		}
		obj := m.Object(objName)
		if obj == nil {
			return nil, fmt.Errorf("%s::%s: no such object", modName, objName)
		}
		return obj, nil
	}

	obj, _, _, _ := findByName(store, ref)
	if obj == nil {
		return nil, fmt.Errorf("%s: no such object", ref)
	}
	return obj, nil
}

// indexSuffix strips a row's own OID prefix from the captured instance OID
// when present, so callers can pass either the bare index suffix or the
// full row-oid-plus-index instance OID.
func indexSuffix(row *mib.ObjectType, oid mib.OID) mib.OID {
	rowOID := row.OID()
	if len(oid) > len(rowOID) && oid.HasPrefix(rowOID) {
		return oid[len(rowOID):]
	}
	return oid
}
