package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BabisK/snmpcodec/mib"
)

var (
	findModules []string
	findAll     bool
	findKind    string
	findType    string
	findCount   bool
)

var findCmd = &cobra.Command{
	Use:   "find PATTERN",
	Short: "Search object names across loaded modules with a glob pattern",
	Args:  cobra.ExactArgs(1),
	RunE:  runFind,
}

func init() {
	findCmd.Flags().StringArrayVarP(&findModules, "module", "m", nil, "module to load (repeatable)")
	findCmd.Flags().BoolVar(&findAll, "all", false, "load every module found on the search path")
	findCmd.Flags().StringVar(&findKind, "kind", "", "filter by node kind (scalar, table, row, column, notification)")
	findCmd.Flags().StringVar(&findType, "type", "", "filter by base type name")
	findCmd.Flags().BoolVar(&findCount, "count", false, "print only the match count")
}

func runFind(cmd *cobra.Command, args []string) error {
	if !findAll && len(findModules) == 0 {
		return fmt.Errorf("specify -m MODULE or --all")
	}
	store, err := loadStore(findModules, findAll)
	if err != nil {
		return fmt.Errorf("failed to load: %w", err)
	}

	pattern := strings.ToLower(args[0])
	var kind mib.Kind
	if findKind != "" {
		var ok bool
		kind, ok = parseKindFilter(findKind)
		if !ok {
			return fmt.Errorf("unknown kind: %s", findKind)
		}
	}
	baseLower := strings.ToLower(findType)

	matches := 0
	for _, obj := range collectAllObjects(store) {
		if ok, _ := filepath.Match(pattern, strings.ToLower(obj.Name())); !ok {
			continue
		}
		if findKind != "" && obj.Kind() != kind {
			continue
		}
		if findType != "" && !matchBaseType(obj, baseLower) {
			continue
		}
		matches++
		if !findCount {
			modName := ""
			if obj.Module() != nil {
				modName = obj.Module().Name()
			}
			fmt.Printf("%s::%s  %s  %s\n", modName, obj.Name(), obj.OID(), obj.Kind())
		}
	}

	if findCount {
		fmt.Println(matches)
	}
	return nil
}

func matchBaseType(obj *mib.ObjectType, baseLower string) bool {
	if obj.Type() == nil {
		return false
	}
	return strings.ToLower(obj.Type().EffectiveBase().String()) == baseLower
}

func parseKindFilter(s string) (mib.Kind, bool) {
	switch strings.ToLower(s) {
	case "scalar":
		return mib.KindScalar, true
	case "table":
		return mib.KindTable, true
	case "row":
		return mib.KindRow, true
	case "column":
		return mib.KindColumn, true
	case "notification":
		return mib.KindNotification, true
	case "node":
		return mib.KindNode, true
	default:
		return 0, false
	}
}
