package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	snmpcodec "github.com/BabisK/snmpcodec"
)

var (
	listCount bool
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List module names visible on the search path, without compiling them",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listCount, "count", false, "print only the module count")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print as a JSON array")
}

func runList(cmd *cobra.Command, args []string) error {
	paths, useSystem, err := effectivePaths()
	if err != nil {
		return err
	}
	source, err := buildSource(paths)
	if err != nil {
		return err
	}
	if source == nil && !useSystem {
		return fmt.Errorf("specify -p PATH or --system")
	}

	var sources []snmpcodec.Source
	if source != nil {
		sources = append(sources, source)
	}
	if useSystem {
		sources = append(sources, snmpcodec.DiscoverSystemSources(verboseLogger())...)
	}

	names, err := listModuleNames(snmpcodec.Multi(sources...))
	if err != nil {
		return err
	}
	slices.Sort(names)

	switch {
	case listCount:
		fmt.Println(len(names))
	case listJSON:
		data, err := marshalJSON(names, true)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	default:
		for _, n := range names {
			fmt.Println(n)
		}
	}
	return nil
}

func listModuleNames(source snmpcodec.Source) ([]string, error) {
	files, err := source.ListFiles()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(files))
	var names []string
	for _, f := range files {
		name := moduleNameFromFile(f)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}
