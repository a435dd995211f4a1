package main

import (
	"fmt"

	"github.com/spf13/cobra"

	snmpcodec "github.com/BabisK/snmpcodec"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the MIB search path",
	Long: `With -p/--path given, prints those directories. With --system (or no
explicit paths at all), prints the net-snmp/libsmi directories this host is
configured for, without loading anything.`,
	RunE: runPaths,
}

func runPaths(cmd *cobra.Command, args []string) error {
	paths, useSystem, err := effectivePaths()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		useSystem = true
	}

	for _, p := range paths {
		fmt.Println(p)
	}
	if useSystem {
		for _, p := range snmpcodec.DiscoverSystemPaths(verboseLogger()) {
			fmt.Println(p)
		}
	}
	return nil
}
