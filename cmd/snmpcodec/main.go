// Command snmpcodec loads SMIv1/SMIv2 MIB modules and lets an operator query,
// dump, lint, and decode the result, grounded in the teacher's cmd/gomib but
// built on cobra rather than a hand-rolled flag.FlagSet dispatch loop.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagPaths   []string
	flagSystem  bool
	flagVerbose int
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "snmpcodec",
	Short: "Compile and query SMIv1/SMIv2 MIB modules",
	Long: `snmpcodec loads MIB modules through the lexer/parser/builder pipeline into
a queryable Store: look up objects and types, walk the OID tree, dump the
result as JSON, lint for diagnostics, and decode INDEX fragments of a
captured OID against a loaded table row.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringArrayVarP(&flagPaths, "path", "p", nil, "MIB directory to search (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&flagSystem, "system", false, "also search net-snmp/libsmi system MIB directories")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase logging verbosity (-v, -vv)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a .snmpcodec.toml config file")

	rootCmd.AddCommand(loadCmd, getCmd, dumpCmd, listCmd, pathsCmd, findCmd, lintCmd, decodeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		pErrorf("%v", err)
		os.Exit(1)
	}
}

func verboseLogger() *slog.Logger {
	if flagVerbose == 0 {
		return nil
	}
	level := slog.LevelInfo
	if flagVerbose > 1 {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func pErrorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, "error: "+fmt.Sprintf(format, args...))
}
