// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/katalvlaran/ndslice/internal/envconfig"
	"github.com/katalvlaran/ndslice/internal/logutil"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCLI assembles the command tree.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ndslice",
		Short: "Strided and indexed N-D slicing over flat buffers",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
			slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), envconfig.LogLevel()))
		},
	}

	rootCmd.AddCommand(newBenchCmd(), newSliceCmd(), newEnvCmd())

	return rootCmd
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show NDSLICE_* settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printEnv(cmd.OutOrStdout())
			return nil
		},
	}
}

func printEnv(out io.Writer) {
	vars := envconfig.AsMap()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	table := newTable(out)
	for _, name := range names {
		v := vars[name]
		table.Append([]string{name, fmt.Sprintf("%v", v.Value), v.Description})
	}
	table.Render()
}

// newTable returns the borderless left-aligned layout used by every command.
func newTable(out io.Writer) *tablewriter.Table {
	if out == nil {
		out = os.Stdout
	}
	table := tablewriter.NewWriter(out)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("\t")

	return table
}
