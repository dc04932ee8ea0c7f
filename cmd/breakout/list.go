package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows a list of all registered Breakout variants.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, v := range variants {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, v.ID, v.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'breakout play <id>' to play a variant.")
}
