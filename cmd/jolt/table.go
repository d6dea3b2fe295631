package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jolt/internal/driver"
)

var tableCmd = &cobra.Command{
	Use:   "table [flags] table.mp",
	Short: "Inspect an exported identifier table",
	Long:  `Table prints the identifiers stored in a table written by "jolt verify --out"`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTable,
}

func runTable(cmd *cobra.Command, args []string) error {
	t, err := driver.ReadTable(args[0])
	if err != nil {
		return fmt.Errorf("read table: %w", err)
	}

	out := os.Stdout
	headColor := color.New(color.Bold)
	if !useColor(cmd, out) {
		headColor.DisableColor()
	}

	fmt.Fprintf(out, "%s %d identifiers from %d sources\n",
		headColor.Sprint("table:"), len(t.Idents), len(t.Sources))
	for _, src := range t.Sources {
		fmt.Fprintf(out, "  source %s\n", src)
	}
	for _, id := range t.Idents {
		fmt.Fprintf(out, "  %s\n", id)
	}
	return nil
}
