// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notes-emitter/internal/notes"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all notes to a YAML or JSON file",
	Long: `Export runs the extraction pipeline and writes the collected documents
to a single file instead of streaming them to stdout.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = "notes-export." + format
	}

	docs, err := newPipeline(cmd).Collect(cmd.Context())
	if err != nil {
		return err
	}

	switch format {
	case "yaml", "":
		if err := notes.ExportYAML(out, docs); err != nil {
			return err
		}
	case "json":
		if err := notes.ExportJSON(out, docs); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d note(s) to %s\n", len(docs), out)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("out", "", "output file (default: notes-export.<format>)")

	rootCmd.AddCommand(exportCmd)
}
