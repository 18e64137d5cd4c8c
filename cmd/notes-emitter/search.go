// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notes-emitter/internal/store"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over an archived snapshot",
	Long: `Search queries a snapshot database written by the snapshot command,
using FTS5 full-text search over note titles and bodies.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, err := store.Open(archiveConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	results, err := s.Search(cmd.Context(), strings.Join(args, " "), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []store.Result, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-30s  %-40s  %-15s  %s\n",
		"Rank", "Name", "Text", "Folder", "Account")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for i, r := range results {
		name := r.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		text := strings.ReplaceAll(r.Text, "\n", " ")
		if len(text) > 40 {
			text = text[:37] + "..."
		}
		folder := r.Folder
		if len(folder) > 15 {
			folder = folder[:12] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-30s  %-40s  %-15s  %s\n",
			i+1, name, text, folder, r.Account)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func init() {
	searchCmd.Flags().String("db", "", "sqlite database file (default: notes.db)")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
