// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/notes-emitter/internal/store"
	"github.com/pdiddy/notes-emitter/pkg/types"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Archive all notes into a local SQLite database",
	Long: `Snapshot runs the same extraction pipeline as the default emit, but
writes the documents into a local SQLite archive instead of stdout. Notes are
keyed by id; re-running a snapshot overwrites earlier copies of each note in
place. No comparison against earlier snapshots is performed.`,
	RunE: runSnapshot,
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	docs, err := newPipeline(cmd).Collect(cmd.Context())
	if err != nil {
		return err
	}

	s, err := store.Open(archiveConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.PutAll(cmd.Context(), docs)
	if err != nil {
		return err
	}

	total, err := s.Count(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Archived %d note(s); %d in database\n", n, total)
	return nil
}

// archiveConfig resolves the snapshot database settings from flags and config.
func archiveConfig(cmd *cobra.Command) types.ArchiveConfig {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("archive.db_path")
	}
	return types.ArchiveConfig{
		DBPath:     dbPath,
		MaxResults: viper.GetInt("archive.max_results"),
	}
}

func init() {
	snapshotCmd.Flags().String("db", "", "sqlite database file (default: notes.db)")

	rootCmd.AddCommand(snapshotCmd)
}
