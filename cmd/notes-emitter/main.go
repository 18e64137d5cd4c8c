// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the notes-emitter CLI.
// See docs/ARCHITECTURE § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command. Running it with no subcommand performs the
// emit: one JSON document per note on stdout.
var rootCmd = &cobra.Command{
	Use:   "notes-emitter",
	Short: "Emit Apple Notes as newline-delimited JSON",
	Long: `notes-emitter reads every note from the Apple Notes application through
the osascript scripting bridge and writes each one to stdout as a single-line
JSON document. Stdout carries only documents; all diagnostics go to stderr.

Subcommands archive the same documents into a local SQLite snapshot, search a
snapshot, or export to a YAML/JSON file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEmit,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./notes-emitter.yaml or ~/.config/notes-emitter/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().String("osascript", "", "osascript binary to invoke (default: osascript)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("notes-emitter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "notes-emitter"))
		}
	}

	viper.SetEnvPrefix("NOTES_EMITTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// buildLogger returns a development logger on stderr when --verbose is set,
// and a no-op logger otherwise.
func buildLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// osascriptBin resolves the bridge binary from flag, then config.
func osascriptBin(cmd *cobra.Command) string {
	if bin, _ := cmd.Flags().GetString("osascript"); bin != "" {
		return bin
	}
	return viper.GetString("bridge.osascript_bin")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}
