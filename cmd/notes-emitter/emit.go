// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/notes-emitter/internal/bridge"
	"github.com/pdiddy/notes-emitter/internal/notes"
)

func init() {
	// Persistent: snapshot and export run the same conversion.
	rootCmd.PersistentFlags().IntP("wrap-width", "w", notes.DefaultWrapWidth, "wrap width for plain-text conversion from HTML")
}

// newPipeline assembles the emitter pipeline from flags and config.
func newPipeline(cmd *cobra.Command) *notes.Pipeline {
	return &notes.Pipeline{
		Bridge:    bridge.New(osascriptBin(cmd)),
		WrapWidth: wrapWidth(cmd),
		Log:       buildLogger(cmd),
	}
}

// wrapWidth resolves the wrap width: flag when given, then config, then the
// default.
func wrapWidth(cmd *cobra.Command) int {
	w, _ := cmd.Flags().GetInt("wrap-width")
	if !cmd.Flags().Changed("wrap-width") {
		if v := viper.GetInt("emitter.wrap_width"); v > 0 {
			w = v
		}
	}
	if w <= 0 {
		w = notes.DefaultWrapWidth
	}
	return w
}

func runEmit(cmd *cobra.Command, args []string) error {
	p := newPipeline(cmd)
	count, err := p.Run(cmd.Context(), os.Stdout)
	if err != nil {
		return err
	}
	p.Log.Debug("emit complete", zap.Int("documents", count))
	return nil
}
