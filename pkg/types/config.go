// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EmitterConfig holds settings for the emit pipeline.
type EmitterConfig struct {
	// WrapWidth is the column width for plain-text conversion of note
	// bodies (default 80).
	WrapWidth int `json:"wrap_width" yaml:"wrap_width"`
}

// BridgeConfig holds settings for the osascript bridge.
type BridgeConfig struct {
	// OsascriptBin is the osascript binary to invoke (default "osascript").
	// Overridable mainly for testing.
	OsascriptBin string `json:"osascript_bin" yaml:"osascript_bin"`
}

// ArchiveConfig holds settings for the snapshot archive.
type ArchiveConfig struct {
	// DBPath is the sqlite database file for archived notes
	// (default "notes.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all stage configurations for the CLI.
type Config struct {
	Emitter EmitterConfig `json:"emitter" yaml:"emitter"`
	Bridge  BridgeConfig  `json:"bridge" yaml:"bridge"`
	Archive ArchiveConfig `json:"archive" yaml:"archive"`
}
