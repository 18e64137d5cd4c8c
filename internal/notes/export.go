// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/notes-emitter/pkg/types"
)

// ExportYAML writes the collected documents to path as a YAML sequence.
func ExportYAML(path string, docs []types.Document) error {
	data, err := yaml.Marshal(docs)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the collected documents to path as an indented JSON array.
func ExportJSON(path string, docs []types.Document) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
