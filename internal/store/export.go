// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/apd-engine/pkg/types"
)

// exportFile holds the on-disk export layout.
type exportFile struct {
	Runs []types.RunRecord `json:"runs" yaml:"runs"`
}

// ExportYAML writes the selected runs, with records, to
// resultsDir/export.yaml.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) error {
	export, err := s.collect(ctx, opts)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(export)
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}
	return writeFile(filepath.Join(s.resultsDir, "export.yaml"), data)
}

// ExportJSON writes the selected runs, with records, to
// resultsDir/export.json.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) error {
	export, err := s.collect(ctx, opts)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}
	return writeFile(filepath.Join(s.resultsDir, "export.json"), append(data, '\n'))
}

func (s *Store) collect(ctx context.Context, opts QueryOptions) (exportFile, error) {
	runs, err := s.ListRuns(ctx, opts)
	if err != nil {
		return exportFile{}, err
	}
	export := exportFile{Runs: make([]types.RunRecord, 0, len(runs))}
	for _, run := range runs {
		full, err := s.GetRun(ctx, run.ID)
		if err != nil {
			return exportFile{}, err
		}
		export.Runs = append(export.Runs, full)
	}
	return export, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
