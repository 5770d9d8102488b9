// Package manifest loads batch manifests: ordered lists of puzzle runs.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/puzzlebox/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Run is a single puzzle invocation.
type Run struct {
	Puzzle string         `yaml:"puzzle" json:"puzzle"`
	Input  string         `yaml:"input" json:"input"`
	Params map[string]any `yaml:"params" json:"params"`
}

// Manifest represents the structure of a batch file.
type Manifest struct {
	Runs []Run `yaml:"runs" json:"runs"`
}

// Load reads a manifest file (YAML or JSON, chosen by extension).
// Relative input paths are resolved against the manifest's directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	base := filepath.Dir(path)
	for i := range m.Runs {
		run := &m.Runs[i]
		if run.Puzzle == "" {
			return nil, fmt.Errorf("%w: run %d has no puzzle", domain.ErrInvalidManifest, i+1)
		}
		if run.Input != "" && !filepath.IsAbs(run.Input) {
			run.Input = filepath.Join(base, run.Input)
		}
	}

	return &m, nil
}
