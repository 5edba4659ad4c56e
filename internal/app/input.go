package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gosocial/internal/analyze"
	"github.com/hyperifyio/gosocial/internal/extract"
)

// inputFile is the YAML schema of an analysis request: a flat list of
// content items.
type inputFile struct {
	Items []analyze.Item `yaml:"items"`
}

// LoadItems reads the input YAML and returns the items to analyze. An
// input with no items is an error; an empty run would only produce an
// empty report.
func LoadItems(path string) ([]analyze.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var in inputFile
	if err := yaml.Unmarshal(b, &in); err != nil {
		return nil, fmt.Errorf("parse input %s: %w", path, err)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("input %s lists no items", path)
	}
	return in.Items, nil
}

// mergeSnapshots folds saved page snapshots into their items: extracted
// text becomes extra analysis input, and missing titles or descriptions
// are filled from the page metadata. A missing or unreadable snapshot is
// logged and skipped, not fatal.
func mergeSnapshots(items []analyze.Item, baseDir string) []analyze.Item {
	out := make([]analyze.Item, len(items))
	copy(out, items)
	for i := range out {
		snap := strings.TrimSpace(out[i].Snapshot)
		if snap == "" {
			continue
		}
		if !filepath.IsAbs(snap) {
			snap = filepath.Join(baseDir, snap)
		}
		b, err := os.ReadFile(snap)
		if err != nil {
			log.Warn().Str("snapshot", snap).Err(err).Msg("snapshot unreadable, skipping")
			continue
		}
		doc := extract.FromHTML(b)
		if out[i].Title == "" {
			out[i].Title = doc.Title
		}
		if out[i].Description == "" {
			out[i].Description = doc.Description
		}
		out[i].Extra = doc.Text
	}
	return out
}
