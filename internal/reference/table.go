// Package reference holds the static stamp duty table keyed by jurisdiction.
package reference

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"rentdocs/internal/model"
)

//go:embed data/jurisdictions.yaml
var embeddedData []byte

type document struct {
	Default       model.ReferenceRecord   `yaml:"default"`
	Jurisdictions []model.ReferenceRecord `yaml:"jurisdictions"`
}

// Table is an immutable, case-insensitive jurisdiction lookup.
type Table struct {
	records  map[string]model.ReferenceRecord
	fallback model.ReferenceRecord
}

// Options override parts of the loaded data.
type Options struct {
	// DataFile replaces the embedded YAML when set.
	DataFile           string
	DefaultDescription string
	DefaultURL         string
}

// Load parses the jurisdiction data once.
func Load(opts Options) (*Table, error) {
	raw := embeddedData
	if opts.DataFile != "" {
		b, err := os.ReadFile(opts.DataFile)
		if err != nil {
			return nil, fmt.Errorf("read reference data: %w", err)
		}
		raw = b
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse reference data: %w", err)
	}
	if opts.DefaultDescription != "" {
		doc.Default.RateDescription = opts.DefaultDescription
	}
	if opts.DefaultURL != "" {
		doc.Default.ReferenceURL = opts.DefaultURL
	}
	return New(doc.Jurisdictions, doc.Default)
}

// New builds a table from records; fallback is returned for unknown keys.
func New(records []model.ReferenceRecord, fallback model.ReferenceRecord) (*Table, error) {
	if fallback.RateDescription == "" {
		return nil, errors.New("default reference record needs a rate description")
	}
	t := &Table{records: make(map[string]model.ReferenceRecord, len(records)), fallback: fallback}
	for _, r := range records {
		key := normalize(r.Jurisdiction)
		if key == "" {
			return nil, errors.New("reference record without jurisdiction name")
		}
		if _, dup := t.records[key]; dup {
			return nil, fmt.Errorf("duplicate jurisdiction %q", r.Jurisdiction)
		}
		t.records[key] = r
	}
	return t, nil
}

// Lookup matches jurisdiction case-insensitively. Unknown names return the
// default record with found=false rather than an error.
func (t *Table) Lookup(jurisdiction string) (model.ReferenceRecord, bool) {
	if r, ok := t.records[normalize(jurisdiction)]; ok {
		return r, true
	}
	d := t.fallback
	d.Jurisdiction = strings.TrimSpace(jurisdiction)
	return d, false
}

// All returns every record sorted by jurisdiction name.
func (t *Table) All() []model.ReferenceRecord {
	out := make([]model.ReferenceRecord, 0, len(t.records))
	for _, r := range t.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Jurisdiction < out[j].Jurisdiction })
	return out
}

// Default returns the fallback record.
func (t *Table) Default() model.ReferenceRecord {
	return t.fallback
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
