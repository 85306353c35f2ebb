// Package catalog loads the named number formats an installation issues
//
// A catalog file is YAML or TOML, chosen by extension:
//
//	formats:
//	  - name: invoice
//	    format: "{Y}-{ccy,4}"
//	    description: yearly invoice counter
//
// Every format is compiled at load so a bad file fails at startup
package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tallybook/internal/core/numberpattern"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultName is the format used when a request names none
const DefaultName = "invoice"

// Entry is one named format
type Entry struct {
	Name        string `yaml:"name" toml:"name" json:"name"`
	Format      string `yaml:"format" toml:"format" json:"format"`
	Description string `yaml:"description,omitempty" toml:"description" json:"description,omitempty"`
}

type file struct {
	Default string  `yaml:"default,omitempty" toml:"default"`
	Formats []Entry `yaml:"formats" toml:"formats"`
}

// Catalog is an ordered, validated set of formats
type Catalog struct {
	def     string
	entries []Entry
	byName  map[string]int
}

// Default is the catalog used when no file is configured
func Default() *Catalog {
	c, err := New(DefaultName, []Entry{
		{Name: "invoice", Format: "{Y}-{ccy,4}", Description: "year and invoices issued this year"},
		{Name: "monthly", Format: "{Y}{M}-{ccm,3}", Description: "year, month and invoices issued this month"},
		{Name: "customer", Format: "{cnumber}-{ccc,4}", Description: "customer number and that customer's invoices"},
		{Name: "daily", Format: "{date}-{ccd,2}", Description: "yymmdd and invoices issued today"},
		{Name: "sequential", Format: "{cc,6}", Description: "all invoices ever issued"},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// New validates entries and builds a catalog; def names the default entry
// and falls back to the first one when empty
func New(def string, entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog: no formats")
	}
	c := &Catalog{entries: make([]Entry, 0, len(entries)), byName: make(map[string]int, len(entries))}
	for _, e := range entries {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			return nil, fmt.Errorf("catalog: format %q has no name", e.Format)
		}
		if e.Format == "" {
			return nil, fmt.Errorf("catalog: format %q is empty", e.Name)
		}
		if _, dup := c.byName[e.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate format name %q", e.Name)
		}
		if _, err := numberpattern.Compile(e.Format); err != nil {
			return nil, fmt.Errorf("catalog: format %q: %w", e.Name, err)
		}
		c.byName[e.Name] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	if def == "" {
		def = c.entries[0].Name
	}
	if _, ok := c.byName[def]; !ok {
		return nil, fmt.Errorf("catalog: default format %q is not defined", def)
	}
	c.def = def
	return c, nil
}

// Load reads a .yaml, .yml or .toml catalog
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	var f file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		err = dec.Decode(&f)
	case ".toml":
		var md toml.MetaData
		md, err = toml.Decode(string(raw), &f)
		if err == nil {
			if extra := md.Undecoded(); len(extra) > 0 {
				err = fmt.Errorf("unknown keys %v", extra)
			}
		}
	default:
		return nil, fmt.Errorf("catalog: unsupported file type %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", filepath.Base(path), err)
	}
	return New(f.Default, f.Formats)
}

// MustLoad is Load for startup, an empty path yields Default
func MustLoad(path string) *Catalog {
	if path == "" {
		return Default()
	}
	c, err := Load(path)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the entry called name
func (c *Catalog) Get(name string) (Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// DefaultEntry returns the entry used when none is named
func (c *Catalog) DefaultEntry() Entry {
	e, _ := c.Get(c.def)
	return e
}

// Entries returns the formats in file order
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}
