package mets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Metadata type kinds.
const (
	KindValue     = ""
	KindPerson    = "person"
	KindCorporate = "corporate"
	KindGroup     = "group"
)

// MetadataType is one metadata type declared by the ruleset.
type MetadataType struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// Prefs is the ruleset the document is checked against. A nil *Prefs
// accepts every type.
type Prefs struct {
	DocStructTypes []string       `yaml:"docStructTypes"`
	MetadataTypes  []MetadataType `yaml:"metadataTypes"`

	docStructs map[string]bool
	metadata   map[string]MetadataType
}

// LoadPrefs reads a YAML ruleset.
func LoadPrefs(path string) (*Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ruleset: %w", err)
	}
	p := &Prefs{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse ruleset: %w", err)
	}
	p.index()
	return p, nil
}

// NewPrefs builds prefs from declared names.
func NewPrefs(docStructs []string, metadata []MetadataType) *Prefs {
	p := &Prefs{DocStructTypes: docStructs, MetadataTypes: metadata}
	p.index()
	return p
}

func (p *Prefs) index() {
	p.docStructs = make(map[string]bool, len(p.DocStructTypes))
	for _, t := range p.DocStructTypes {
		p.docStructs[t] = true
	}
	p.metadata = make(map[string]MetadataType, len(p.MetadataTypes))
	for _, t := range p.MetadataTypes {
		p.metadata[t.Name] = t
	}
}

// HasDocStruct reports whether the structure type is declared.
func (p *Prefs) HasDocStruct(name string) bool {
	if p == nil {
		return true
	}
	return p.docStructs[name]
}

// MetadataType looks up a metadata type by name.
func (p *Prefs) MetadataType(name string) (MetadataType, bool) {
	if p == nil {
		return MetadataType{Name: name}, name != ""
	}
	t, ok := p.metadata[name]
	return t, ok
}
