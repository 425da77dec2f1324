package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Wildcard is the template name used when no template matches exactly.
const Wildcard = "*"

// ErrTemplateNotFound indicates neither the requested nor the wildcard template exists.
var ErrTemplateNotFound = errors.New("no matching template")

// Descriptor is the parsed configuration file.
type Descriptor struct {
	Templates []Template `yaml:"templates" toml:"templates"`
}

// Template describes how one workflow imports a spreadsheet.
type Template struct {
	// Name is the workflow name this template applies to, or "*".
	Name string `yaml:"template" toml:"template"`
	// ImageRoot is the directory searched for per-record image folders.
	ImageRoot string `yaml:"images" toml:"images"`
	// Database is the name of the archive database the tree is written to.
	Database string `yaml:"database" toml:"database"`
	// StartRow is the 1-based number of the first data row.
	StartRow int `yaml:"startRow" toml:"startRow"`
	// HeaderRow is the 1-based number of the header row, 0 for none.
	HeaderRow int `yaml:"headerRow" toml:"headerRow"`
	// NodeTypeColumn optionally names the node type discriminator column.
	NodeTypeColumn string `yaml:"nodeType" toml:"nodeType"`
	// NodeTypes lists the node types the archive knows about.
	NodeTypes []string `yaml:"nodeTypes" toml:"nodeTypes"`
	// RunAsScript marks imports that should run in the background.
	RunAsScript bool `yaml:"runAsScript" toml:"runAsScript"`
	// EadFields optionally overrides the field names declared per level.
	EadFields map[int][]string `yaml:"eadFields" toml:"-"`

	Metadata   Metadata   `yaml:"metadata" toml:"metadata"`
	ImageRules ImageRules `yaml:"imageRules" toml:"imageRules"`
}

// Metadata holds the column mappings and process title recipe.
type Metadata struct {
	DocType          string            `yaml:"docType" toml:"docType"`
	PhysicalType     string            `yaml:"physicalType" toml:"physicalType"`
	FirstField       *MetadataColumn   `yaml:"firstField" toml:"firstField"`
	SecondField      *SecondColumn     `yaml:"secondField" toml:"secondField"`
	AdditionalFields []MetadataColumn  `yaml:"additionalFields" toml:"additionalFields"`
	Persons          []PersonColumn    `yaml:"persons" toml:"persons"`
	Corporates       []CorporateColumn `yaml:"corporates" toml:"corporates"`
	Groups           []GroupColumns    `yaml:"groups" toml:"groups"`
	// MainTitleField is the ruleset name whose value becomes the node label.
	MainTitleField string `yaml:"mainTitleField" toml:"mainTitleField"`
	// Title is the process title token recipe.
	Title []string `yaml:"title" toml:"title"`
	// LengthLimit truncates generated titles, 0 for no limit.
	LengthLimit int    `yaml:"lengthLimit" toml:"lengthLimit"`
	Separator   string `yaml:"separator" toml:"separator"`
}

// ImageRules controls image selection for a record.
type ImageRules struct {
	// EditedSuffix marks the edited version of an image, e.g. "_bearbeitet".
	EditedSuffix string `yaml:"edited" toml:"edited"`
	// Excluded is a filename substring that excludes a file.
	Excluded string `yaml:"excluded" toml:"excluded"`
	// Extensions lists accepted file extensions including the dot.
	Extensions []string `yaml:"extensions" toml:"extensions"`
}

func (t *Template) defaults() {
	if len(t.NodeTypes) == 0 {
		t.NodeTypes = []string{"folder", "file"}
	}
	if t.Metadata.DocType == "" {
		t.Metadata.DocType = "Monograph"
	}
	if t.Metadata.PhysicalType == "" {
		t.Metadata.PhysicalType = "BoundBook"
	}
	if t.Metadata.MainTitleField == "" {
		t.Metadata.MainTitleField = "TitleDocMain"
	}
	if t.Metadata.Separator == "" {
		t.Metadata.Separator = "_"
	}
	if t.ImageRules.EditedSuffix == "" {
		t.ImageRules.EditedSuffix = "_bearbeitet"
	}
	if t.ImageRules.Excluded == "" {
		t.ImageRules.Excluded = "komprimiert"
	}
	if len(t.ImageRules.Extensions) == 0 {
		t.ImageRules.Extensions = []string{".tif", ".jpg", ".wmv"}
	}
}

// DataStart returns the 1-based number of the first data row.
func (t *Template) DataStart() int {
	if t.StartRow > t.HeaderRow {
		return t.StartRow
	}
	return t.HeaderRow + 1
}

// Second returns the second field mapping, or nil when it is disabled.
func (t *Template) Second() *MetadataColumn {
	if t.Metadata.SecondField == nil || !t.Metadata.SecondField.Enabled {
		return nil
	}
	return &t.Metadata.SecondField.MetadataColumn
}

// Template returns the template for name, falling back to the wildcard
// template. The returned template has its defaults applied and is validated.
func (d *Descriptor) Template(name string) (*Template, error) {
	var wildcard *Template
	for i := range d.Templates {
		t := &d.Templates[i]
		if t.Name == name {
			return prepare(*t)
		}
		if t.Name == Wildcard && wildcard == nil {
			wildcard = t
		}
	}
	if wildcard == nil {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return prepare(*wildcard)
}

func prepare(t Template) (*Template, error) {
	t.defaults()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load reads a YAML or TOML descriptor, chosen by file extension.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	default:
		return ParseYAML(data)
	}
}

// ParseYAML parses a YAML descriptor.
func ParseYAML(data []byte) (*Descriptor, error) {
	d := &Descriptor{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parse descriptor: %w", err)
	}
	return d, nil
}

// ParseTOML parses a TOML descriptor.
func ParseTOML(data []byte) (*Descriptor, error) {
	d := &Descriptor{}
	if err := toml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parse descriptor: %w", err)
	}
	return d, nil
}
