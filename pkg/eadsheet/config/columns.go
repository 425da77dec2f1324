package config

// MetadataColumn maps one spreadsheet column to a document field and an EAD
// field at a given level.
type MetadataColumn struct {
	// RulesetName is the metadata type name used in the descriptive document.
	RulesetName string `yaml:"metadataField" toml:"metadataField"`
	// EadName is the field name inside the EAD area selected by Level.
	EadName string `yaml:"eadField" toml:"eadField"`
	// Level selects the description area (1-7).
	Level int `yaml:"level" toml:"level"`
	// Column is the header name or column letter of the source column.
	Column string `yaml:"column" toml:"column"`
	// Identifier marks the column as the record identifier.
	Identifier bool `yaml:"identifier" toml:"identifier"`
	// AuthorityColumn optionally references a column with an authority URI.
	AuthorityColumn string `yaml:"authorityColumn" toml:"authorityColumn"`
}

// SecondColumn is the optional mapping for the second non-blank cell.
type SecondColumn struct {
	MetadataColumn `yaml:",inline"`
	Enabled        bool `yaml:"enabled" toml:"enabled"`
}

// PersonColumn maps one or two columns to a person name.
type PersonColumn struct {
	RulesetName string `yaml:"metadataField" toml:"metadataField"`
	EadName     string `yaml:"eadField" toml:"eadField"`
	Level       int    `yaml:"level" toml:"level"`
	// FirstNameColumn holds the first name when names are not split.
	FirstNameColumn string `yaml:"firstnameColumn" toml:"firstnameColumn"`
	// NameColumn holds the last name, or the full name when SplitName is set.
	NameColumn      string `yaml:"nameColumn" toml:"nameColumn"`
	AuthorityColumn string `yaml:"authorityColumn" toml:"authorityColumn"`
	// SplitName splits NameColumn at SplitChar into first and last name.
	SplitName bool   `yaml:"splitName" toml:"splitName"`
	SplitChar string `yaml:"splitChar" toml:"splitChar"`
	// FirstNameIsFirst tells whether the first name precedes the split char.
	FirstNameIsFirst bool `yaml:"firstNameIsFirst" toml:"firstNameIsFirst"`
}

// CorporateColumn maps up to three columns to a corporate name.
type CorporateColumn struct {
	RulesetName     string `yaml:"metadataField" toml:"metadataField"`
	EadName         string `yaml:"eadField" toml:"eadField"`
	Level           int    `yaml:"level" toml:"level"`
	NameColumn      string `yaml:"nameColumn" toml:"nameColumn"`
	SubNameColumn   string `yaml:"subNameColumn" toml:"subNameColumn"`
	PartNameColumn  string `yaml:"partNameColumn" toml:"partNameColumn"`
	AuthorityColumn string `yaml:"authorityColumn" toml:"authorityColumn"`
	// SplitName splits NameColumn at SplitChar into name, sub name and part name.
	SplitName bool   `yaml:"splitName" toml:"splitName"`
	SplitChar string `yaml:"splitChar" toml:"splitChar"`
}

// GroupColumns bundles several metadata columns under one logical field.
type GroupColumns struct {
	RulesetName string           `yaml:"metadataField" toml:"metadataField"`
	EadName     string           `yaml:"eadField" toml:"eadField"`
	Level       int              `yaml:"level" toml:"level"`
	Columns     []MetadataColumn `yaml:"columns" toml:"columns"`
}

// ColumnRefs lists every column reference the template reads, in
// configuration order. Empty references are left out.
func (t *Template) ColumnRefs() []string {
	var refs []string
	add := func(names ...string) {
		for _, n := range names {
			if n != "" {
				refs = append(refs, n)
			}
		}
	}
	meta := t.Metadata
	add(t.NodeTypeColumn)
	for _, c := range meta.AdditionalFields {
		add(c.Column, c.AuthorityColumn)
	}
	for _, p := range meta.Persons {
		add(p.FirstNameColumn, p.NameColumn, p.AuthorityColumn)
	}
	for _, c := range meta.Corporates {
		add(c.NameColumn, c.SubNameColumn, c.PartNameColumn, c.AuthorityColumn)
	}
	for _, g := range meta.Groups {
		for _, c := range g.Columns {
			add(c.Column, c.AuthorityColumn)
		}
	}
	return refs
}
