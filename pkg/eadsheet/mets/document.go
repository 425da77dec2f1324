package mets

import "github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"

// Metadata is a typed single value.
type Metadata struct {
	Type      string
	Value     string
	Authority string
}

// Person is a person attached to a structure under a role.
type Person struct {
	Role string
	models.Person
}

// Corporate is a corporate body attached to a structure under a role.
type Corporate struct {
	Role string
	models.Corporate
}

// Group bundles metadata under one group type.
type Group struct {
	Type     string
	Metadata []Metadata
}

// DocStruct is a logical or physical structure element.
type DocStruct struct {
	Type       string
	Metadata   []Metadata
	Persons    []Person
	Corporates []Corporate
	Groups     []Group
}

// Value returns the values of the given metadata type in order.
func (d *DocStruct) Value(metadataType string) []string {
	var out []string
	for _, m := range d.Metadata {
		if m.Type == metadataType {
			out = append(out, m.Value)
		}
	}
	return out
}

// Document is the logical/physical pair written for one record.
type Document struct {
	Logical  DocStruct
	Physical DocStruct
}
