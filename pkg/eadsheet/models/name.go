package models

import "strings"

// Person is a person name split into its parts.
type Person struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Authority string `json:"authority,omitempty"`
}

// Empty reports whether the person has no name part.
func (p Person) Empty() bool {
	return IsBlank(p.FirstName) && IsBlank(p.LastName)
}

// DisplayName renders the name as "Last, First".
func (p Person) DisplayName() string {
	switch {
	case IsBlank(p.FirstName):
		return p.LastName
	case IsBlank(p.LastName):
		return p.FirstName
	default:
		return p.LastName + ", " + p.FirstName
	}
}

// Corporate is a corporate body name split into its parts.
type Corporate struct {
	Name      string `json:"name,omitempty"`
	SubName   string `json:"sub_name,omitempty"`
	PartName  string `json:"part_name,omitempty"`
	Authority string `json:"authority,omitempty"`
}

// Empty reports whether the corporate body has no name part.
func (c Corporate) Empty() bool {
	return IsBlank(c.Name) && IsBlank(c.SubName) && IsBlank(c.PartName)
}

// DisplayName joins the non-blank name parts with " - ".
func (c Corporate) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Name, c.SubName, c.PartName} {
		if !IsBlank(p) {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " - ")
}
