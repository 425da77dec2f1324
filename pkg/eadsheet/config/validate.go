package config

import (
	"fmt"
	"strings"
)

// Levels is the number of EAD description areas a mapping can target.
const Levels = 7

// ValidationError lists every problem found in a template.
type ValidationError struct {
	Template string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid template %q: %s", e.Template, strings.Join(e.Problems, "; "))
}

// Validate checks the template for problems that would make an import
// meaningless. It runs before any tree mutation.
func (t *Template) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if t.StartRow < 0 {
		add("startRow must not be negative")
	}
	if t.HeaderRow < 0 {
		add("headerRow must not be negative")
	}
	if t.Metadata.LengthLimit < 0 {
		add("lengthLimit must not be negative")
	}

	if t.Metadata.FirstField == nil {
		add("metadata.firstField is required")
	} else {
		checkLevel(add, "firstField", t.Metadata.FirstField.EadName, t.Metadata.FirstField.Level)
	}
	if second := t.Second(); second != nil {
		checkLevel(add, "secondField", second.EadName, second.Level)
	}
	for i, col := range t.Metadata.AdditionalFields {
		name := fmt.Sprintf("additionalFields[%d]", i)
		if col.Column == "" {
			add("%s: column is required", name)
		}
		checkLevel(add, name, col.EadName, col.Level)
	}
	for i, p := range t.Metadata.Persons {
		name := fmt.Sprintf("persons[%d]", i)
		if p.NameColumn == "" {
			add("%s: nameColumn is required", name)
		}
		if p.SplitName && p.SplitChar == "" {
			add("%s: splitChar is required when splitName is set", name)
		}
		checkLevel(add, name, p.EadName, p.Level)
	}
	for i, c := range t.Metadata.Corporates {
		name := fmt.Sprintf("corporates[%d]", i)
		if c.NameColumn == "" {
			add("%s: nameColumn is required", name)
		}
		if c.SplitName && c.SplitChar == "" {
			add("%s: splitChar is required when splitName is set", name)
		}
		checkLevel(add, name, c.EadName, c.Level)
	}
	for i, g := range t.Metadata.Groups {
		for j, col := range g.Columns {
			name := fmt.Sprintf("groups[%d].columns[%d]", i, j)
			if col.Column == "" {
				add("%s: column is required", name)
			}
			checkLevel(add, name, col.EadName, col.Level)
		}
	}
	for level := range t.EadFields {
		if level < 1 || level > Levels {
			add("eadFields: level %d out of range 1-%d", level, Levels)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Template: t.Name, Problems: problems}
	}
	return nil
}

// checkLevel requires a valid level for mappings that write into the tree.
func checkLevel(add func(string, ...any), name, eadName string, level int) {
	if eadName == "" {
		return
	}
	if level < 1 || level > Levels {
		add("%s: level %d out of range 1-%d", name, level, Levels)
	}
}
