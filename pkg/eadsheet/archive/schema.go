package archive

// Schema declares the field names available in each description area.
// Only declared fields receive values during projection.
type Schema [AreaCount][]string

// DefaultSchema returns the field names of the ISAD(G) based EAD profile.
func DefaultSchema() Schema {
	return Schema{
		IdentityStatement:   {"unitid", "unittitle", "unitdate", "unitdatestructured", "descriptionLevel", "physdesc", "physdescquantity", "physdescunit"},
		Context:             {"origination", "role", "bioghist", "custodhist", "acqinfo"},
		ContentAndStructure: {"scopecontent", "appraisal", "accruals", "arrangement"},
		AccessAndUse:        {"accessrestrict", "userestrict", "langmaterial", "font", "phystech", "otherfindaid"},
		AlliedMaterials:     {"originalsloc", "altformavail", "separatedmaterial", "bibliography"},
		Notes:               {"didnote", "odd"},
		DescriptionControl:  {"processinfo", "conventiondeclaration", "status"},
	}
}

// WithOverrides returns a copy of s where the areas named by level (1-7) in
// overrides are replaced.
func (s Schema) WithOverrides(overrides map[int][]string) Schema {
	out := s
	for level, names := range overrides {
		if area, ok := AreaForLevel(level); ok {
			out[area] = append([]string(nil), names...)
		}
	}
	return out
}

// newFields creates empty fields for every declared name.
func (s Schema) newFields() [AreaCount][]*Field {
	var areas [AreaCount][]*Field
	for i, names := range s {
		areas[i] = make([]*Field, 0, len(names))
		for _, name := range names {
			areas[i] = append(areas[i], &Field{Name: name})
		}
	}
	return areas
}
