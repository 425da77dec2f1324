package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/config"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"
)

var header = models.Header{"Signatur": 3, "Person": 4, "Vorname": 5, "GND": 6, "Körperschaft": 7}

func TestIdentifierLastConfiguredWins(t *testing.T) {
	row := models.NewRow(2, []string{"", "A1", "B2", "SIG-9"}, nil)
	tmpl := &config.Template{Metadata: config.Metadata{
		FirstField:       &config.MetadataColumn{Identifier: true},
		AdditionalFields: []config.MetadataColumn{{Column: "Signatur", Identifier: true}},
	}}

	assert.Equal(t, "SIG-9", Identifier(row, header, tmpl))
}

func TestIdentifierOrder(t *testing.T) {
	row := models.NewRow(2, []string{"", "A1", "B2", ""}, nil)

	tests := []struct {
		name     string
		tmpl     *config.Template
		expected string
	}{
		{
			name: "first only",
			tmpl: &config.Template{Metadata: config.Metadata{
				FirstField: &config.MetadataColumn{Identifier: true},
			}},
			expected: "A1",
		},
		{
			name: "second overrides first",
			tmpl: &config.Template{Metadata: config.Metadata{
				FirstField:  &config.MetadataColumn{Identifier: true},
				SecondField: &config.SecondColumn{Enabled: true, MetadataColumn: config.MetadataColumn{Identifier: true}},
			}},
			expected: "B2",
		},
		{
			name: "disabled second is ignored",
			tmpl: &config.Template{Metadata: config.Metadata{
				FirstField:  &config.MetadataColumn{Identifier: true},
				SecondField: &config.SecondColumn{MetadataColumn: config.MetadataColumn{Identifier: true}},
			}},
			expected: "A1",
		},
		{
			name: "blank additional keeps earlier value",
			tmpl: &config.Template{Metadata: config.Metadata{
				FirstField:       &config.MetadataColumn{Identifier: true},
				AdditionalFields: []config.MetadataColumn{{Column: "Signatur", Identifier: true}},
			}},
			expected: "A1",
		},
		{
			name:     "nothing flagged",
			tmpl:     &config.Template{Metadata: config.Metadata{FirstField: &config.MetadataColumn{}}},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Identifier(row, header, tt.tmpl))
		})
	}
}

func TestPerson(t *testing.T) {
	row := models.NewRow(2, []string{"", "", "", "", "Müller, Hans", "Anna", "gnd/123"}, nil)

	split := Person(row, header, config.PersonColumn{NameColumn: "Person", SplitName: true, SplitChar: ",", AuthorityColumn: "GND"})
	assert.Equal(t, models.Person{FirstName: "Hans", LastName: "Müller", Authority: "gnd/123"}, split)
	assert.Equal(t, "Müller, Hans", split.DisplayName())

	firstFirst := Person(row, header, config.PersonColumn{NameColumn: "Person", SplitName: true, SplitChar: ",", FirstNameIsFirst: true})
	assert.Equal(t, "Müller", firstFirst.FirstName)
	assert.Equal(t, "Hans", firstFirst.LastName)

	columns := Person(row, header, config.PersonColumn{NameColumn: "Person", FirstNameColumn: "Vorname"})
	assert.Equal(t, "Müller, Hans", columns.LastName)
	assert.Equal(t, "Anna", columns.FirstName)

	noSplitChar := Person(models.NewRow(3, []string{"", "", "", "", "Hans"}, nil), header,
		config.PersonColumn{NameColumn: "Person", SplitName: true, SplitChar: ","})
	assert.Equal(t, models.Person{LastName: "Hans"}, noSplitChar)
	assert.Equal(t, "Hans", noSplitChar.DisplayName())
}

func TestCorporate(t *testing.T) {
	row := models.NewRow(2, []string{"", "", "", "", "", "", "", "Rat / Kanzlei / Registratur"}, nil)

	corp := Corporate(row, header, config.CorporateColumn{NameColumn: "Körperschaft", SplitName: true, SplitChar: "/"})
	assert.Equal(t, models.Corporate{Name: "Rat", SubName: "Kanzlei", PartName: "Registratur"}, corp)
	assert.Equal(t, "Rat - Kanzlei - Registratur", corp.DisplayName())

	whole := Corporate(row, header, config.CorporateColumn{NameColumn: "Körperschaft", SubNameColumn: "Missing"})
	assert.Equal(t, "Rat / Kanzlei / Registratur", whole.DisplayName())
	assert.True(t, Corporate(row, header, config.CorporateColumn{NameColumn: "Missing"}).Empty())
}
