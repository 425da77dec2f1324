package mets

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

const (
	nsMETS  = "http://www.loc.gov/METS/"
	nsMODS  = "http://www.loc.gov/mods/v3"
	nsGoobi = "http://meta.goobi.org/v1.5.1/"
	nsXlink = "http://www.w3.org/1999/xlink"
)

// XMLWriter writes documents as METS files with MODS/Goobi metadata sections.
type XMLWriter struct {
	// Indent pretty-prints the output when set.
	Indent bool
}

type xmlMets struct {
	XMLName    xml.Name       `xml:"mets:mets"`
	XmlnsMETS  string         `xml:"xmlns:mets,attr"`
	XmlnsMODS  string         `xml:"xmlns:mods,attr"`
	XmlnsGoobi string         `xml:"xmlns:goobi,attr"`
	XmlnsXlink string         `xml:"xmlns:xlink,attr"`
	DmdSecs    []xmlDmdSec    `xml:"mets:dmdSec"`
	StructMaps []xmlStructMap `xml:"mets:structMap"`
}

type xmlDmdSec struct {
	ID       string        `xml:"ID,attr"`
	Metadata []xmlMetadata `xml:"mets:mdWrap>mets:xmlData>mods:mods>mods:extension>goobi:goobi>goobi:metadata"`
}

type xmlMetadata struct {
	Name         string        `xml:"name,attr"`
	Type         string        `xml:"type,attr,omitempty"`
	AuthorityURI string        `xml:"authorityURI,attr,omitempty"`
	Value        string        `xml:",chardata"`
	FirstName    string        `xml:"goobi:firstName,omitempty"`
	LastName     string        `xml:"goobi:lastName,omitempty"`
	DisplayName  string        `xml:"goobi:displayName,omitempty"`
	MainName     string        `xml:"goobi:mainName,omitempty"`
	SubName      string        `xml:"goobi:subName,omitempty"`
	PartName     string        `xml:"goobi:partName,omitempty"`
	Members      []xmlMetadata `xml:"goobi:metadata,omitempty"`
}

type xmlStructMap struct {
	Type string `xml:"TYPE,attr"`
	Div  xmlDiv `xml:"mets:div"`
}

type xmlDiv struct {
	ID    string `xml:"ID,attr"`
	Type  string `xml:"TYPE,attr"`
	DmdID string `xml:"DMDID,attr"`
}

// Write serializes doc to path. The file is written to a temporary name in
// the same directory and renamed, so readers never see a partial document.
func (w XMLWriter) Write(path string, doc *Document) error {
	out := xmlMets{
		XmlnsMETS:  nsMETS,
		XmlnsMODS:  nsMODS,
		XmlnsGoobi: nsGoobi,
		XmlnsXlink: nsXlink,
		DmdSecs: []xmlDmdSec{
			{ID: "DMDLOG_0000", Metadata: toXML(&doc.Logical)},
			{ID: "DMDPHYS_0000", Metadata: toXML(&doc.Physical)},
		},
		StructMaps: []xmlStructMap{
			{Type: "LOGICAL", Div: xmlDiv{ID: "LOG_0000", Type: doc.Logical.Type, DmdID: "DMDLOG_0000"}},
			{Type: "PHYSICAL", Div: xmlDiv{ID: "PHYS_0000", Type: doc.Physical.Type, DmdID: "DMDPHYS_0000"}},
		},
	}

	var data []byte
	var err error
	if w.Indent {
		data, err = xml.MarshalIndent(out, "", "  ")
	} else {
		data, err = xml.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	data = append([]byte(xml.Header), data...)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".mets-*.xml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func toXML(ds *DocStruct) []xmlMetadata {
	out := make([]xmlMetadata, 0, len(ds.Metadata)+len(ds.Persons)+len(ds.Corporates)+len(ds.Groups))
	for _, m := range ds.Metadata {
		out = append(out, xmlMetadata{Name: m.Type, Value: m.Value, AuthorityURI: m.Authority})
	}
	for _, p := range ds.Persons {
		out = append(out, xmlMetadata{
			Name:         p.Role,
			Type:         KindPerson,
			AuthorityURI: p.Authority,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			DisplayName:  p.DisplayName(),
		})
	}
	for _, c := range ds.Corporates {
		out = append(out, xmlMetadata{
			Name:         c.Role,
			Type:         KindCorporate,
			AuthorityURI: c.Authority,
			MainName:     c.Name,
			SubName:      c.SubName,
			PartName:     c.PartName,
		})
	}
	for _, g := range ds.Groups {
		members := make([]xmlMetadata, 0, len(g.Metadata))
		for _, m := range g.Metadata {
			members = append(members, xmlMetadata{Name: m.Type, Value: m.Value, AuthorityURI: m.Authority})
		}
		out = append(out, xmlMetadata{Name: g.Type, Type: KindGroup, Members: members})
	}
	return out
}
