package models

// Snapshot holds the header order and the row data of a process row, enough
// to regenerate its metadata without re-reading the spreadsheet.
type Snapshot struct {
	// Header maps column names to column indexes.
	Header Header `json:"header"`
	// Row is the normalized process row.
	Row Row `json:"row"`
}

// Record represents a tree node marked for process creation.
type Record struct {
	// ID is the resolved identifier used to locate the image folder.
	ID string `json:"id"`
	// Label is the first non-blank value of the row.
	Label string `json:"label"`
	// NodeID is the identifier of the archive node created for the row.
	NodeID string `json:"node_id"`
	// Snapshot is the data needed for document emission.
	Snapshot Snapshot `json:"snapshot"`
}
