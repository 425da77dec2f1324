package models

// Manifest is the ordered, deduplicated set of image files for one record.
type Manifest struct {
	// RecordID is the identifier used to look up the image directory.
	RecordID string `json:"record_id"`
	// Dir is the source directory the files were selected from.
	Dir string `json:"dir,omitempty"`
	// Files contains absolute paths in directory order.
	Files []string `json:"files,omitempty"`
}
