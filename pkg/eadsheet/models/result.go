package models

// ImportResult describes what phase 2 produced for one record.
type ImportResult struct {
	// RecordID is the identifier of the processed record.
	RecordID string `json:"record_id"`
	// ProcessTitle is the generated process title.
	ProcessTitle string `json:"process_title"`
	// DocumentPath is the descriptive document written for the record.
	DocumentPath string `json:"document_path"`
	// ImageDir is the directory the images were copied to (empty when none).
	ImageDir string `json:"image_dir,omitempty"`
	// Images lists the copied files.
	Images []string `json:"images,omitempty"`
	// Errors holds per-record failures. Processing continued regardless.
	Errors []error `json:"-"`
}

// Failed reports whether any step for this record failed.
func (r ImportResult) Failed() bool {
	return len(r.Errors) > 0
}
