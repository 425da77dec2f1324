package eadsheet

import (
	"encoding/json"
	"fmt"
	"os"
)

// SaveRecords writes the phase 1 outcome as JSON so phase 2 can run later.
func SaveRecords(path string, set *RecordSet) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// LoadRecords reads a record set written by SaveRecords.
func LoadRecords(path string) (*RecordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var set RecordSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("decode records %s: %w", path, err)
	}
	return &set, nil
}
