package eadsheet

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input spreadsheet does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrConfig wraps configuration problems detected before the tree is touched.
var ErrConfig = errors.New("invalid import configuration")

// ErrEmptyTitle indicates the title recipe produced nothing for a record.
var ErrEmptyTitle = errors.New("empty process title")

// ErrDuplicateTitle indicates a process title generated for an earlier record.
var ErrDuplicateTitle = errors.New("duplicate process title")

// Stages of phase 2 a record can fail in.
const (
	StageTitle    = "title"
	StageImages   = "images"
	StageDocument = "document"
	StageCopy     = "copy"
)

// RecordError represents a failure while generating the files of one record.
type RecordError struct {
	RecordID string
	Stage    string // "title", "images", "document", "copy"
	Err      error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %q (%s): %v", e.RecordID, e.Stage, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError.
func NewRecordError(recordID, stage string, err error) *RecordError {
	return &RecordError{
		RecordID: recordID,
		Stage:    stage,
		Err:      err,
	}
}
