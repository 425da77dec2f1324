package mets

import (
	"errors"
	"fmt"
)

// ErrUnknownDocStruct indicates the ruleset does not declare a structure type.
var ErrUnknownDocStruct = errors.New("structure type not defined in ruleset")

// MetadataError reports metadata dropped from a document.
type MetadataError struct {
	Type   string
	Reason string
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("metadata %q: %s", e.Type, e.Reason)
}
