package format

import (
	"errors"
	"fmt"
)

// ErrMalformed reports a tagged mapping whose structure does not match its
// tag, e.g. {"_type": "set"} with no "_value".
var ErrMalformed = errors.New("malformed tagged mapping")

// ConvertError describes a structural problem found while converting a
// document between stages.
type ConvertError struct {
	Path    string // document path, e.g. "$.heuristics.related[0]"
	Message string
	Err     error
}

func (e *ConvertError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("convert error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("convert error: %s", e.Message)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

func convertErr(at, message string, err error) error {
	return &ConvertError{Path: at, Message: message, Err: err}
}
