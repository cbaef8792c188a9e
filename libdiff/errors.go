package libdiff

import "fmt"

// DiffError reports a malformed diff node or a patch that does not fit
// the document it is applied to. Path locates the offence in the
// document tree.
type DiffError struct {
	Path    string
	Message string
	Err     error
}

func (e *DiffError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *DiffError) Unwrap() error {
	return e.Err
}

func diffErr(at, msg string, err error) *DiffError {
	return &DiffError{Path: at, Message: msg, Err: err}
}

func atField(at, k string) string {
	return at + "." + k
}

func atIndex(at string, i int) string {
	return fmt.Sprintf("%s[%d]", at, i)
}
