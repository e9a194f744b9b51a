package common

import "errors"

// SimpleTimeFormat is the human readable timestamp format used in reports
// and CSV data files
const SimpleTimeFormat = "2006-01-02 15:04:05"

var (
	// ErrNilArguments is a common error response to highlight that nils were
	// passed in when they should not have been
	ErrNilArguments = errors.New("received nil argument(s)")
	// ErrNilPointer defines an error when a pointer is nil
	ErrNilPointer = errors.New("nil pointer")
)
