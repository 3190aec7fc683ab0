package impressum

import (
	"errors"
	"fmt"
)

// Kind classifies a generation failure.
type Kind string

const (
	// KindConfig is a missing or unusable configuration value.
	KindConfig Kind = "config"
	// KindInput is an input file that cannot be read.
	KindInput Kind = "input"
	// KindValidation is contact data that is present but unusable.
	KindValidation Kind = "validation"
	// KindOutput is a failure writing the document or fixing its mode.
	KindOutput Kind = "output"
)

// Sentinel errors wrapped by Error.
var (
	ErrEmptyField  = errors.New("field is empty")
	ErrMissingAt   = errors.New("email has no '@' separator")
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8")
)

// Error is a classified generation failure.
type Error struct {
	Kind Kind   // Failure class
	Op   string // Step that failed, e.g. "read email"
	Path string // File involved, if any
	Err  error  // Underlying cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s %s: %v", e.Kind, e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap classifies err. A nil err yields nil.
func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// KindOf extracts the failure class from err.
// Returns an empty Kind if err was not produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if err != nil && errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
