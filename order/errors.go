package order

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an order id does not exist.
var ErrNotFound = errors.New("order not found")

// PersistenceError reports a storage failure. The transaction it happened in
// has already been rolled back.
type PersistenceError struct {
	Err error
	Op  string
}

// Error names the failed operation and its cause.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s order: %v", e.Op, e.Err)
}

// Unwrap returns the storage error.
func (e *PersistenceError) Unwrap() error { return e.Err }

// ValidationError describes one rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

// Error returns "<field> <reason>".
func (e ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// ValidationErrors collects every rejected field of a request.
type ValidationErrors []ValidationError

// Error joins the field messages with "; ".
func (v ValidationErrors) Error() string {
	var b strings.Builder
	for i, e := range v {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// OrNil returns nil when nothing was rejected.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
