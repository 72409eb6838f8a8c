package axml

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBinaryXML is returned when the leading magic word is not the
	// binary XML document type.
	ErrNotBinaryXML = errors.New("not binary xml")

	// ErrStringPoolMissing is returned when the first chunk after the
	// file header is not a string pool.
	ErrStringPoolMissing = errors.New("string pool not found")

	// ErrElementNotFound is returned when the chunk stream is exhausted
	// without locating the target element.
	ErrElementNotFound = errors.New("element not found")

	// ErrAttributeNotFound is returned when the target element carries
	// no attribute with the target name and a usable value.
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrTruncated is returned by reads that fall outside of the buffer.
	ErrTruncated = errors.New("truncated")
)

// LookupError records the element and attribute that a failed
// lookup was searching for.
type LookupError struct {
	Tag       string
	Attribute string
	Err       error
}

func (e *LookupError) Error() string {
	switch {
	case errors.Is(e.Err, ErrAttributeNotFound):
		return fmt.Sprintf("<%s %s>: %v", e.Tag, e.Attribute, e.Err)
	case e.Tag != "":
		return fmt.Sprintf("<%s>: %v", e.Tag, e.Err)
	}

	return e.Err.Error()
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
