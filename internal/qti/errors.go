package qti

import (
	"errors"
	"fmt"
)

// Kind classifies a conversion failure.
type Kind string

const (
	// KindValidation: required input for the selected mode is missing or
	// unusable. No provider call was made.
	KindValidation Kind = "validation"

	// KindConfiguration: the provider credential is missing. No network
	// call was made.
	KindConfiguration Kind = "configuration"

	// KindProvider: the provider call failed.
	KindProvider Kind = "provider"

	// KindEmptyResult: the cleaned output is too short to be a document.
	KindEmptyResult Kind = "empty_result"

	// KindMalformedResult: strict mode found the output is not well-formed
	// XML.
	KindMalformedResult Kind = "malformed_result"
)

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrValidation      = &Error{Kind: KindValidation}
	ErrConfiguration   = &Error{Kind: KindConfiguration}
	ErrProvider        = &Error{Kind: KindProvider}
	ErrEmptyResult     = &Error{Kind: KindEmptyResult}
	ErrMalformedResult = &Error{Kind: KindMalformedResult}
)

// Error is the failure returned by Convert.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
