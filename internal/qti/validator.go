package qti

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Validator checks a sanitized result before it is returned.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name is a short identifier used in logs, e.g. "length".
	Name() string

	// Validate returns nil if the output passes. A failure is an *Error
	// carrying the kind the check maps to.
	Validate(output string) *Error
}

// LengthValidator rejects output of Min runes or fewer.
type LengthValidator struct {
	Min int
}

func (v *LengthValidator) Name() string { return "length" }

func (v *LengthValidator) Validate(output string) *Error {
	if n := utf8.RuneCountInString(output); n <= v.Min {
		return &Error{
			Kind:    KindEmptyResult,
			Message: fmt.Sprintf("provider returned %d characters, want more than %d", n, v.Min),
		}
	}
	return nil
}

// WellFormedValidator rejects output that is not a single well-formed XML
// document. It does not check QTI structure.
type WellFormedValidator struct{}

func (v *WellFormedValidator) Name() string { return "well-formed" }

func (v *WellFormedValidator) Validate(output string) *Error {
	dec := xml.NewDecoder(strings.NewReader(output))
	dec.Strict = true

	roots := 0
	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return &Error{Kind: KindMalformedResult, Message: "output is not well-formed XML", Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(string(t)) != "" {
				return &Error{Kind: KindMalformedResult, Message: "text outside the root element"}
			}
		}
	}

	switch {
	case roots == 0:
		return &Error{Kind: KindMalformedResult, Message: "no root element"}
	case roots > 1:
		return &Error{Kind: KindMalformedResult, Message: fmt.Sprintf("%d root elements, want 1", roots)}
	case depth != 0:
		return &Error{Kind: KindMalformedResult, Message: "unclosed element"}
	}
	return nil
}
