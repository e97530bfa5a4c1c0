package qti

import (
	"fmt"
	"strings"
)

// Mode selects which input path a conversion takes.
type Mode string

const (
	ModeText Mode = "text"
	ModeFile Mode = "file"
	ModeLink Mode = "link"
)

// Modes lists every input mode.
var Modes = []Mode{ModeText, ModeFile, ModeLink}

// ParseMode maps a case-insensitive mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeText, ModeFile, ModeLink:
		return m, nil
	}
	return "", fmt.Errorf("unknown input mode %q: must be text, file, or link", s)
}

// Attachment is a single user-supplied document.
type Attachment struct {
	// Name is the original file name. Informational only.
	Name string

	// MIMEType is the declared content type, passed through to the provider.
	MIMEType string

	// Data is the file content, standard base64-encoded.
	Data string
}

// Request is one conversion input. It is one of TextRequest, LinkRequest,
// or FileRequest; the set is closed.
type Request interface {
	Mode() Mode
	isRequest()
}

// TextRequest converts a pasted block of text.
type TextRequest struct {
	Text string
}

// LinkRequest converts the content behind a URL, using provider-side
// web grounding.
type LinkRequest struct {
	URL string
}

// FileRequest converts an uploaded document.
type FileRequest struct {
	Attachment *Attachment
}

func (TextRequest) Mode() Mode { return ModeText }
func (LinkRequest) Mode() Mode { return ModeLink }
func (FileRequest) Mode() Mode { return ModeFile }

func (TextRequest) isRequest() {}
func (LinkRequest) isRequest() {}
func (FileRequest) isRequest() {}

// NewRequest builds the Request for mode from the payload that mode uses.
// Payload fields belonging to other modes are ignored.
func NewRequest(mode Mode, text, url string, attachment *Attachment) (Request, error) {
	switch mode {
	case ModeText:
		return TextRequest{Text: text}, nil
	case ModeLink:
		return LinkRequest{URL: url}, nil
	case ModeFile:
		return FileRequest{Attachment: attachment}, nil
	}
	return nil, &Error{Kind: KindValidation, Message: fmt.Sprintf("unknown input mode %q", mode)}
}
