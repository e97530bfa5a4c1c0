package qti

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	for _, in := range []string{"text", "TEXT", " link ", "File"} {
		if _, err := ParseMode(in); err != nil {
			t.Errorf("ParseMode(%q) unexpected error: %v", in, err)
		}
	}
	if _, err := ParseMode("video"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestNewRequest(t *testing.T) {
	att := &Attachment{Name: "a.pdf", MIMEType: "application/pdf", Data: "AAAA"}

	req, err := NewRequest(ModeText, "hello", "ignored", att)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r, ok := req.(TextRequest); !ok || r.Text != "hello" {
		t.Errorf("got %#v", req)
	}

	req, _ = NewRequest(ModeLink, "ignored", "https://example.com", nil)
	if r, ok := req.(LinkRequest); !ok || r.URL != "https://example.com" {
		t.Errorf("got %#v", req)
	}

	req, _ = NewRequest(ModeFile, "", "", att)
	if r, ok := req.(FileRequest); !ok || r.Attachment != att {
		t.Errorf("got %#v", req)
	}

	if _, err := NewRequest(Mode("audio"), "", "", nil); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRequestMode(t *testing.T) {
	if (TextRequest{}).Mode() != ModeText || (LinkRequest{}).Mode() != ModeLink || (FileRequest{}).Mode() != ModeFile {
		t.Error("request modes do not match their types")
	}
}
