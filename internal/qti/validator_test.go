package qti

import (
	"strings"
	"testing"
)

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Validators) != 1 || cfg.Validators[0].Name() != "length" {
		t.Fatalf("unexpected default chain: %v", cfg.Validators)
	}

	strict := StrictConfig()
	names := []string{"length", "well-formed"}
	if len(strict.Validators) != len(names) {
		t.Fatalf("expected %d validators, got %d", len(names), len(strict.Validators))
	}
	for i, v := range strict.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestLengthValidator(t *testing.T) {
	v := &LengthValidator{Min: 10}
	tests := []struct {
		in   string
		fail bool
	}{
		{"", true},
		{"<a/>", true},
		{strings.Repeat("x", 10), true},
		{strings.Repeat("x", 11), false},
		{strings.Repeat("é", 10), true},
		{"<assessmentItem/>", false},
	}
	for _, tt := range tests {
		err := v.Validate(tt.in)
		if tt.fail && (err == nil || err.Kind != KindEmptyResult) {
			t.Errorf("Validate(%q): expected empty_result, got %v", tt.in, err)
		}
		if !tt.fail && err != nil {
			t.Errorf("Validate(%q): unexpected error %v", tt.in, err)
		}
	}
}

func TestWellFormedValidator(t *testing.T) {
	v := &WellFormedValidator{}
	valid := []string{
		`<assessmentItem/>`,
		`<?xml version="1.0" encoding="UTF-8"?>
<assessmentItem xmlns="http://www.imsglobal.org/xsd/imsqti_v2p1" identifier="q1">
  <responseDeclaration identifier="RESPONSE" cardinality="single" baseType="identifier">
    <correctResponse><value>B</value></correctResponse>
  </responseDeclaration>
  <!-- comment -->
  <itemBody><p>What is 2+2?</p></itemBody>
</assessmentItem>`,
	}
	for _, in := range valid {
		if err := v.Validate(in); err != nil {
			t.Errorf("expected valid, got %v for %q", err, in)
		}
	}

	invalid := []string{
		`<assessmentItem>`,
		`<a></b>`,
		`<a/><b/>`,
		`Here is your XML: <a/>`,
		`just prose, no markup`,
		`<a attr=unquoted/>`,
	}
	for _, in := range invalid {
		err := v.Validate(in)
		if err == nil || err.Kind != KindMalformedResult {
			t.Errorf("expected malformed_result for %q, got %v", in, err)
		}
	}
}
