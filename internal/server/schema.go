package server

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed convert.schema.json
var convertSchemaJSON []byte

const convertSchemaURL = "schema://convert.json"

var convertSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(convertSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse convert schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(convertSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(convertSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validateEnvelope checks a decoded request body against the convert
// request schema.
func validateEnvelope(body []byte) error {
	schema, err := convertSchema()
	if err != nil {
		return err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("request does not match schema: %w", err)
	}
	return nil
}
