package corpus

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://corpus.json"

// corpusSchema describes a corpus file: an ordered list of prompts.
var corpusSchema = map[string]any{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type":    "array",
	"items": map[string]any{
		"type": "string",
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, corpusSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks a decoded JSON document against the corpus schema.
func validateDocument(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile corpus schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("corpus schema validation failed: %w", err)
	}
	return nil
}
