package model

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const artifactSchemaURL = "schema://loan-approval-model.json"

// artifactSchema describes the on-disk logistic regression artifact. Array
// lengths are pinned to the feature count so a model trained on a different
// schema is refused at load time.
const artifactSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["format", "feature_names", "coefficients", "intercept"],
  "properties": {
    "format": {"const": "logistic-regression"},
    "version": {"type": "string"},
    "feature_names": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "minItems": 11,
      "maxItems": 11
    },
    "means": {"type": "array", "items": {"type": "number"}, "minItems": 11, "maxItems": 11},
    "scales": {"type": "array", "items": {"type": "number", "exclusiveMinimum": 0}, "minItems": 11, "maxItems": 11},
    "coefficients": {"type": "array", "items": {"type": "number"}, "minItems": 11, "maxItems": 11},
    "intercept": {"type": "number"},
    "threshold": {"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 1}
  },
  "additionalProperties": false
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(artifactSchema), &doc); err != nil {
			compileErr = fmt.Errorf("parse artifact schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(artifactSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(artifactSchemaURL)
	})
	return compiledSchema, compileErr
}

func validateArtifact(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	s, err := schema()
	if err != nil {
		return err
	}
	if err := s.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
