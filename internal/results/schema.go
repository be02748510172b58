package results

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema only gates whether a JSON file is a result document at all.
// Malformed entries inside a matching document are skipped by the parser.
const documentSchema = `{
  "type": "object",
  "required": ["dataset", "results"],
  "properties": {
    "dataset": {"type": "string"},
    "results": {"type": "object"}
  }
}`

// strictSchema describes the full result document shape accepted by the loader.
const strictSchema = `{
  "type": "object",
  "required": ["dataset", "results"],
  "properties": {
    "dataset": {"type": "string", "minLength": 1},
    "results": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": {
          "type": "object",
          "properties": {
            "model": {"type": "string"},
            "ref_alias": {"type": "string"},
            "lead_time": {"type": ["integer", "null"], "minimum": 0},
            "result": {
              "oneOf": [
                {
                  "type": "array",
                  "items": {
                    "type": "object",
                    "properties": {
                      "Metric": {"type": "string"},
                      "Variable": {"type": "string"},
                      "Value": {"type": ["number", "null"]}
                    }
                  }
                },
                {
                  "type": "object",
                  "additionalProperties": {
                    "type": "object",
                    "additionalProperties": {"type": ["number", "null"]}
                  }
                }
              ]
            }
          }
        }
      }
    }
  }
}`

var (
	documentSchemaOnce = sync.OnceValues(func() (*gojsonschema.Schema, error) {
		return gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchema))
	})
	strictSchemaOnce = sync.OnceValues(func() (*gojsonschema.Schema, error) {
		return gojsonschema.NewSchema(gojsonschema.NewStringLoader(strictSchema))
	})
)

// ValidationError lists every schema violation found in a result document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "result document does not match schema: " + strings.Join(e.Problems, "; ")
}

// Validate checks raw JSON against the full result document schema.
func Validate(raw []byte) error {
	schema, err := strictSchemaOnce()
	if err != nil {
		return fmt.Errorf("compile result schema: %w", err)
	}
	return validateWith(schema, raw)
}

// isResultDocument reports whether raw carries the dataset/results envelope.
func isResultDocument(raw []byte) error {
	schema, err := documentSchemaOnce()
	if err != nil {
		return fmt.Errorf("compile document schema: %w", err)
	}
	return validateWith(schema, raw)
}

func validateWith(schema *gojsonschema.Schema, raw []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return &ValidationError{Problems: problems}
}
