package dataset

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const recordSchemaURL = "schema://learnlens/record.json"

// recordSchemaJSON describes a single learner record. Optional fields may be
// absent, but when present they must have the right type and range.
const recordSchemaJSON = `{
  "type": "object",
  "required": ["LearnerID"],
  "properties": {
    "LearnerID": {"type": ["string", "number"], "minLength": 1},
    "Grade": {"type": ["string", "number", "null"]},
    "LearningBarrier": {"type": "boolean"},
    "Subject": {"type": "string"},
    "Term": {"type": "integer", "minimum": 1, "maximum": 52},
    "Mark": {"type": "number", "minimum": 0, "maximum": 100},
    "Attendance": {"type": "number", "minimum": 0, "maximum": 100},
    "SocioEconomicIndicator": {"type": "string"},
    "TeacherNotes": {"type": "string"}
  }
}`

var (
	recordSchemaOnce sync.Once
	recordSchema     *jsonschema.Schema
	recordSchemaErr  error
)

// compiledRecordSchema compiles the record schema once per process.
func compiledRecordSchema() (*jsonschema.Schema, error) {
	recordSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(recordSchemaJSON))
		if err != nil {
			recordSchemaErr = fmt.Errorf("parse record schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(recordSchemaURL, doc); err != nil {
			recordSchemaErr = fmt.Errorf("add record schema: %w", err)
			return
		}
		recordSchema, recordSchemaErr = c.Compile(recordSchemaURL)
	})
	return recordSchema, recordSchemaErr
}

// validateRecord checks one raw record against the record schema and
// returns a single-line description of every violation.
func validateRecord(raw []byte) (string, error) {
	schema, err := compiledRecordSchema()
	if err != nil {
		return "", err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return "invalid JSON: " + err.Error(), nil
	}

	if err := schema.Validate(inst); err != nil {
		return flattenValidationError(err), nil
	}
	return "", nil
}

// flattenValidationError turns the library's indented multi-line report into
// one line, dropping the header that names the schema URL.
func flattenValidationError(err error) string {
	var parts []string
	for _, line := range strings.Split(err.Error(), "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		if line == "" || strings.HasPrefix(line, "jsonschema validation failed") {
			continue
		}
		parts = append(parts, line)
	}
	if len(parts) == 0 {
		return err.Error()
	}
	return strings.Join(parts, "; ")
}
