package contract

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed payload.schema.json
var payloadSchemaJSON []byte

var ErrSchemaViolation = errors.New("payload does not match schema")

// SchemaError lists every schema violation found in one document.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return ErrSchemaViolation.Error() + ": " + strings.Join(e.Violations, "; ")
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaViolation
}

var (
	payloadSchemaOnce sync.Once
	payloadSchema     *gojsonschema.Schema
	payloadSchemaErr  error
)

func compiledPayloadSchema() (*gojsonschema.Schema, error) {
	payloadSchemaOnce.Do(func() {
		payloadSchema, payloadSchemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(payloadSchemaJSON))
	})
	return payloadSchema, payloadSchemaErr
}

// ValidatePayloadJSON checks a submission body against the payload schema.
// Violations are returned as *SchemaError.
func ValidatePayloadJSON(raw []byte) error {
	schema, err := compiledPayloadSchema()
	if err != nil {
		return fmt.Errorf("compile payload schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		// The document itself could not be loaded, usually malformed JSON.
		return &SchemaError{Violations: []string{err.Error()}}
	}
	if res.Valid() {
		return nil
	}
	violations := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		violations = append(violations, e.String())
	}
	return &SchemaError{Violations: violations}
}
