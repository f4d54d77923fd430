package resume

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/resumeforge/resumeforge/pkg/errors"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func documentSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	})
	return schema, schemaErr
}

// Validate checks a decoded tree against the embedded document schema.
// The first violation is reported as a VALIDATION_ERROR naming the failing
// path; unknown keys never fail.
func Validate(root *Mapping) error {
	s, err := documentSchema()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "compiling document schema")
	}
	data, err := json.Marshal(root)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding document for validation")
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "validating document")
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return errors.New(errors.ErrCodeValidation, "invalid resume document: %s: %s", first.Field(), first.Description())
	}
	return nil
}
