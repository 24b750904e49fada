// Package schemas validates JSON data files against the repository's
// JSON Schema definitions.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ApplicationsSchema is the repo-relative path of the tracking-file schema.
const ApplicationsSchema = "schemas/applications.schema.json"

// ResolvePath finds a schema file by trying the path relative to the
// working directory and then one and two levels up. Commands and tests
// run from different directories, so a single relative path is not
// enough. Returns "" when nothing exists.
func ResolvePath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}
	for _, candidate := range candidates {
		if abs, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(abs); err == nil {
				return abs
			}
		}
	}
	return ""
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports why a document does not conform to a schema.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:\n")
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// LoadError reports that the schema itself could not be loaded or parsed.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ValidateBytes validates raw JSON data against the schema file at
// schemaPath. Returns *ValidationError when the data does not conform
// and *LoadError when the schema is unusable.
func ValidateBytes(schemaPath string, data []byte) error {
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return &LoadError{Path: schemaPath, Cause: err}
	}
	if _, err := os.Stat(abs); err != nil {
		return &LoadError{Path: abs, Cause: err}
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + abs)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &LoadError{Path: abs, Cause: err}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}

// ApplicationsValidator returns a tracking-file validator bound to the
// applications schema, or nil when the schema file cannot be found
// (validation is then skipped rather than failing every load).
func ApplicationsValidator() func(data []byte) error {
	path := ResolvePath(ApplicationsSchema)
	if path == "" {
		return nil
	}
	return func(data []byte) error {
		return ValidateBytes(path, data)
	}
}
