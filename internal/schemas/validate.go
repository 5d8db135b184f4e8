// Package schemas provides JSON Schema validation for imported CV documents.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// CVImportSchema is the repo-relative path of the import document schema.
const CVImportSchema = "schemas/cv_import.schema.json"

// ResolveSchemaPath attempts to find a schema file by trying multiple common
// path resolutions, since commands and tests may run from different working
// directories. Returns the first path that exists, or empty string.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// ValidationError carries the field-level messages of a failed validation.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document validation failed: %s", strings.Join(e.Errors, "; "))
}

// ValidateCVImport validates an import document against the CV import
// schema. Returns *ValidationError when the document is invalid.
func ValidateCVImport(document []byte) error {
	schemaPath := ResolveSchemaPath(CVImportSchema)
	if schemaPath == "" {
		return fmt.Errorf("schema file not found: %s", CVImportSchema)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaPath)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}

	if !result.Valid() {
		validationErr := &ValidationError{}
		for _, desc := range result.Errors() {
			validationErr.Errors = append(validationErr.Errors, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return validationErr
	}
	return nil
}
