package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/spark/internal/theme"
	spkerrors "github.com/alexisbeaulieu97/spark/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadTheme reads a theme document from disk and builds the theme it
// describes.
func LoadTheme(path string) (*theme.Theme, error) {
	return LoadThemeFS(afero.NewOsFs(), path)
}

// LoadThemeFS reads a theme document from fs.
func LoadThemeFS(fs afero.Fs, path string) (*theme.Theme, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, spkerrors.NewParseError(path, 0, err)
	}
	return ParseTheme(path, data)
}

// ParseTheme decodes, validates and builds a theme document. path is only
// used in error messages.
func ParseTheme(path string, data []byte) (*theme.Theme, error) {
	doc, err := ParseDocument(path, data)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// ParseDocument decodes and validates a theme document without building it.
// Unknown keys are rejected.
func ParseDocument(path string, data []byte) (*Document, error) {
	var doc Document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, spkerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ValidateDocument runs field and struct-level validation on doc.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return spkerrors.NewValidationError("document", "document is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(doc))
}

// Marshal encodes doc as YAML.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

// convertValidationError normalizes validator errors into validation errors
// keyed by the YAML path of the first failing field.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return spkerrors.NewValidationError(field, msg, err)
	}

	return spkerrors.NewValidationError("document", err.Error(), err)
}

// yamlPath turns a validator namespace into a document path. The Document
// root is implicit; other roots are kept lowercased.
func yamlPath(fe validator.FieldError) string {
	root, rest, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return strings.ToLower(root)
	}
	if root == "Document" {
		return rest
	}
	return strings.ToLower(root) + "." + rest
}
