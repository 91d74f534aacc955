package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed document.schema.json
var documentSchema string

// ValidateJSON validates raw document JSON against document.schema.json.
func ValidateJSON(data []byte) error {
	return validate(gojsonschema.NewBytesLoader(data))
}

// ValidateMap validates a generic map against document.schema.json.
func ValidateMap(m map[string]interface{}) error {
	return validate(gojsonschema.NewGoLoader(m))
}

func validate(doc gojsonschema.JSONLoader) error {
	schemaLoader := gojsonschema.NewStringLoader(documentSchema)
	res, err := gojsonschema.Validate(schemaLoader, doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: schema validation failed: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

// DecodeDocument validates data and decodes it into a Document. The legacy
// "template" key is accepted as an alias for "theme".
func DecodeDocument(data []byte) (Document, error) {
	if err := ValidateJSON(data); err != nil {
		return Document{}, err
	}
	var wire struct {
		Document
		Template string `json:"template"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	doc := wire.Document
	if doc.Theme == "" {
		doc.Theme = wire.Template
	}
	return doc, nil
}
