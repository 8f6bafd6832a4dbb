package pets

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Campos obligatorios, en el orden en que se reportan.
var requiredFields = []string{"name", "category", "available", "gender"}

func petSchemaDoc() map[string]any {
	enum := make([]any, 0, len(genders))
	for _, g := range genders {
		enum = append(enum, string(g))
	}
	return map[string]any{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"type":     "object",
		"required": requiredFields,
		"properties": map[string]any{
			"name":      map[string]any{"type": "string", "minLength": 1},
			"category":  map[string]any{"type": "string"},
			"available": map[string]any{"type": "boolean"},
			"gender":    map[string]any{"type": "string", "enum": enum},
		},
	}
}

var (
	schemaOnce sync.Once
	petSchema  *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := json.Marshal(petSchemaDoc())
		if err != nil {
			schemaErr = fmt.Errorf("marshal pet schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource("pet.json", strings.NewReader(string(raw))); err != nil {
			schemaErr = fmt.Errorf("add pet schema: %w", err)
			return
		}
		petSchema, schemaErr = c.Compile("pet.json")
	})
	return petSchema, schemaErr
}

// validatePayload corre primero la verificación de obligatorios (para poder
// nombrar el campo faltante) y luego el schema para tipos y enums.
func validatePayload(data map[string]any) error {
	for _, f := range requiredFields {
		if v, ok := data[f]; !ok || v == nil {
			return &ValidationError{Field: f, Kind: KindMissing}
		}
	}

	s, err := compiledSchema()
	if err != nil {
		return err
	}

	err = s.Validate(map[string]any(data))
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &ValidationError{Kind: KindInvalidValue, Detail: err.Error()}
	}
	return toValidationError(ve)
}

func toValidationError(ve *jsonschema.ValidationError) *ValidationError {
	var leaves []*jsonschema.ValidationError
	collectLeaves(ve, &leaves)

	var best *ValidationError
	bestRank := 0
	for _, l := range leaves {
		field := strings.TrimPrefix(l.InstanceLocation, "/")
		kw := l.KeywordLocation[strings.LastIndex(l.KeywordLocation, "/")+1:]

		kind := KindInvalidValue
		switch kw {
		case "type":
			kind = KindWrongType
		case "enum":
			kind = KindInvalidEnum
		case "required":
			kind = KindMissing
		}

		rank := fieldRank(field)*10 + kindRank(kind)
		if best == nil || rank < bestRank {
			best = &ValidationError{Field: field, Kind: kind, Detail: l.Message}
			bestRank = rank
		}
	}
	if best == nil {
		return &ValidationError{Kind: KindInvalidValue, Detail: ve.Message}
	}
	return best
}

func collectLeaves(ve *jsonschema.ValidationError, out *[]*jsonschema.ValidationError) {
	if len(ve.Causes) == 0 {
		*out = append(*out, ve)
		return
	}
	for _, c := range ve.Causes {
		collectLeaves(c, out)
	}
}

func fieldRank(field string) int {
	for i, f := range requiredFields {
		if f == field {
			return i
		}
	}
	return len(requiredFields)
}

// type gana sobre enum: un número en gender es un tipo incorrecto, no un token inválido.
func kindRank(k ValidationKind) int {
	switch k {
	case KindMissing:
		return 0
	case KindWrongType:
		return 1
	case KindInvalidEnum:
		return 2
	default:
		return 3
	}
}
