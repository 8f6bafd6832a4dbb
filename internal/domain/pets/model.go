package pets

import (
	"errors"
	"fmt"
	"strings"
)

// Gender define el sexo de la mascota.
// @Enum MALE, FEMALE, UNKNOWN
type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderUnknown Gender = "UNKNOWN"
)

var genders = []Gender{GenderMale, GenderFemale, GenderUnknown}

// Valid indica si el token es uno de los géneros conocidos (case-sensitive).
func (g Gender) Valid() bool {
	for _, v := range genders {
		if g == v {
			return true
		}
	}
	return false
}

var (
	ErrNotFound     = errors.New("pet not found")
	ErrNotAvailable = errors.New("pet is not available")
)

// ValidationKind clasifica por qué falló la deserialización.
type ValidationKind string

const (
	KindMissing      ValidationKind = "missing"
	KindWrongType    ValidationKind = "wrong_type"
	KindInvalidEnum  ValidationKind = "invalid_enum"
	KindInvalidValue ValidationKind = "invalid_value"
)

// ValidationError se devuelve cuando el payload de una mascota no es válido.
type ValidationError struct {
	Field  string
	Kind   ValidationKind
	Detail string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMissing:
		return fmt.Sprintf("Invalid pet: missing %s", e.Field)
	case KindWrongType:
		return fmt.Sprintf("Invalid type for field [%s]: %s", e.Field, e.Detail)
	case KindInvalidEnum:
		return fmt.Sprintf("Invalid value for field [%s]: %s", e.Field, e.Detail)
	default:
		if e.Field == "" {
			return "Invalid pet: " + e.Detail
		}
		return fmt.Sprintf("Invalid pet field [%s]: %s", e.Field, e.Detail)
	}
}

// Pet es el único recurso del servicio.
type Pet struct {
	ID        string
	Name      string
	Category  string
	Available bool
	Gender    Gender
}

// Serialize devuelve la representación JSON-compatible con los cinco campos.
func (p Pet) Serialize() map[string]any {
	return map[string]any{
		"id":        p.ID,
		"name":      p.Name,
		"category":  p.Category,
		"available": p.Available,
		"gender":    string(p.Gender),
	}
}

// Deserialize reemplaza name/category/available/gender desde data.
// El id nunca se toma del payload. Si data no es válido, p queda intacto.
func (p *Pet) Deserialize(data map[string]any) error {
	if data == nil {
		return &ValidationError{Kind: KindInvalidValue, Detail: "body of request contained bad or no data"}
	}
	if err := validatePayload(data); err != nil {
		return err
	}

	p.Name = data["name"].(string)
	p.Category = data["category"].(string)
	p.Available = data["available"].(bool)
	p.Gender = Gender(data["gender"].(string))
	return nil
}

var truthyTokens = []string{"yes", "y", "true", "t", "1"}

// ParseAvailable interpreta valores de query/form: true solo para los
// tokens yes, y, true, t, 1 (sin distinguir mayúsculas). Todo lo demás es false.
func ParseAvailable(s string) bool {
	s = strings.ToLower(s)
	for _, t := range truthyTokens {
		if s == t {
			return true
		}
	}
	return false
}
