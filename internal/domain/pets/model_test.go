package pets

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validData() map[string]any {
	return map[string]any{
		"name":      "Fido",
		"category":  "dog",
		"available": true,
		"gender":    "MALE",
	}
}

func TestParseAvailable(t *testing.T) {
	for _, s := range []string{"yes", "Y", "TRUE", "t", "1", "Yes"} {
		assert.True(t, ParseAvailable(s), s)
	}
	for _, s := range []string{"no", "n", "false", "0", "", " yes", "2", "si"} {
		assert.False(t, ParseAvailable(s), s)
	}
}

func TestSerialize_AllFields(t *testing.T) {
	p := Pet{ID: "abc", Name: "Kitty", Category: "cat", Available: false, Gender: GenderFemale}

	got := p.Serialize()

	assert.Equal(t, map[string]any{
		"id":        "abc",
		"name":      "Kitty",
		"category":  "cat",
		"available": false,
		"gender":    "FEMALE",
	}, got)
}

func TestDeserialize_Valid(t *testing.T) {
	p := Pet{ID: "keep-me"}

	require.NoError(t, p.Deserialize(validData()))

	assert.Equal(t, Pet{ID: "keep-me", Name: "Fido", Category: "dog", Available: true, Gender: GenderMale}, p)
}

func TestDeserialize_IgnoresBodyID(t *testing.T) {
	data := validData()
	data["id"] = 42
	p := Pet{ID: "original"}

	require.NoError(t, p.Deserialize(data))
	assert.Equal(t, "original", p.ID)
}

func TestDeserialize_RoundTripThroughJSON(t *testing.T) {
	src := Pet{ID: "x", Name: "Rex", Category: "dog", Available: true, Gender: GenderUnknown}
	b, err := json.Marshal(src.Serialize())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	dst := Pet{ID: "x"}
	require.NoError(t, dst.Deserialize(m))
	assert.Equal(t, src, dst)
}

func TestDeserialize_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
		field  string
		kind   ValidationKind
	}{
		{"missing name", func(m map[string]any) { delete(m, "name") }, "name", KindMissing},
		{"missing category", func(m map[string]any) { delete(m, "category") }, "category", KindMissing},
		{"null available", func(m map[string]any) { m["available"] = nil }, "available", KindMissing},
		{"missing gender", func(m map[string]any) { delete(m, "gender") }, "gender", KindMissing},
		{"available as string", func(m map[string]any) { m["available"] = "true" }, "available", KindWrongType},
		{"name as number", func(m map[string]any) { m["name"] = 3.0 }, "name", KindWrongType},
		{"gender as number", func(m map[string]any) { m["gender"] = 1.0 }, "gender", KindWrongType},
		{"gender lowercase", func(m map[string]any) { m["gender"] = "male" }, "gender", KindInvalidEnum},
		{"gender unknown token", func(m map[string]any) { m["gender"] = "ROBOT" }, "gender", KindInvalidEnum},
		{"empty name", func(m map[string]any) { m["name"] = "" }, "name", KindInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validData()
			tt.mutate(data)

			before := Pet{ID: "1", Name: "old", Category: "old", Available: true, Gender: GenderFemale}
			p := before
			err := p.Deserialize(data)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.kind, ve.Kind)
			assert.Equal(t, before, p, "pet must stay untouched on error")
			assert.False(t, errors.Is(err, ErrNotFound))
			assert.False(t, errors.Is(err, ErrNotAvailable))
		})
	}
}

func TestDeserialize_NilData(t *testing.T) {
	var p Pet
	var ve *ValidationError
	require.ErrorAs(t, p.Deserialize(nil), &ve)
	assert.Equal(t, KindInvalidValue, ve.Kind)
}

func TestGenderValid(t *testing.T) {
	assert.True(t, GenderMale.Valid())
	assert.True(t, GenderUnknown.Valid())
	assert.False(t, Gender("male").Valid())
}
