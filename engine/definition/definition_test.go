package definition

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexID_UnmarshalJSON(t *testing.T) {
	t.Run("Should decode string and numeric forms to the same canonical text", func(t *testing.T) {
		var fromString, fromNumber FlexID
		require.NoError(t, json.Unmarshal([]byte(`"12345"`), &fromString))
		require.NoError(t, json.Unmarshal([]byte(`12345`), &fromNumber))
		assert.Equal(t, fromString, fromNumber)
		assert.Equal(t, "12345", fromNumber.String())
	})

	t.Run("Should strip a redundant fractional part", func(t *testing.T) {
		var id FlexID
		require.NoError(t, json.Unmarshal([]byte(`42.0`), &id))
		assert.Equal(t, "42", id.String())
	})

	t.Run("Should decode null as the zero identifier", func(t *testing.T) {
		var id FlexID
		require.NoError(t, json.Unmarshal([]byte(`null`), &id))
		assert.True(t, id.IsZero())
	})
}

func TestNormalizeID(t *testing.T) {
	t.Run("Should collapse all representations onto one key", func(t *testing.T) {
		assert.Equal(t, "77", NormalizeID("77"))
		assert.Equal(t, "77", NormalizeID(77))
		assert.Equal(t, "77", NormalizeID(int64(77)))
		assert.Equal(t, "77", NormalizeID(float64(77)))
		assert.Equal(t, "77", NormalizeID(json.Number("77.0")))
		assert.Equal(t, "77", NormalizeID(FlexID("77")))
	})

	t.Run("Should keep non-integer floats intact", func(t *testing.T) {
		assert.Equal(t, "7.5", NormalizeID(7.5))
	})

	t.Run("Should map nil to the empty key", func(t *testing.T) {
		assert.Equal(t, "", NormalizeID(nil))
	})
}

func TestIsHexID(t *testing.T) {
	t.Run("Should match 24-character hexadecimal identifiers only", func(t *testing.T) {
		assert.True(t, IsHexID("65a1b2c3d4e5f6a7b8c9d0e1"))
		assert.False(t, IsHexID("65a1b2c3d4e5f6a7b8c9d0e"))
		assert.False(t, IsHexID("quantity"))
		assert.False(t, IsHexID(""))
	})
}

func TestParameter_Payload(t *testing.T) {
	t.Run("Should resolve a flat option list", func(t *testing.T) {
		p := Parameter{Data: []any{
			map[string]any{"id": "o1", "name": "Yes"},
			map[string]any{"id": float64(2), "label": "No"},
		}}
		payload := p.Payload()
		assert.Equal(t, PayloadOptions, payload.Kind)
		require.Len(t, payload.Options, 2)
		assert.Equal(t, "Yes", payload.Options[0].DisplayText())
		assert.Equal(t, "No", payload.Options[1].DisplayText())
		assert.Equal(t, FlexID("2"), payload.Options[1].ID)
	})

	t.Run("Should resolve nested choices and options lists", func(t *testing.T) {
		choices := Parameter{Data: map[string]any{
			"choices": []any{map[string]any{"id": "c1", "name": "Red"}},
		}}
		options := Parameter{Data: map[string]any{
			"options": []any{map[string]any{"id": "c2", "displayName": "Blue"}},
		}}
		assert.Equal(t, PayloadNestedOptions, choices.Payload().Kind)
		assert.Equal(t, PayloadNestedOptions, options.Payload().Kind)
		assert.Equal(t, "Blue", options.Payload().Options[0].DisplayText())
	})

	t.Run("Should resolve a resource filter payload", func(t *testing.T) {
		p := Parameter{Data: map[string]any{
			"objectTypeDisplayName": "Equipment",
			"propertyFilters": map[string]any{
				"op": "AND",
				"fields": []any{map[string]any{
					"field":    "searchable.65a1b2c3d4e5f6a7b8c9d0e1",
					"op":       "EQ",
					"selector": "CONSTANT",
					"values":   []any{"65a1b2c3d4e5f6a7b8c9d0e2"},
				}},
			},
		}}
		payload := p.Payload()
		assert.Equal(t, PayloadResource, payload.Kind)
		assert.Equal(t, "Equipment", payload.ObjectTypeName)
		require.NotNil(t, payload.Filter)
		require.Len(t, payload.Filter.Fields, 1)
		assert.Equal(t, "searchable.65a1b2c3d4e5f6a7b8c9d0e1", payload.Filter.Fields[0].Key)
	})

	t.Run("Should resolve free text and fall back to unknown", func(t *testing.T) {
		text := Parameter{Data: map[string]any{"text": "Wipe down the workbench."}}
		assert.Equal(t, PayloadText, text.Payload().Kind)
		assert.Equal(t, "Wipe down the workbench.", text.Payload().Text)

		empty := Parameter{}
		assert.Equal(t, PayloadUnknown, empty.Payload().Kind)

		junk := Parameter{Data: map[string]any{"unexpected": true}}
		assert.Equal(t, PayloadUnknown, junk.Payload().Kind)
	})
}

func TestDecode(t *testing.T) {
	t.Run("Should decode a single definition object", func(t *testing.T) {
		defs, err := Decode([]byte(`{"name":"Cleaning","stages":[{"name":"Intake","tasks":[{"id":101,"name":"Collect Info"}]}]}`))
		require.NoError(t, err)
		require.Len(t, defs, 1)
		assert.Equal(t, "Cleaning", defs[0].Name)
		require.Len(t, defs[0].Stages, 1)
		assert.Equal(t, FlexID("101"), defs[0].Stages[0].Tasks[0].ID)
	})

	t.Run("Should decode an array of definitions", func(t *testing.T) {
		defs, err := Decode([]byte(`[{"name":"A"},{"name":"B"}]`))
		require.NoError(t, err)
		require.Len(t, defs, 2)
		assert.Equal(t, "B", defs[1].Name)
	})

	t.Run("Should reject invalid JSON and scalar input", func(t *testing.T) {
		_, err := Decode([]byte(`{"name":`))
		require.Error(t, err)
		_, err = Decode([]byte(`"just a string"`))
		require.Error(t, err)
	})
}
