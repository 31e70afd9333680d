package normalize

import (
	"testing"

	"github.com/oas-emend/emendapi/emended"
	"github.com/oas-emend/emendapi/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertSchema_NullableRoundtrip(t *testing.T) {
	// Concrete scenario 1: OAS 3.0 nullable string.
	in := &source.Schema{Type: "string", Nullable: true}
	out := ConvertSchemaFromOAS30(in)

	require.Equal(t, emended.KindOneOf, out.Kind)
	require.Len(t, out.Branches, 2)
	assert.Equal(t, emended.KindString, out.Branches[0].Kind)
	assert.Equal(t, emended.KindNull, out.Branches[1].Kind)
}

func TestConvertSchema_MixedTypeExpansion(t *testing.T) {
	// Concrete scenario 2: OAS 3.1 type array.
	in := &source.Schema{Type: []any{"string", "integer", "null"}}
	out := ConvertSchemaFromOAS31(in)

	require.Equal(t, emended.KindOneOf, out.Kind)
	require.Len(t, out.Branches, 3)
	kinds := []emended.Kind{out.Branches[0].Kind, out.Branches[1].Kind, out.Branches[2].Kind}
	assert.Equal(t, []emended.Kind{emended.KindString, emended.KindInteger, emended.KindNull}, kinds)
}

func TestConvertSchema_EnumFanOut(t *testing.T) {
	// Concrete scenario 3.
	in := &source.Schema{Type: "string", Enum: []any{"a", "b"}}
	out := ConvertSchemaFromOAS30(in)

	require.Equal(t, emended.KindOneOf, out.Kind)
	require.Len(t, out.Branches, 2)
	assert.Equal(t, emended.KindConstant, out.Branches[0].Kind)
	assert.Equal(t, "a", out.Branches[0].ConstValue)
	assert.Equal(t, emended.KindConstant, out.Branches[1].Kind)
	assert.Equal(t, "b", out.Branches[1].ConstValue)
}

func TestConvertSchema_Const(t *testing.T) {
	in := &source.Schema{Type: "string", Const: "fixed"}
	out := ConvertSchemaFromOAS31(in)

	require.Equal(t, emended.KindConstant, out.Kind)
	assert.Equal(t, "fixed", out.ConstValue)
}

func TestConvertSchema_RefRewrite(t *testing.T) {
	in := &source.Schema{Ref: "#/definitions/Pet"}
	out := ConvertSchemaFromSwagger2(in)

	require.Equal(t, emended.KindReference, out.Kind)
	assert.Equal(t, "#/components/schemas/Pet", out.Ref)
}

func TestConvertSchema_RecursiveRefDemoted(t *testing.T) {
	in := &source.Schema{RecursiveRef: "#/components/schemas/Node"}
	out := ConvertSchemaFromOAS31(in)

	require.Equal(t, emended.KindReference, out.Kind)
	assert.Equal(t, "#/components/schemas/Node", out.Ref)
}

func TestConvertSchema_XNullable(t *testing.T) {
	in := &source.Schema{
		Type:  "integer",
		Extra: map[string]any{"x-nullable": true},
	}
	out := ConvertSchemaFromSwagger2(in)

	require.Equal(t, emended.KindOneOf, out.Kind)
	require.Len(t, out.Branches, 2)
	assert.Equal(t, emended.KindInteger, out.Branches[0].Kind)
	assert.Equal(t, emended.KindNull, out.Branches[1].Kind)
}

func TestConvertSchema_XOneOf(t *testing.T) {
	in := &source.Schema{
		Extra: map[string]any{
			"x-oneOf": []any{
				map[string]any{"type": "string"},
				map[string]any{"type": "integer"},
			},
		},
	}
	out := ConvertSchemaFromSwagger2(in)

	require.Equal(t, emended.KindOneOf, out.Kind)
	require.Len(t, out.Branches, 2)
	assert.Equal(t, emended.KindString, out.Branches[0].Kind)
	assert.Equal(t, emended.KindInteger, out.Branches[1].Kind)
	assert.NotContains(t, out.Extra, "x-oneOf")
}

func TestConvertSchema_XAnyOf(t *testing.T) {
	in := &source.Schema{
		Extra: map[string]any{
			"x-anyOf": []any{
				map[string]any{"type": "boolean"},
				map[string]any{"type": "null"},
			},
		},
	}
	out := ConvertSchemaFromSwagger2(in)

	require.Equal(t, emended.KindOneOf, out.Kind)
	require.Len(t, out.Branches, 2)
	assert.Equal(t, emended.KindBoolean, out.Branches[0].Kind)
	assert.Equal(t, emended.KindNull, out.Branches[1].Kind)
}

func TestConvertSchema_ExclusiveBoundsOAS31Numeric(t *testing.T) {
	in := &source.Schema{Type: "number", ExclusiveMinimum: 1.5}
	out := ConvertSchemaFromOAS31(in)

	require.Equal(t, emended.KindNumber, out.Kind)
	require.NotNil(t, out.Minimum)
	assert.Equal(t, 1.5, *out.Minimum)
	assert.True(t, out.ExclusiveMinimum)
}

func TestConvertSchema_ExclusiveBoundsOAS30Bool(t *testing.T) {
	minVal := 1.5
	in := &source.Schema{Type: "number", Minimum: &minVal, ExclusiveMinimum: true}
	out := ConvertSchemaFromOAS30(in)

	require.Equal(t, emended.KindNumber, out.Kind)
	require.NotNil(t, out.Minimum)
	assert.Equal(t, 1.5, *out.Minimum)
	assert.True(t, out.ExclusiveMinimum)
}

func TestConvertSchema_Tuple(t *testing.T) {
	in := &source.Schema{
		PrefixItems:     []*source.Schema{{Type: "string"}, {Type: "integer"}},
		AdditionalItems: false,
	}
	out := ConvertSchemaFromOAS31(in)

	require.Equal(t, emended.KindTuple, out.Kind)
	require.Len(t, out.PrefixItems, 2)
	assert.Equal(t, emended.KindString, out.PrefixItems[0].Kind)
	assert.Equal(t, emended.KindInteger, out.PrefixItems[1].Kind)
	assert.Equal(t, false, out.AdditionalItems)
}

func TestConvertSchema_ArrayVsTupleCollision(t *testing.T) {
	// items(single) alongside prefixItems: prefixItems wins, items becomes
	// additionalItems (§4.C.5).
	in := &source.Schema{
		PrefixItems: []*source.Schema{{Type: "string"}},
		Items:       map[string]any{"type": "boolean"},
	}
	out := ConvertSchemaFromOAS31(in)

	require.Equal(t, emended.KindTuple, out.Kind)
	require.Len(t, out.PrefixItems, 1)
	additional, ok := out.AdditionalItems.(*emended.Schema)
	require.True(t, ok)
	assert.Equal(t, emended.KindBoolean, additional.Kind)
}

func TestConvertSchema_Object(t *testing.T) {
	in := &source.Schema{
		Type: "object",
		Properties: map[string]*source.Schema{
			"name": {Type: "string"},
		},
		Required: []string{"name"},
	}
	out := ConvertSchemaFromOAS30(in)

	require.Equal(t, emended.KindObject, out.Kind)
	require.Contains(t, out.Properties, "name")
	assert.Equal(t, emended.KindString, out.Properties["name"].Kind)
	assert.Equal(t, []string{"name"}, out.Required)
}

func TestConvertSchema_AllOfObjectMerge(t *testing.T) {
	in := &source.Schema{
		AllOf: []*source.Schema{
			{Type: "object", Properties: map[string]*source.Schema{"a": {Type: "string"}}, Required: []string{"a"}},
			{Type: "object", Properties: map[string]*source.Schema{"b": {Type: "integer"}}, Required: []string{"b"}},
		},
	}
	out := ConvertSchemaFromOAS30(in)

	require.Equal(t, emended.KindObject, out.Kind)
	assert.Contains(t, out.Properties, "a")
	assert.Contains(t, out.Properties, "b")
	assert.ElementsMatch(t, []string{"a", "b"}, out.Required)
}

func TestConvertSchema_AnyOfTreatedAsOneOf(t *testing.T) {
	in := &source.Schema{AnyOf: []*source.Schema{{Type: "string"}, {Type: "integer"}}}
	out := ConvertSchemaFromOAS31(in)

	require.Equal(t, emended.KindOneOf, out.Kind)
	assert.Len(t, out.Branches, 2)
}

func TestConvertSchema_OneOfFlattened(t *testing.T) {
	// Invariant 4: no OneOf nests another OneOf.
	in := &source.Schema{
		OneOf: []*source.Schema{
			{OneOf: []*source.Schema{{Type: "string"}, {Type: "integer"}}},
			{Type: "boolean"},
		},
	}
	out := ConvertSchemaFromOAS31(in)

	require.Equal(t, emended.KindOneOf, out.Kind)
	for _, b := range out.Branches {
		assert.NotEqual(t, emended.KindOneOf, b.Kind)
	}
	assert.Len(t, out.Branches, 3)
}

func TestConvertSchema_EmptyObjectBecomesUnknown(t *testing.T) {
	out := ConvertSchemaFromOAS30(&source.Schema{})
	assert.Equal(t, emended.KindUnknown, out.Kind)
}

func TestConvertSchema_AttributesPreserved(t *testing.T) {
	in := &source.Schema{
		Type:        "string",
		Title:       "Name",
		Description: "the name",
		Deprecated:  true,
		Extra:       map[string]any{"x-custom": "keep-me", "x-nullable": true},
	}
	out := ConvertSchemaFromSwagger2(in)

	// x-nullable is an escape hatch: it drives nullable but is never copied
	// into Extra, and the schema became a OneOf so attributes land there.
	require.Equal(t, emended.KindOneOf, out.Kind)
	assert.Equal(t, "Name", out.Title)
	assert.Equal(t, "the name", out.Description)
	assert.True(t, out.Deprecated)
	assert.Equal(t, "keep-me", out.Extra["x-custom"])
	assert.NotContains(t, out.Extra, "x-nullable")
}
