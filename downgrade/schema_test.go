package downgrade

import (
	"testing"

	"github.com/oas-emend/emendapi/emended"
	"github.com/oas-emend/emendapi/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDowngradeSchema_NullableCollapseOAS30(t *testing.T) {
	in := &emended.Schema{
		Kind: emended.KindOneOf,
		Branches: []*emended.Schema{
			{Kind: emended.KindString},
			{Kind: emended.KindNull},
		},
	}
	out, result := DowngradeSchemaToOAS30(in)

	assert.Equal(t, "string", out.Type)
	assert.True(t, out.Nullable)
	assert.Zero(t, result.CriticalCount)
}

func TestDowngradeSchema_OneOfWithOnlyNullBranchOAS30(t *testing.T) {
	in := &emended.Schema{
		Kind:     emended.KindOneOf,
		Branches: []*emended.Schema{{Kind: emended.KindNull}},
	}
	out, result := DowngradeSchemaToOAS30(in)

	assert.Empty(t, out.OneOf)
	assert.True(t, out.Nullable)
	assert.Zero(t, result.CriticalCount)
}

func TestDowngradeSchema_NullableCollapseSwagger2(t *testing.T) {
	in := &emended.Schema{
		Kind: emended.KindOneOf,
		Branches: []*emended.Schema{
			{Kind: emended.KindInteger},
			{Kind: emended.KindNull},
		},
	}
	out, _ := DowngradeSchemaToSwagger2(in)

	assert.Equal(t, "integer", out.Type)
	assert.Equal(t, true, out.Extra["x-nullable"])
}

func TestDowngradeSchema_OneOfToXOneOfSwagger2(t *testing.T) {
	in := &emended.Schema{
		Kind: emended.KindOneOf,
		Branches: []*emended.Schema{
			{Kind: emended.KindString},
			{Kind: emended.KindInteger},
		},
	}
	out, _ := DowngradeSchemaToSwagger2(in)

	branches, ok := out.Extra["x-oneOf"]
	require.True(t, ok)
	assert.Len(t, branches, 2)
}

func TestDowngradeSchema_ConstToSingleEnum(t *testing.T) {
	in := &emended.Schema{Kind: emended.KindConstant, ConstValue: "fixed"}
	out, _ := DowngradeSchemaToOAS30(in)

	assert.Equal(t, "string", out.Type)
	assert.Equal(t, []any{"fixed"}, out.Enum)
}

func TestDowngradeSchema_TupleLossyReexpression(t *testing.T) {
	// Seed test 5: tuple downgrade loses positional typing.
	in := &emended.Schema{
		Kind:            emended.KindTuple,
		PrefixItems:     []*emended.Schema{{Kind: emended.KindString}, {Kind: emended.KindInteger}},
		AdditionalItems: false,
	}
	out, result := DowngradeSchemaToOAS30(in)

	assert.Equal(t, "array", out.Type)
	items, ok := out.Items.(*source.Schema)
	require.True(t, ok)
	assert.Len(t, items.OneOf, 2)
	require.Equal(t, 1, result.WarningCount)
	require.NotNil(t, out.MinItems)
	assert.Equal(t, 2, *out.MinItems)
	assert.Equal(t, 2, *out.MaxItems)
}

func TestDowngradeSchema_ReferenceRewriteSwagger2(t *testing.T) {
	in := &emended.Schema{Kind: emended.KindReference, Ref: "#/components/schemas/Pet"}
	out, _ := DowngradeSchemaToSwagger2(in)

	assert.Equal(t, "#/definitions/Pet", out.Ref)
}

func TestDowngradeSchema_ReferencePassthroughOAS30(t *testing.T) {
	in := &emended.Schema{Kind: emended.KindReference, Ref: "#/components/schemas/Pet"}
	out, _ := DowngradeSchemaToOAS30(in)

	assert.Equal(t, "#/components/schemas/Pet", out.Ref)
}

func TestDowngradeSchema_ObjectProperties(t *testing.T) {
	in := &emended.Schema{
		Kind:       emended.KindObject,
		Properties: map[string]*emended.Schema{"name": {Kind: emended.KindString}},
		Required:   []string{"name"},
	}
	out, _ := DowngradeSchemaToOAS30(in)

	assert.Equal(t, "object", out.Type)
	require.Contains(t, out.Properties, "name")
	assert.Equal(t, []string{"name"}, out.Required)
}

func TestDowngradeSchema_AttributesPreserved(t *testing.T) {
	in := &emended.Schema{
		Kind:        emended.KindString,
		Title:       "Name",
		Description: "the name",
		Extra:       map[string]any{"x-custom": "keep-me"},
	}
	out, _ := DowngradeSchemaToOAS30(in)

	assert.Equal(t, "Name", out.Title)
	assert.Equal(t, "keep-me", out.Extra["x-custom"])
}
