package sniff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		doc  any
		want Classification
	}{
		{
			name: "swagger 2.0 with paths",
			doc: map[string]any{
				"swagger": "2.0",
				"paths":   map[string]any{},
			},
			want: Swagger20,
		},
		{
			name: "swagger 2.0 with only definitions",
			doc: map[string]any{
				"swagger":     "2.0",
				"definitions": map[string]any{},
			},
			want: Swagger20,
		},
		{
			name: "swagger 2.0 without paths or definitions is unrecognized",
			doc: map[string]any{
				"swagger": "2.0",
			},
			want: Unrecognized,
		},
		{
			name: "swagger wrong version string",
			doc: map[string]any{
				"swagger": "1.2",
				"paths":   map[string]any{},
			},
			want: Unrecognized,
		},
		{
			name: "openapi 3.0.3",
			doc: map[string]any{
				"openapi": "3.0.3",
			},
			want: OpenAPI30,
		},
		{
			name: "openapi 3.1.0",
			doc: map[string]any{
				"openapi": "3.1.0",
			},
			want: OpenAPI31,
		},
		{
			name: "openapi 3.1.0 with emended marker true",
			doc: map[string]any{
				"openapi":          "3.1.0",
				"x-samchon-emended": true,
			},
			want: Emended,
		},
		{
			name: "openapi 3.1.0 with emended marker false",
			doc: map[string]any{
				"openapi":          "3.1.0",
				"x-samchon-emended": false,
			},
			want: OpenAPI31,
		},
		{
			name: "openapi 3.2.0 is unrecognized",
			doc: map[string]any{
				"openapi": "3.2.0",
			},
			want: Unrecognized,
		},
		{
			name: "openapi takes precedence over swagger when both present",
			doc: map[string]any{
				"openapi": "3.0.0",
				"swagger": "2.0",
				"paths":   map[string]any{},
			},
			want: OpenAPI30,
		},
		{
			name: "neither field present",
			doc: map[string]any{
				"info": map[string]any{},
			},
			want: Unrecognized,
		},
		{
			name: "openapi field not a string",
			doc: map[string]any{
				"openapi": 3.1,
			},
			want: Unrecognized,
		},
		{
			name: "not a map at all",
			doc:  []any{"openapi", "3.1.0"},
			want: Unrecognized,
		},
		{
			name: "nil input",
			doc:  nil,
			want: Unrecognized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.doc))
		})
	}
}

func TestPredicates(t *testing.T) {
	swagger := map[string]any{"swagger": "2.0", "paths": map[string]any{}}
	oas30 := map[string]any{"openapi": "3.0.1"}
	oas31 := map[string]any{"openapi": "3.1.1"}
	emended := map[string]any{"openapi": "3.1.1", "x-samchon-emended": true}

	assert.True(t, IsSwagger2(swagger))
	assert.False(t, IsSwagger2(oas30))

	assert.True(t, IsOpenAPI30(oas30))
	assert.False(t, IsOpenAPI30(oas31))

	assert.True(t, IsOpenAPI31(oas31))
	assert.False(t, IsOpenAPI31(emended))

	assert.True(t, IsEmended(emended))
	assert.False(t, IsEmended(oas31))
}

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "swagger2.0", Swagger20.String())
	assert.Equal(t, "openapi3.0", OpenAPI30.String())
	assert.Equal(t, "openapi3.1", OpenAPI31.String())
	assert.Equal(t, "emended", Emended.String())
	assert.Equal(t, "unrecognized", Unrecognized.String())
	assert.Equal(t, "unrecognized", Classification(99).String())
}
