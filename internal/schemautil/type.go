// Package schemautil centralizes type-assertion patterns for the polymorphic
// fields the three source grammars represent differently: OAS 2.0/3.0 use a
// bare string for Schema.Type, OAS 3.1 admits a type array for nullable
// support.
package schemautil

import "github.com/oas-emend/emendapi/source"

// GetSchemaTypes returns the type(s) declared on a schema, regardless of
// which source dialect it came from.
func GetSchemaTypes(schema *source.Schema) []string {
	if schema == nil {
		return nil
	}
	return source.AsStringTypeList(schema.Type)
}

// GetPrimaryType returns the first non-null type declared on a schema.
// If every declared type is "null", it returns "null". Returns "" if the
// schema is nil or declares no types.
func GetPrimaryType(schema *source.Schema) string {
	types := GetSchemaTypes(schema)
	for _, t := range types {
		if t != "null" {
			return t
		}
	}
	if len(types) > 0 {
		return types[0]
	}
	return ""
}

// IsNullable reports whether the schema's type array contains "null"
// (OAS 3.1 style). It does not consult the OAS 3.0 `nullable` field or the
// Swagger 2.0 `x-nullable` extension; callers checking those must do so
// separately.
func IsNullable(schema *source.Schema) bool {
	for _, t := range GetSchemaTypes(schema) {
		if t == "null" {
			return true
		}
	}
	return false
}

// HasType reports whether the schema's type list includes targetType.
func HasType(schema *source.Schema, targetType string) bool {
	for _, t := range GetSchemaTypes(schema) {
		if t == targetType {
			return true
		}
	}
	return false
}

// IsSingleType reports whether the schema declares exactly one non-null type.
func IsSingleType(schema *source.Schema) bool {
	types := GetSchemaTypes(schema)
	n := 0
	for _, t := range types {
		if t != "null" {
			n++
		}
	}
	return n == 1
}
