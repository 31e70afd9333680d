package source

import "encoding/json"

// AsSchema coerces an `any`-typed polymorphic field (Items,
// AdditionalProperties, AdditionalItems, ExclusiveMinimum/Maximum) into a
// *Schema when it holds one, via a JSON round-trip through the already
// generic value it decoded to. Returns (nil, false) if v is not schema-shaped.
func AsSchema(v any) (*Schema, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case *Schema:
		return t, true
	case map[string]any:
		data, err := json.Marshal(t)
		if err != nil {
			return nil, false
		}
		var s Schema
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, false
		}
		return &s, true
	default:
		return nil, false
	}
}

// AsBool coerces an `any`-typed polymorphic field into a bool, returning
// (false, false) if v does not hold a bool.
func AsBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// AsFloat64 coerces a numeric `any` (as decoded by encoding/json, always
// float64) into a float64.
func AsFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	default:
		return 0, false
	}
}

// AsSchemaList coerces Items when it holds the legacy tuple-array form
// (`items: [schema, ...]`) into a []*Schema.
func AsSchemaList(v any) ([]*Schema, bool) {
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]*Schema, 0, len(list))
	for _, item := range list {
		s, ok := AsSchema(item)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// AsStringTypeList coerces Schema.Type into a []string, handling the plain
// string form (2.0/3.0), the 3.1 type-array form as []any, and []string.
func AsStringTypeList(v any) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
