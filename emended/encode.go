package emended

import "encoding/json"

// MarshalJSON re-expresses the closed Kind-tagged union as the flat JSON
// Schema shape it represents, then merges in the preserved "x-" keys from
// Extra. This is the encode-side counterpart of source.Schema's
// UnmarshalJSON: that one widens a generic tree's unknown keys into Extra,
// this one narrows a typed variant back down to the keys a Kind implies.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	m := make(map[string]any, 8+len(s.Extra))

	switch s.Kind {
	case KindConstant:
		m["const"] = s.ConstValue
	case KindBoolean:
		m["type"] = "boolean"
	case KindInteger:
		m["type"] = "integer"
		addNumericConstraints(m, s)
	case KindNumber:
		m["type"] = "number"
		addNumericConstraints(m, s)
	case KindString:
		m["type"] = "string"
		if s.MinLength != nil {
			m["minLength"] = *s.MinLength
		}
		if s.MaxLength != nil {
			m["maxLength"] = *s.MaxLength
		}
		if s.Pattern != "" {
			m["pattern"] = s.Pattern
		}
	case KindArray:
		m["type"] = "array"
		if s.Items != nil {
			m["items"] = s.Items
		}
	case KindTuple:
		m["type"] = "array"
		if len(s.PrefixItems) > 0 {
			m["prefixItems"] = s.PrefixItems
		}
		if s.AdditionalItems != nil {
			m["items"] = s.AdditionalItems
		}
		if s.MinItems != nil {
			m["minItems"] = *s.MinItems
		}
		if s.MaxItems != nil {
			m["maxItems"] = *s.MaxItems
		}
	case KindObject:
		m["type"] = "object"
		if len(s.Properties) > 0 {
			m["properties"] = s.Properties
		}
		if len(s.Required) > 0 {
			m["required"] = s.Required
		}
		if s.AdditionalProperties != nil {
			m["additionalProperties"] = s.AdditionalProperties
		}
	case KindReference:
		m["$ref"] = s.Ref
	case KindOneOf:
		m["oneOf"] = s.Branches
	case KindNull:
		m["type"] = "null"
	}

	if s.Format != "" {
		m["format"] = s.Format
	}
	if s.Title != "" {
		m["title"] = s.Title
	}
	if s.Description != "" {
		m["description"] = s.Description
	}
	if s.Deprecated {
		m["deprecated"] = true
	}
	for k, v := range s.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// addNumericConstraints writes the emended dialect's 3.0-style boolean
// exclusive-bound flags alongside minimum/maximum, per the invariant
// documented on Schema.ExclusiveMinimum/ExclusiveMaximum.
func addNumericConstraints(m map[string]any, s *Schema) {
	if s.MultipleOf != nil {
		m["multipleOf"] = *s.MultipleOf
	}
	if s.Minimum != nil {
		m["minimum"] = *s.Minimum
	}
	if s.ExclusiveMinimum {
		m["exclusiveMinimum"] = true
	}
	if s.Maximum != nil {
		m["maximum"] = *s.Maximum
	}
	if s.ExclusiveMaximum {
		m["exclusiveMaximum"] = true
	}
}

// Encode coerces doc into a generic value tree (map[string]any/[]any) via a
// JSON round-trip, exercising the Schema MarshalJSON above along the way.
// This is the upgrade-side counterpart of downgrade.toGenericTree: neither
// touches text, both bridge a typed document to the tree encoding.EncodeYAML
// (or json.Marshal directly) can serialize.
func Encode(doc *Document) (any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
