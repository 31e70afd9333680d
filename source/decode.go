package source

import "encoding/json"

// schemaAlias mirrors Schema's json tags exactly, letting UnmarshalJSON
// decode known fields through the stdlib decoder and everything else
// (including every "x-" vendor key) into Extra.
type schemaAlias Schema

// knownSchemaKeys enumerates the json tag for every field schemaAlias
// declares, so UnmarshalJSON can compute what is left over for Extra.
var knownSchemaKeys = map[string]bool{
	"$ref": true, "$recursiveRef": true, "title": true, "description": true,
	"default": true, "type": true, "enum": true, "const": true,
	"multipleOf": true, "maximum": true, "exclusiveMaximum": true,
	"minimum": true, "exclusiveMinimum": true, "maxLength": true,
	"minLength": true, "pattern": true, "items": true, "prefixItems": true,
	"additionalItems": true, "maxItems": true, "minItems": true,
	"uniqueItems": true, "properties": true, "additionalProperties": true,
	"required": true, "maxProperties": true, "minProperties": true,
	"allOf": true, "anyOf": true, "oneOf": true, "not": true,
	"nullable": true, "discriminator": true, "readOnly": true,
	"writeOnly": true, "deprecated": true, "example": true, "format": true,
}

// UnmarshalJSON decodes a Schema, capturing every field not explicitly
// modeled (including all "x-" vendor extensions) into Extra.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var a schemaAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = Schema(a)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		if knownSchemaKeys[k] {
			continue
		}
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			continue
		}
		if s.Extra == nil {
			s.Extra = make(map[string]any)
		}
		s.Extra[k] = val
	}
	return nil
}

// MarshalJSON re-emits Extra alongside the modeled fields.
func (s Schema) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(schemaAlias(s))
	if err != nil {
		return nil, err
	}
	if len(s.Extra) == 0 {
		return base, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range s.Extra {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		merged[k] = raw
	}
	return json.Marshal(merged)
}

// DecodeDocument20 coerces an already-parsed generic value tree into a
// Swagger 2.0 document via a JSON round-trip. This is not text parsing: the
// caller has already turned bytes into a value tree; this only assigns that
// tree's shape to typed Go fields.
func DecodeDocument20(v any) (*Document20, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document20
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeDocument3 coerces a generic value tree into an OAS 3.x document.
func DecodeDocument3(v any) (*Document3, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document3
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
