// Package encoding bridges YAML/JSON text to the generic value tree the
// rest of this module operates on. Nothing outside this package touches
// raw bytes: sniff.Classify, normalize.Convert, and downgrade.Downgrade all
// take and return an already-decoded any/map[string]any tree.
package encoding

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"go.yaml.in/yaml/v4"
)

// envelopeSchema describes the minimum shape any Swagger/OpenAPI document
// must have before it is worth handing to sniff.Classify: an info object
// and either a swagger or an openapi version field. It exists to turn a
// well-formed-YAML-but-not-a-spec-at-all input into one clear error instead
// of an opaque UnrecognizedVersionError deeper in the pipeline.
var envelopeSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"info"},
	Properties: map[string]*jsonschema.Schema{
		"info": {Type: "object", Required: []string{"title", "version"}},
	},
	AnyOf: []*jsonschema.Schema{
		{Required: []string{"swagger"}},
		{Required: []string{"openapi"}},
	},
}

var resolvedEnvelopeSchema *jsonschema.Resolved

func init() {
	resolved, err := envelopeSchema.Resolve(nil)
	if err != nil {
		panic("encoding: envelope schema failed to resolve: " + err.Error())
	}
	resolvedEnvelopeSchema = resolved
}

// DecodeYAML decodes YAML (or JSON, which is a YAML subset) bytes into a
// generic value tree and checks it against the minimum document envelope.
// It returns the tree unvalidated by anything beyond that envelope check;
// full structural validation happens as a side effect of normalize.Convert.
func DecodeYAML(data []byte) (any, error) {
	var v map[string]any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("encoding: decode: %w", err)
	}
	if err := resolvedEnvelopeSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("encoding: input is not a recognizable API document envelope: %w", err)
	}
	return v, nil
}

// EncodeYAML serializes a generic value tree (as produced by
// normalize.Convert or downgrade.Downgrade, by way of their internal
// json-tagged structs) back to YAML.
func EncodeYAML(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding: encode: %w", err)
	}
	return data, nil
}
