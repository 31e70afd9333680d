package downgrade

import (
	"encoding/json"
	"strings"

	"github.com/oas-emend/emendapi/emended"
	"github.com/oas-emend/emendapi/oaserrors"
)

// Downgrade rewrites doc into the grammar named by version ("2.0" for
// Swagger, any "3.0"-prefixed string for OpenAPI 3.0.x) and returns it as a
// generic value tree, coerced through the same style of JSON round-trip
// source's Decode* functions use on the way in. This package never touches
// JSON or YAML text directly; serializing the returned tree is the caller's
// job.
func Downgrade(doc *emended.Document, version string) (any, *Result, error) {
	switch {
	case version == "2.0":
		out, result := DowngradeToSwagger2(doc)
		tree, err := toGenericTree(out)
		if err != nil {
			return nil, nil, err
		}
		return tree, result, nil

	case strings.HasPrefix(version, "3.0"):
		out, result := DowngradeToOAS30(doc)
		tree, err := toGenericTree(out)
		if err != nil {
			return nil, nil, err
		}
		return tree, result, nil

	default:
		return nil, nil, &oaserrors.UnrecognizedVersionError{
			Detail: `downgrade target must be "2.0" or a "3.0.x" version string, got "` + version + `"`,
		}
	}
}

// toGenericTree coerces a typed document into a map[string]any/[]any tree
// via json.Marshal followed by json.Unmarshal into `any`, mirroring
// source's decode-side coercion in the opposite direction.
func toGenericTree(typed any) (any, error) {
	data, err := json.Marshal(typed)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
