package downgrade

import (
	"strings"

	"github.com/oas-emend/emendapi/emended"
	"github.com/oas-emend/emendapi/internal/issues"
	"github.com/oas-emend/emendapi/source"
)

// maxSchemaDepth bounds schema recursion so a pathologically nested emended
// document degrades to a critical, recorded issue at the tail instead of
// overflowing the stack.
const maxSchemaDepth = 1000

// DowngradeSchemaToOAS30 re-expresses an emended schema as an OpenAPI 3.0.x
// schema: oneOf survives natively, but const and tuples have no 3.0
// equivalent and are re-expressed lossily.
func DowngradeSchemaToOAS30(s *emended.Schema) (*source.Schema, *Result) {
	result := &Result{Target: TargetOAS30}
	return downgradeSchema(TargetOAS30, s, result, "$", 0), result
}

// DowngradeSchemaToSwagger2 re-expresses an emended schema as a Swagger 2.0
// schema. Swagger 2.0 additionally lacks oneOf/anyOf and nullable, so those
// fall back to the x-oneOf/x-nullable escape hatches.
func DowngradeSchemaToSwagger2(s *emended.Schema) (*source.Schema, *Result) {
	result := &Result{Target: TargetSwagger20}
	return downgradeSchema(TargetSwagger20, s, result, "$", 0), result
}

func downgradeSchema(target TargetVersion, s *emended.Schema, result *Result, path string, depth int) *source.Schema {
	if s == nil {
		return nil
	}
	if depth > maxSchemaDepth {
		result.unrepresentableConstruct(path, "schema nesting exceeded the depth limit; truncated to avoid unbounded recursion")
		return &source.Schema{}
	}
	switch s.Kind {
	case emended.KindConstant:
		return downgradeConstant(s)
	case emended.KindBoolean, emended.KindInteger, emended.KindNumber, emended.KindString:
		return downgradeStructural(s)
	case emended.KindArray:
		out := &source.Schema{Type: "array", Items: downgradeSchema(target, s.Items, result, issues.FormatPath(path, "items"), depth+1)}
		return applyAttrs(out, s)
	case emended.KindTuple:
		return downgradeTuple(target, s, result, path, depth+1)
	case emended.KindObject:
		return downgradeObject(target, s, result, path, depth+1)
	case emended.KindReference:
		return &source.Schema{Ref: rewriteRefDown(target, s.Ref)}
	case emended.KindOneOf:
		return downgradeOneOf(target, s, result, path, depth+1)
	case emended.KindNull:
		return downgradeNull(target)
	default:
		return applyAttrs(&source.Schema{}, s)
	}
}

func applyAttrs(dest *source.Schema, s *emended.Schema) *source.Schema {
	dest.Title = s.Title
	dest.Description = s.Description
	dest.Deprecated = s.Deprecated
	if len(s.Extra) > 0 {
		dest.Extra = make(map[string]any, len(s.Extra))
		for k, v := range s.Extra {
			dest.Extra[k] = v
		}
	}
	return dest
}

// downgradeConstant re-expresses const as a single-value enum: neither
// target grammar has const.
func downgradeConstant(s *emended.Schema) *source.Schema {
	out := &source.Schema{Enum: []any{s.ConstValue}}
	if t := inferJSONType(s.ConstValue); t != "" {
		out.Type = t
	}
	return applyAttrs(out, s)
}

func inferJSONType(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case nil:
		return "null"
	default:
		return ""
	}
}

func downgradeStructural(s *emended.Schema) *source.Schema {
	out := &source.Schema{Type: s.Kind.String(), Format: s.Format}
	if s.MultipleOf != nil {
		out.MultipleOf = s.MultipleOf
	}
	if s.Minimum != nil {
		out.Minimum = s.Minimum
		if s.ExclusiveMinimum {
			out.ExclusiveMinimum = true
		}
	}
	if s.Maximum != nil {
		out.Maximum = s.Maximum
		if s.ExclusiveMaximum {
			out.ExclusiveMaximum = true
		}
	}
	out.MinLength = s.MinLength
	out.MaxLength = s.MaxLength
	out.Pattern = s.Pattern
	return applyAttrs(out, s)
}

func downgradeTuple(target TargetVersion, s *emended.Schema, result *Result, path string, depth int) *source.Schema {
	result.lossyTuple(path)

	branches := make([]*source.Schema, len(s.PrefixItems))
	for i, b := range s.PrefixItems {
		branches[i] = downgradeSchema(target, b, result, issues.FormatPath(path, "prefixItems"), depth)
	}

	out := &source.Schema{Type: "array"}
	switch len(branches) {
	case 0:
		// leave Items nil: an untyped array
	case 1:
		out.Items = branches[0]
	default:
		out.Items = &source.Schema{OneOf: branches}
	}

	if s.MinItems != nil {
		out.MinItems = s.MinItems
	}
	if s.MaxItems != nil {
		out.MaxItems = s.MaxItems
	} else if additional, ok := s.AdditionalItems.(bool); ok && !additional {
		n := len(s.PrefixItems)
		out.MinItems = &n
		out.MaxItems = &n
	}
	return applyAttrs(out, s)
}

func downgradeObject(target TargetVersion, s *emended.Schema, result *Result, path string, depth int) *source.Schema {
	out := &source.Schema{Type: "object", Required: s.Required}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*source.Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = downgradeSchema(target, p, result, issues.FormatPath(path, "properties", name), depth)
		}
	}
	switch ap := s.AdditionalProperties.(type) {
	case bool:
		out.AdditionalProperties = ap
	case *emended.Schema:
		out.AdditionalProperties = downgradeSchema(target, ap, result, issues.FormatPath(path, "additionalProperties"), depth)
	}
	return applyAttrs(out, s)
}

func downgradeOneOf(target TargetVersion, s *emended.Schema, result *Result, path string, depth int) *source.Schema {
	var nullBranch bool
	nonNull := make([]*emended.Schema, 0, len(s.Branches))
	for _, b := range s.Branches {
		if b.IsNull() {
			nullBranch = true
			continue
		}
		nonNull = append(nonNull, b)
	}

	branches := make([]*source.Schema, len(nonNull))
	for i, b := range nonNull {
		branches[i] = downgradeSchema(target, b, result, issues.FormatPath(path, "oneOf"), depth)
	}

	if target == TargetOAS30 {
		var out *source.Schema
		switch len(branches) {
		case 0:
			// A wrapper with only a Null branch: nothing left to union.
			out = &source.Schema{}
		case 1:
			out = branches[0]
		default:
			out = &source.Schema{OneOf: branches}
		}
		if nullBranch {
			out.Nullable = true
		}
		return mergeWrapperAttrs(out, s)
	}

	// Swagger 2.0: no oneOf, no nullable. Both are escape hatches.
	var out *source.Schema
	switch len(branches) {
	case 0:
		out = &source.Schema{}
	case 1:
		out = branches[0]
	default:
		out = &source.Schema{}
		setExtra(out, "x-oneOf", branches)
	}
	if nullBranch {
		setExtra(out, "x-nullable", true)
	}
	return mergeWrapperAttrs(out, s)
}

// mergeWrapperAttrs applies the OneOf wrapper's own attributes onto the
// schema chosen to represent it, without clobbering escape-hatch keys the
// caller has already set on out.Extra.
func mergeWrapperAttrs(out *source.Schema, wrapper *emended.Schema) *source.Schema {
	if wrapper.Title != "" {
		out.Title = wrapper.Title
	}
	if wrapper.Description != "" {
		out.Description = wrapper.Description
	}
	if wrapper.Deprecated {
		out.Deprecated = true
	}
	for k, v := range wrapper.Extra {
		setExtra(out, k, v)
	}
	return out
}

func setExtra(s *source.Schema, key string, value any) {
	if s.Extra == nil {
		s.Extra = make(map[string]any, 1)
	}
	s.Extra[key] = value
}

func downgradeNull(target TargetVersion) *source.Schema {
	if target == TargetSwagger20 {
		return &source.Schema{Extra: map[string]any{"x-nullable": true}}
	}
	return &source.Schema{Nullable: true}
}

// rewriteRefDown reverses normalize's ref promotion: 2.0 definitions live
// under #/definitions, 3.x schemas under #/components/schemas.
func rewriteRefDown(target TargetVersion, ref string) string {
	if target == TargetSwagger20 {
		return strings.Replace(ref, "#/components/schemas/", "#/definitions/", 1)
	}
	return ref
}
