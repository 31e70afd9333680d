package normalize

import (
	"sort"

	"github.com/oas-emend/emendapi/emended"
	"github.com/oas-emend/emendapi/internal/schemautil"
	"github.com/oas-emend/emendapi/source"
)

// maxSchemaDepth bounds schema recursion so a pathologically nested (or
// cyclic, once oneOf/allOf branches point back into each other by value)
// input degrades to KindUnknown at the tail instead of overflowing the
// stack. The bound is fixed; no option changes it.
const maxSchemaDepth = 1000

// ConvertSchemaFromSwagger2 lowers a Swagger 2.0 schema fragment into the
// emended grammar. Ref rewriting targets #/components/schemas/ and the
// x-nullable/x-oneOf/x-anyOf escape hatches are recognized as structural.
func ConvertSchemaFromSwagger2(s *source.Schema) *emended.Schema {
	return convertSchema(DialectSwagger2, s, 0)
}

// ConvertSchemaFromOAS30 lowers an OpenAPI 3.0.x schema fragment.
func ConvertSchemaFromOAS30(s *source.Schema) *emended.Schema {
	return convertSchema(DialectOAS30, s, 0)
}

// ConvertSchemaFromOAS31 lowers an OpenAPI 3.1.x schema fragment. type
// arrays are expanded, $recursiveRef is demoted to $ref, and numeric
// exclusiveMinimum/exclusiveMaximum bounds are folded back into the
// boolean-flag form the emended grammar uses.
func ConvertSchemaFromOAS31(s *source.Schema) *emended.Schema {
	return convertSchema(DialectOAS31, s, 0)
}

// accumulator holds the union-in-progress state described in the schema
// normalizer's design contract: an ordered branch list plus a nullable flag,
// finalized once the source tree has been fully visited.
type accumulator struct {
	branches []*emended.Schema
	nullable bool
}

func (a *accumulator) add(b *emended.Schema) {
	if b == nil {
		return
	}
	a.branches = append(a.branches, b)
	if b.Kind == emended.KindNull {
		a.nullable = true
	}
}

// escapeHatchKeys are the Swagger-2.0 vendor keys the normalizer itself
// consumes; they are never copied into the attribute bag as opaque "x-"
// extensions.
var escapeHatchKeys = map[string]bool{
	"x-nullable": true,
	"x-oneOf":    true,
	"x-anyOf":    true,
}

func convertSchema(dialect Dialect, s *source.Schema, depth int) *emended.Schema {
	if s == nil {
		return nil
	}
	if depth > maxSchemaDepth {
		return &emended.Schema{Kind: emended.KindUnknown}
	}

	acc := &accumulator{}
	if isNullableSignal(dialect, s) {
		acc.nullable = true
	}
	visit(dialect, s, acc, depth)

	result := finalize(acc)
	applyAttributes(result, s)
	return result
}

// isNullableSignal reports whether s itself (not its branches) carries a
// nullability marker: OAS 3.0's nullable:true or Swagger 2.0's x-nullable.
// A "null" element inside a 3.1 type array is handled in visit, since it
// produces its own Null branch directly.
func isNullableSignal(dialect Dialect, s *source.Schema) bool {
	if s.Nullable {
		return true
	}
	if dialect == DialectSwagger2 {
		if v, ok := s.Extra["x-nullable"]; ok {
			if b, ok := source.AsBool(v); ok && b {
				return true
			}
		}
	}
	return false
}

// escapeHatchBranches coerces a Swagger 2.0 x-oneOf/x-anyOf escape hatch
// value out of s.Extra into a branch list, using the same schema-list
// coercion the legacy items:[schema, ...] tuple form uses.
func escapeHatchBranches(s *source.Schema, key string) ([]*source.Schema, bool) {
	v, ok := s.Extra[key]
	if !ok {
		return nil, false
	}
	return source.AsSchemaList(v)
}

// visit walks one source schema node, appending emended branches (and
// possibly setting acc.nullable) for everything it finds. It never returns a
// value directly; the accumulator is finalized by the caller.
func visit(dialect Dialect, s *source.Schema, acc *accumulator, depth int) {
	if depth > maxSchemaDepth {
		acc.add(&emended.Schema{Kind: emended.KindUnknown})
		return
	}

	switch {
	case s.Ref != "":
		acc.add(&emended.Schema{Kind: emended.KindReference, Ref: rewriteRef(dialect, s.Ref)})
		return
	case s.RecursiveRef != "":
		acc.add(&emended.Schema{Kind: emended.KindReference, Ref: rewriteRef(dialect, s.RecursiveRef)})
		return
	case s.Const != nil:
		acc.add(&emended.Schema{Kind: emended.KindConstant, ConstValue: s.Const})
		return
	}

	if dialect == DialectSwagger2 {
		if branches, ok := escapeHatchBranches(s, "x-oneOf"); ok {
			for _, branch := range branches {
				visit(dialect, branch, acc, depth+1)
			}
			return
		}
		if branches, ok := escapeHatchBranches(s, "x-anyOf"); ok {
			// x-anyOf is treated as x-oneOf: the same narrowing applied to
			// the native anyOf keyword below.
			for _, branch := range branches {
				visit(dialect, branch, acc, depth+1)
			}
			return
		}
	}

	if isPureAllOf(s) {
		acc.add(convertAllOf(dialect, s.AllOf, depth+1))
		return
	}

	if len(s.OneOf) > 0 {
		for _, branch := range s.OneOf {
			visit(dialect, branch, acc, depth+1)
		}
		return
	}
	if len(s.AnyOf) > 0 {
		// anyOf is treated as oneOf: a deliberate semantic narrowing.
		for _, branch := range s.AnyOf {
			visit(dialect, branch, acc, depth+1)
		}
		return
	}
	if len(s.AllOf) > 0 {
		// Mixed allOf plus structural siblings: fall back to merging what we
		// can and folding the rest in as additional branches.
		acc.add(convertAllOf(dialect, s.AllOf, depth+1))
	}

	types := resolveTypes(s)
	if len(types) == 0 {
		if len(s.Enum) > 0 {
			for _, v := range s.Enum {
				acc.add(&emended.Schema{Kind: emended.KindConstant, ConstValue: v})
			}
			return
		}
		acc.add(&emended.Schema{Kind: emended.KindUnknown})
		return
	}

	for _, t := range types {
		if t == "null" {
			acc.add(&emended.Schema{Kind: emended.KindNull})
			continue
		}
		if len(s.Enum) > 0 && isPrimitiveType(t) {
			for _, v := range s.Enum {
				acc.add(&emended.Schema{Kind: emended.KindConstant, ConstValue: v})
			}
			continue
		}
		acc.add(buildStructural(dialect, s, t, depth+1))
	}
}

// finalize applies the union-finalization rules: append an implicit Null
// branch if needed, collapse to a bare branch or Unknown when possible, and
// otherwise flatten into a OneOf.
func finalize(acc *accumulator) *emended.Schema {
	if acc.nullable {
		hasNull := false
		for _, b := range acc.branches {
			if b.Kind == emended.KindNull {
				hasNull = true
				break
			}
		}
		if !hasNull {
			acc.branches = append(acc.branches, &emended.Schema{Kind: emended.KindNull})
		}
	}

	switch len(acc.branches) {
	case 0:
		return &emended.Schema{Kind: emended.KindUnknown}
	case 1:
		return acc.branches[0]
	default:
		return &emended.Schema{Kind: emended.KindOneOf, Branches: flattenOneOf(acc.branches)}
	}
}

// flattenOneOf ensures no branch is itself a OneOf (invariant 4).
func flattenOneOf(branches []*emended.Schema) []*emended.Schema {
	out := make([]*emended.Schema, 0, len(branches))
	for _, b := range branches {
		if b.Kind == emended.KindOneOf {
			out = append(out, b.Branches...)
			continue
		}
		out = append(out, b)
	}
	return out
}

// applyAttributes merges the attribute bag (title, description, deprecated,
// preserved x-* keys) collected from s onto result, per the attribute
// hoisting rule. It runs after finalize so it always touches the schema the
// caller actually receives, whether that is a lone branch or a fresh OneOf.
func applyAttributes(result *emended.Schema, s *source.Schema) {
	if s.Title != "" {
		result.Title = s.Title
	}
	if s.Description != "" {
		result.Description = s.Description
	}
	if s.Deprecated {
		result.Deprecated = true
	}
	for k, v := range s.Extra {
		if !isXKey(k) || escapeHatchKeys[k] {
			continue
		}
		if result.Extra == nil {
			result.Extra = make(map[string]any)
		}
		result.Extra[k] = v
	}
}

func isXKey(k string) bool {
	return len(k) >= 2 && k[0] == 'x' && k[1] == '-'
}

// isPureAllOf reports whether s has no structural signal besides allOf
// (title/description/deprecated/x-* attributes are fine): the "pure allOf of
// object-shaped branches" case from the design contract.
func isPureAllOf(s *source.Schema) bool {
	if len(s.AllOf) == 0 {
		return false
	}
	types := resolveTypes(s)
	return len(types) == 0 && s.Ref == "" && s.RecursiveRef == "" &&
		len(s.OneOf) == 0 && len(s.AnyOf) == 0 && s.Const == nil &&
		len(s.Enum) == 0 && len(s.Properties) == 0 && s.Items == nil &&
		len(s.PrefixItems) == 0
}

// convertAllOf merges allOf branches that are all object-shaped into a
// single Object with a left-biased property merge and a unioned required
// list, per §4.C.4. A branch that converts to anything else (including a
// bare Reference, which this pure function cannot resolve without the
// enclosing document) forces a OneOf fallback instead.
func convertAllOf(dialect Dialect, branches []*source.Schema, depth int) *emended.Schema {
	converted := make([]*emended.Schema, 0, len(branches))
	allObjects := true
	for _, b := range branches {
		c := convertSchema(dialect, b, depth)
		converted = append(converted, c)
		if c.Kind != emended.KindObject {
			allObjects = false
		}
	}

	if !allObjects {
		return &emended.Schema{Kind: emended.KindOneOf, Branches: flattenOneOf(converted)}
	}

	merged := &emended.Schema{Kind: emended.KindObject, Properties: map[string]*emended.Schema{}}
	requiredSet := map[string]bool{}
	for _, c := range converted {
		for name, prop := range c.Properties {
			if _, exists := merged.Properties[name]; !exists {
				merged.Properties[name] = prop
			}
		}
		for _, req := range c.Required {
			requiredSet[req] = true
		}
		if c.AdditionalProperties != nil {
			merged.AdditionalProperties = c.AdditionalProperties
		}
	}
	if len(requiredSet) > 0 {
		merged.Required = sortedKeys(requiredSet)
	}
	return merged
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func isPrimitiveType(t string) bool {
	switch t {
	case "boolean", "integer", "number", "string":
		return true
	default:
		return false
	}
}

// resolveTypes returns the concrete JSON Schema type names s declares,
// inferring "object"/"array" from structural shape when type is absent
// entirely (common in loosely-written Swagger 2.0 documents).
func resolveTypes(s *source.Schema) []string {
	types := schemautil.GetSchemaTypes(s)
	if len(types) > 0 {
		return types
	}
	if len(s.Properties) > 0 || s.AdditionalProperties != nil {
		return []string{"object"}
	}
	if s.Items != nil || len(s.PrefixItems) > 0 {
		return []string{"array"}
	}
	return nil
}

// buildStructural builds the Boolean/Integer/Number/String/Array/Tuple/Object
// branch for one resolved concrete type t.
func buildStructural(dialect Dialect, s *source.Schema, t string, depth int) *emended.Schema {
	switch t {
	case "boolean":
		return &emended.Schema{Kind: emended.KindBoolean, Format: s.Format}
	case "integer", "number":
		kind := emended.KindNumber
		if t == "integer" {
			kind = emended.KindInteger
		}
		min, max, exclMin, exclMax := resolveNumericBounds(s)
		return &emended.Schema{
			Kind:             kind,
			Format:           s.Format,
			MultipleOf:       s.MultipleOf,
			Minimum:          min,
			Maximum:          max,
			ExclusiveMinimum: exclMin,
			ExclusiveMaximum: exclMax,
		}
	case "string":
		return &emended.Schema{
			Kind:      emended.KindString,
			Format:    s.Format,
			MinLength: s.MinLength,
			MaxLength: s.MaxLength,
			Pattern:   s.Pattern,
		}
	case "array":
		return buildArrayOrTuple(dialect, s, depth)
	case "object":
		return buildObject(dialect, s, depth)
	default:
		return &emended.Schema{Kind: emended.KindUnknown}
	}
}

// resolveNumericBounds folds the 2.0/3.0 (bool flag) and 3.1 (numeric bound)
// forms of exclusiveMinimum/exclusiveMaximum into the emended grammar's
// always-boolean-flag shape.
func resolveNumericBounds(s *source.Schema) (min, max *float64, exclMin, exclMax bool) {
	min, max = s.Minimum, s.Maximum
	if b, ok := source.AsBool(s.ExclusiveMinimum); ok {
		exclMin = b
	} else if f, ok := source.AsFloat64(s.ExclusiveMinimum); ok {
		min = &f
		exclMin = true
	}
	if b, ok := source.AsBool(s.ExclusiveMaximum); ok {
		exclMax = b
	} else if f, ok := source.AsFloat64(s.ExclusiveMaximum); ok {
		max = &f
		exclMax = true
	}
	return min, max, exclMin, exclMax
}

// buildArrayOrTuple implements the Array/Tuple split and the items-vs-
// prefixItems collision rule from §4.C.5: prefixItems wins, and a
// concomitant single-schema items becomes additionalItems.
func buildArrayOrTuple(dialect Dialect, s *source.Schema, depth int) *emended.Schema {
	if prefix := resolveTuplePrefix(s); prefix != nil {
		out := &emended.Schema{
			Kind:        emended.KindTuple,
			PrefixItems: make([]*emended.Schema, len(prefix)),
			MinItems:    s.MinItems,
			MaxItems:    s.MaxItems,
		}
		for i, p := range prefix {
			out.PrefixItems[i] = convertSchema(dialect, p, depth)
		}
		out.AdditionalItems = resolveAdditionalItems(dialect, s, depth)
		return out
	}

	itemsSchema, _ := source.AsSchema(s.Items)
	return &emended.Schema{
		Kind:     emended.KindArray,
		Items:    convertSchema(dialect, itemsSchema, depth),
		MinItems: s.MinItems,
		MaxItems: s.MaxItems,
	}
}

// resolveTuplePrefix returns the tuple's prefix schemas, or nil if s is not
// tuple-shaped: either an explicit prefixItems list, or a legacy items:
// [schema, ...] array form.
func resolveTuplePrefix(s *source.Schema) []*source.Schema {
	if len(s.PrefixItems) > 0 {
		return s.PrefixItems
	}
	if list, ok := source.AsSchemaList(s.Items); ok {
		return list
	}
	return nil
}

func resolveAdditionalItems(dialect Dialect, s *source.Schema, depth int) any {
	if s.AdditionalItems != nil {
		if b, ok := source.AsBool(s.AdditionalItems); ok {
			return b
		}
		if sub, ok := source.AsSchema(s.AdditionalItems); ok {
			return convertSchema(dialect, sub, depth)
		}
	}
	// A concomitant single-schema items alongside prefixItems becomes
	// additionalItems (prefixItems wins the tuple slot).
	if len(s.PrefixItems) > 0 {
		if sub, ok := source.AsSchema(s.Items); ok {
			return convertSchema(dialect, sub, depth)
		}
	}
	return nil
}

func buildObject(dialect Dialect, s *source.Schema, depth int) *emended.Schema {
	out := &emended.Schema{Kind: emended.KindObject, Required: s.Required}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*emended.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = convertSchema(dialect, prop, depth)
		}
	}
	if s.AdditionalProperties != nil {
		if b, ok := source.AsBool(s.AdditionalProperties); ok {
			out.AdditionalProperties = b
		} else if sub, ok := source.AsSchema(s.AdditionalProperties); ok {
			out.AdditionalProperties = convertSchema(dialect, sub, depth)
		}
	}
	return out
}

// rewriteRef rewrites a source $ref/$recursiveRef into the emended
// dialect's single reference form, targeting #/components/schemas/.
func rewriteRef(dialect Dialect, ref string) string {
	if dialect == DialectSwagger2 {
		const oldPrefix = "#/definitions/"
		if len(ref) > len(oldPrefix) && ref[:len(oldPrefix)] == oldPrefix {
			return "#/components/schemas/" + ref[len(oldPrefix):]
		}
	}
	return ref
}
