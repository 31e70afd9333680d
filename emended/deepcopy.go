package emended

// DeepCopy returns an independent copy of s. Lifecycle (§3) requires every
// emended entity to be immutable once produced; DeepCopy is what lets a
// downgrader or a caller start from a fresh tree instead of mutating the one
// convert produced.
func (s *Schema) DeepCopy() *Schema {
	if s == nil {
		return nil
	}
	cp := *s
	if s.Extra != nil {
		cp.Extra = make(map[string]any, len(s.Extra))
		for k, v := range s.Extra {
			cp.Extra[k] = deepCopyAny(v)
		}
	}
	cp.Minimum = copyFloat(s.Minimum)
	cp.Maximum = copyFloat(s.Maximum)
	cp.MultipleOf = copyFloat(s.MultipleOf)
	cp.MinLength = copyInt(s.MinLength)
	cp.MaxLength = copyInt(s.MaxLength)
	cp.MinItems = copyInt(s.MinItems)
	cp.MaxItems = copyInt(s.MaxItems)
	cp.Items = s.Items.DeepCopy()

	cp.PrefixItems = deepCopySchemaSlice(s.PrefixItems)
	cp.AdditionalItems = deepCopySchemaOrBool(s.AdditionalItems)
	cp.AdditionalProperties = deepCopySchemaOrBool(s.AdditionalProperties)

	if s.Properties != nil {
		cp.Properties = make(map[string]*Schema, len(s.Properties))
		for k, v := range s.Properties {
			cp.Properties[k] = v.DeepCopy()
		}
	}
	if s.Required != nil {
		cp.Required = append([]string(nil), s.Required...)
	}
	cp.Branches = deepCopySchemaSlice(s.Branches)
	cp.ConstValue = deepCopyAny(s.ConstValue)
	return &cp
}

func deepCopySchemaSlice(v []*Schema) []*Schema {
	if v == nil {
		return nil
	}
	cp := make([]*Schema, len(v))
	for i, s := range v {
		cp[i] = s.DeepCopy()
	}
	return cp
}

// deepCopySchemaOrBool handles AdditionalItems/AdditionalProperties, which
// hold either a bool or a *Schema.
func deepCopySchemaOrBool(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case bool:
		return t
	case *Schema:
		return t.DeepCopy()
	default:
		return v
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

// deepCopyAny recursively copies an arbitrary JSON-compatible value, used
// for ConstValue and Extra's values.
func deepCopyAny(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, item := range t {
			cp[k] = deepCopyAny(item)
		}
		return cp
	case []any:
		cp := make([]any, len(t))
		for i, item := range t {
			cp[i] = deepCopyAny(item)
		}
		return cp
	default:
		return t
	}
}
