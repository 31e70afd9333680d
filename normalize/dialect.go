// Package normalize implements the schema normalizer and document upgrader:
// components C and D. Each of the three source grammars gets its own entry
// point (ConvertSchemaFromSwagger2, ConvertSchemaFromOAS30,
// ConvertSchemaFromOAS31, and the matching ConvertDocumentFrom* trio), but
// since source.Schema already unifies all three grammars into one flat
// struct, the entry points share a single traversal engine parameterized by
// a Dialect value rather than triplicating the algorithm.
package normalize

// Dialect identifies which source grammar's rules apply during a single
// convertSchema/convertDocument call: which escape-hatch keys are
// structural, which reference prefix to rewrite, and how exclusive bounds
// are shaped.
type Dialect int

const (
	// DialectSwagger2 is Swagger/OpenAPI 2.0.
	DialectSwagger2 Dialect = iota
	// DialectOAS30 is OpenAPI 3.0.x.
	DialectOAS30
	// DialectOAS31 is OpenAPI 3.1.x (JSON Schema draft 2020-12).
	DialectOAS31
)

func (d Dialect) String() string {
	switch d {
	case DialectSwagger2:
		return "swagger2.0"
	case DialectOAS30:
		return "openapi3.0"
	case DialectOAS31:
		return "openapi3.1"
	default:
		return "unknown"
	}
}
