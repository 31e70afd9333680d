// Package downgrade implements the two downgraders: components E (to
// OpenAPI 3.0) and F (to Swagger 2.0). Both consume an emended.Document and
// produce a document in the corresponding source grammar; F is E's
// transformation plus Swagger 2.0's additional flattening.
package downgrade

// TargetVersion identifies which grammar Downgrade should produce.
type TargetVersion int

const (
	// TargetOAS30 downgrades to OpenAPI 3.0.x.
	TargetOAS30 TargetVersion = iota
	// TargetSwagger20 downgrades to Swagger 2.0.
	TargetSwagger20
)

func (t TargetVersion) String() string {
	if t == TargetSwagger20 {
		return "2.0"
	}
	return "3.0"
}
