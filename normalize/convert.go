package normalize

import (
	"github.com/oas-emend/emendapi/emended"
	"github.com/oas-emend/emendapi/oaserrors"
	"github.com/oas-emend/emendapi/sniff"
	"github.com/oas-emend/emendapi/source"
)

// Convert classifies v (a generic, already-decoded value tree) and upgrades
// it into the emended dialect. It is idempotent on already-emended input:
// an emended document is syntactically a well-formed OpenAPI 3.1 document,
// so it is upgraded along the same path as any other 3.1 input, and the
// emended invariants already hold, so nothing changes shape.
//
// Convert is total on well-versioned input; only unrecognized-version fails
// outright, matching the propagation policy in the error taxonomy. Every
// other diagnostic accumulates in the returned Result.
func Convert(v any) (*emended.Document, *Result, error) {
	switch sniff.Classify(v) {
	case sniff.Swagger20:
		doc, err := source.DecodeDocument20(v)
		if err != nil {
			return nil, nil, err
		}
		out, result := ConvertDocumentFromSwagger2(doc)
		return out, result, nil

	case sniff.OpenAPI30:
		doc, err := source.DecodeDocument3(v)
		if err != nil {
			return nil, nil, err
		}
		out, result := ConvertDocumentFromOAS30(doc)
		return out, result, nil

	case sniff.OpenAPI31, sniff.Emended:
		doc, err := source.DecodeDocument3(v)
		if err != nil {
			return nil, nil, err
		}
		out, result := ConvertDocumentFromOAS31(doc)
		return out, result, nil

	default:
		return nil, nil, &oaserrors.UnrecognizedVersionError{
			Detail: `input has neither a "swagger" nor an "openapi" version field this module recognizes`,
		}
	}
}
