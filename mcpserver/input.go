package mcpserver

import (
	"fmt"

	"github.com/oas-emend/emendapi/encoding"
)

// docInput is the document payload every tool accepts: YAML or JSON text,
// decoded via encoding.DecodeYAML before being handed to sniff, normalize,
// or downgrade.
type docInput struct {
	Document string `json:"document" jsonschema:"The Swagger/OpenAPI (or emended) document, as YAML or JSON text"`
}

func (d docInput) decode() (any, error) {
	if d.Document == "" {
		return nil, fmt.Errorf("document is required")
	}
	v, err := encoding.DecodeYAML([]byte(d.Document))
	if err != nil {
		return nil, err
	}
	return v, nil
}
