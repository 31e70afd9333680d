package normalize

import (
	"github.com/oas-emend/emendapi/emended"
	"github.com/oas-emend/emendapi/internal/httputil"
	"github.com/oas-emend/emendapi/internal/issues"
	"github.com/oas-emend/emendapi/source"
)

// ConvertDocumentFromSwagger2 upgrades a Swagger 2.0 document into the
// emended dialect: host+basePath+schemes lift into a single server, body
// parameters promote into requestBody, and definitions/securityDefinitions
// map onto components.
func ConvertDocumentFromSwagger2(doc *source.Document20) (*emended.Document, *Result) {
	result := &Result{SourceDialect: DialectSwagger2}
	out := &emended.Document{
		OpenAPI: "3.1.0",
		Emended: true,
		Info:    convertInfo(&doc.Info),
		Servers: liftSwagger2Servers(doc),
		Components: emended.Components{
			Schemas:         make(map[string]*emended.Schema, len(doc.Definitions)),
			SecuritySchemes: convertSecuritySchemesSwagger2(doc.SecurityDefinitions, result),
		},
		Security:     convertSecurityRequirements(doc.Security),
		Tags:         convertTags(doc.Tags),
		ExternalDocs: convertExternalDocs(doc.ExternalDocs),
	}
	for name, s := range doc.Definitions {
		out.Components.Schemas[name] = ConvertSchemaFromSwagger2(s)
	}

	if len(doc.Paths) > 0 {
		out.Paths = make(map[string]*emended.Path, len(doc.Paths))
	}
	for pattern, item := range doc.Paths {
		out.Paths[pattern] = convertPathItemSwagger2(doc, pattern, item, result)
	}

	return out, result
}

func liftSwagger2Servers(doc *source.Document20) []emended.Server {
	if doc.Host == "" && doc.BasePath == "" {
		return nil
	}
	scheme := "https"
	if len(doc.Schemes) > 0 {
		scheme = doc.Schemes[0]
	}
	url := doc.BasePath
	if doc.Host != "" {
		url = scheme + "://" + doc.Host + doc.BasePath
	}
	return []emended.Server{{URL: url}}
}

func convertPathItemSwagger2(doc *source.Document20, pattern string, item *source.PathItem, result *Result) *emended.Path {
	out := &emended.Path{
		Summary:     item.Summary,
		Description: item.Description,
		Servers:     convertServers(item.Servers),
	}
	pathParams := resolveParametersSwagger2(doc, item.Parameters, result, pattern)

	for method, op := range item.Operations() {
		ctx := &issues.OperationContext{Method: method, Path: pattern, OperationID: op.OperationID}
		converted, ok := convertOperationSwagger2(doc, pattern, method, op, pathParams, result, ctx)
		if !ok {
			continue
		}
		out.SetMethod(method, converted)
	}
	return out
}

func resolveParametersSwagger2(doc *source.Document20, params []*source.Parameter, result *Result, path string) []*source.Parameter {
	out := make([]*source.Parameter, 0, len(params))
	for _, p := range params {
		if p.Ref == "" {
			out = append(out, p)
			continue
		}
		name := refName(p.Ref)
		resolved, ok := doc.Parameters[name]
		if !ok {
			result.danglingReference(path, p.Ref)
			continue
		}
		out = append(out, resolved)
	}
	return out
}

func convertOperationSwagger2(doc *source.Document20, path, method string, op *source.Operation, pathParams []*source.Parameter, result *Result, ctx *issues.OperationContext) (*emended.Operation, bool) {
	all := append(append([]*source.Parameter{}, pathParams...), resolveParametersSwagger2(doc, op.Parameters, result, path)...)

	var bodyParams []*source.Parameter
	var others []*source.Parameter
	for _, p := range all {
		if p.In == "body" {
			bodyParams = append(bodyParams, p)
			continue
		}
		others = append(others, p)
	}
	if len(bodyParams) > 1 {
		result.malformedOperation(ctx, path, "more than one body parameter")
		return nil, false
	}

	out := &emended.Operation{
		OperationID: op.OperationID,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
		Deprecated:  op.Deprecated,
		Security:    convertSecurityRequirements(op.Security),
		Servers:     convertServers(op.Servers),
		Responses:   make(map[string]*emended.Response, len(op.Responses)),
	}
	for _, p := range others {
		out.Parameters = append(out.Parameters, convertParameterSwagger2(p))
	}
	if len(bodyParams) == 1 {
		b := bodyParams[0]
		out.RequestBody = &emended.RequestBody{
			Description: b.Description,
			Required:    b.Required,
			Content: map[string]emended.MediaType{
				"application/json": {Schema: ConvertSchemaFromSwagger2(b.Schema)},
			},
		}
	}
	for status, resp := range op.Responses {
		if !httputil.ValidateStatusCode(status) {
			result.invalidStatusCode(ctx, path, status)
		}
		out.Responses[status] = convertResponseSwagger2(doc, path, resp, result)
	}
	return out, true
}

func convertParameterSwagger2(p *source.Parameter) *emended.Parameter {
	var schema *source.Schema
	if p.Schema != nil {
		schema = p.Schema
	} else {
		schema = &source.Schema{Type: p.Type, Format: p.Format, Items: p.Items, Enum: p.Enum, Default: p.Default}
	}
	return &emended.Parameter{
		Name:        p.Name,
		In:          p.In,
		Description: p.Description,
		Required:    p.Required,
		Deprecated:  p.Deprecated,
		Schema:      ConvertSchemaFromSwagger2(schema),
	}
}

func convertResponseSwagger2(doc *source.Document20, path string, resp *source.Response, result *Result) *emended.Response {
	if resp.Ref != "" {
		name := refName(resp.Ref)
		resolved, ok := doc.Responses[name]
		if !ok {
			result.danglingReference(path, resp.Ref)
			return &emended.Response{}
		}
		resp = resolved
	}
	out := &emended.Response{Description: resp.Description}
	if resp.Schema != nil {
		out.Content = map[string]emended.MediaType{
			"application/json": {Schema: ConvertSchemaFromSwagger2(resp.Schema)},
		}
	}
	if len(resp.Headers) > 0 {
		out.Headers = make(map[string]*emended.Parameter, len(resp.Headers))
		for name, h := range resp.Headers {
			out.Headers[name] = convertParameterSwagger2(h)
		}
	}
	return out
}

// refName extracts the trailing component name from a #/definitions/X or
// #/parameters/X or #/responses/X style local reference.
func refName(ref string) string {
	for i := len(ref) - 1; i >= 0; i-- {
		if ref[i] == '/' {
			return ref[i+1:]
		}
	}
	return ref
}
