package normalize

import (
	"github.com/oas-emend/emendapi/emended"
	"github.com/oas-emend/emendapi/internal/httputil"
	"github.com/oas-emend/emendapi/internal/issues"
	"github.com/oas-emend/emendapi/source"
)

// ConvertDocumentFromOAS30 upgrades an OpenAPI 3.0.x document into the
// emended dialect.
func ConvertDocumentFromOAS30(doc *source.Document3) (*emended.Document, *Result) {
	return convertDocumentOAS3(DialectOAS30, doc)
}

// ConvertDocumentFromOAS31 upgrades an OpenAPI 3.1.x document into the
// emended dialect: $recursiveRef is demoted, and webhooks pass through
// alongside paths.
func ConvertDocumentFromOAS31(doc *source.Document3) (*emended.Document, *Result) {
	return convertDocumentOAS3(DialectOAS31, doc)
}

func convertDocumentOAS3(dialect Dialect, doc *source.Document3) (*emended.Document, *Result) {
	result := &Result{SourceDialect: dialect}
	convertSchema := schemaConverterFor(dialect)

	out := &emended.Document{
		OpenAPI:      "3.1.0",
		Emended:      true,
		Info:         convertInfo(&doc.Info),
		Servers:      convertServers(doc.Servers),
		Security:     convertSecurityRequirements(doc.Security),
		Tags:         convertTags(doc.Tags),
		ExternalDocs: convertExternalDocs(doc.ExternalDocs),
	}

	var comps *source.Components
	if doc.Components != nil {
		comps = doc.Components
	} else {
		comps = &source.Components{}
	}
	out.Components.Schemas = make(map[string]*emended.Schema, len(comps.Schemas))
	for name, s := range comps.Schemas {
		out.Components.Schemas[name] = convertSchema(s)
	}
	out.Components.SecuritySchemes = convertSecuritySchemesOAS3(comps.SecuritySchemes, result)

	if len(doc.Paths) > 0 {
		out.Paths = make(map[string]*emended.Path, len(doc.Paths))
	}
	for pattern, item := range doc.Paths {
		out.Paths[pattern] = convertPathItemOAS3(dialect, comps, pattern, item, result)
	}

	if len(doc.Webhooks) > 0 {
		out.Webhooks = make(map[string]*emended.Path, len(doc.Webhooks))
		for name, item := range doc.Webhooks {
			out.Webhooks[name] = convertPathItemOAS3(dialect, comps, name, item, result)
		}
	}

	return out, result
}

// schemaConverterFor returns the per-dialect schema converter as a plain
// function value so the document-level code can stay dialect-agnostic.
func schemaConverterFor(dialect Dialect) func(*source.Schema) *emended.Schema {
	if dialect == DialectOAS31 {
		return ConvertSchemaFromOAS31
	}
	return ConvertSchemaFromOAS30
}

func convertPathItemOAS3(dialect Dialect, comps *source.Components, pattern string, item *source.PathItem, result *Result) *emended.Path {
	out := &emended.Path{
		Summary:     item.Summary,
		Description: item.Description,
		Servers:     convertServers(item.Servers),
	}
	pathParams := resolveParametersOAS3(comps, item.Parameters, result, pattern)

	for method, op := range item.Operations() {
		ctx := &issues.OperationContext{Method: method, Path: pattern, OperationID: op.OperationID}
		converted, ok := convertOperationOAS3(dialect, comps, pattern, method, op, pathParams, result, ctx)
		if !ok {
			continue
		}
		out.SetMethod(method, converted)
	}
	return out
}

func resolveParametersOAS3(comps *source.Components, params []*source.Parameter, result *Result, path string) []*source.Parameter {
	out := make([]*source.Parameter, 0, len(params))
	for _, p := range params {
		if p.Ref == "" {
			out = append(out, p)
			continue
		}
		name := refName(p.Ref)
		resolved, ok := comps.Parameters[name]
		if !ok {
			result.danglingReference(path, p.Ref)
			continue
		}
		out = append(out, resolved)
	}
	return out
}

func convertOperationOAS3(dialect Dialect, comps *source.Components, path, method string, op *source.Operation, pathParams []*source.Parameter, result *Result, ctx *issues.OperationContext) (*emended.Operation, bool) {
	convertSchema := schemaConverterFor(dialect)
	all := append(append([]*source.Parameter{}, pathParams...), resolveParametersOAS3(comps, op.Parameters, result, path)...)

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
	for _, p := range all {
		out.Parameters = append(out.Parameters, &emended.Parameter{
			Name:        p.Name,
			In:          p.In,
			Description: p.Description,
			Required:    p.Required,
			Deprecated:  p.Deprecated,
			Schema:      convertSchema(p.Schema),
		})
	}

	body := op.RequestBody
	if body != nil && body.Ref != "" {
		name := refName(body.Ref)
		resolved, ok := comps.RequestBodies[name]
		if !ok {
			result.danglingReference(path, body.Ref)
			body = nil
		} else {
			body = resolved
		}
	}
	if body != nil {
		out.RequestBody = &emended.RequestBody{
			Description:     body.Description,
			Required:        body.Required,
			Content:         convertContentMap(convertSchema, body.Content),
			NestiaEncrypted: body.NestiaEncrypted,
		}
	}

	for status, resp := range op.Responses {
		if !httputil.ValidateStatusCode(status) {
			result.invalidStatusCode(ctx, path, status)
		}
		out.Responses[status] = convertResponseOAS3(dialect, comps, path, resp, result)
	}
	return out, true
}

func convertResponseOAS3(dialect Dialect, comps *source.Components, path string, resp *source.Response, result *Result) *emended.Response {
	convertSchema := schemaConverterFor(dialect)
	if resp.Ref != "" {
		name := refName(resp.Ref)
		resolved, ok := comps.Responses[name]
		if !ok {
			result.danglingReference(path, resp.Ref)
			return &emended.Response{}
		}
		resp = resolved
	}
	out := &emended.Response{
		Description:     resp.Description,
		Content:         convertContentMap(convertSchema, resp.Content),
		NestiaEncrypted: resp.NestiaEncrypted,
	}
	if len(resp.Headers) > 0 {
		out.Headers = make(map[string]*emended.Parameter, len(resp.Headers))
		for name, h := range resp.Headers {
			hp := h
			if hp.Ref != "" {
				rname := refName(hp.Ref)
				if resolved, ok := comps.Headers[rname]; ok {
					hp = resolved
				} else {
					result.danglingReference(path, hp.Ref)
					continue
				}
			}
			out.Headers[name] = &emended.Parameter{
				Description: hp.Description,
				Required:    hp.Required,
				Deprecated:  hp.Deprecated,
				Schema:      convertSchema(hp.Schema),
			}
		}
	}
	return out
}

func convertContentMap(convertSchema func(*source.Schema) *emended.Schema, in map[string]source.MediaType) map[string]emended.MediaType {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]emended.MediaType, len(in))
	for mediaType, mt := range in {
		out[mediaType] = emended.MediaType{Schema: convertSchema(mt.Schema)}
	}
	return out
}
