package downgrade

import (
	"net/url"

	"github.com/oas-emend/emendapi/emended"
	"github.com/oas-emend/emendapi/internal/issues"
	"github.com/oas-emend/emendapi/source"
)

// DowngradeToOAS30 rewrites an emended document as OpenAPI 3.0.x (component
// E). oneOf, tuples, and const are the only lossy pieces; everything else is
// a structural rename.
func DowngradeToOAS30(doc *emended.Document) (*source.Document3, *Result) {
	result := &Result{Target: TargetOAS30}
	out := &source.Document3{
		OpenAPI:      "3.0.3",
		Info:         downgradeInfo(doc.Info),
		Servers:      downgradeServers(doc.Servers),
		Security:     downgradeSecurityRequirements(doc.Security),
		Tags:         downgradeTags(doc.Tags),
		ExternalDocs: downgradeExternalDocs(doc.ExternalDocs),
		Components:   &source.Components{},
	}

	out.Components.Schemas = make(map[string]*source.Schema, len(doc.Components.Schemas))
	for name, s := range doc.Components.Schemas {
		out.Components.Schemas[name] = downgradeSchema(TargetOAS30, s, result, issues.FormatPath("components", "schemas", name), 0)
	}
	out.Components.SecuritySchemes = downgradeSecuritySchemesOAS30(doc.Components.SecuritySchemes)

	if len(doc.Paths) > 0 {
		out.Paths = make(source.Paths, len(doc.Paths))
	}
	for pattern, p := range doc.Paths {
		out.Paths[pattern] = downgradePathOAS30(p, result, pattern)
	}
	if len(doc.Webhooks) > 0 {
		out.Webhooks = make(map[string]*source.PathItem, len(doc.Webhooks))
		for name, p := range doc.Webhooks {
			out.Webhooks[name] = downgradePathOAS30(p, result, name)
		}
	}
	return out, result
}

func downgradePathOAS30(p *emended.Path, result *Result, path string) *source.PathItem {
	out := &source.PathItem{Summary: p.Summary, Description: p.Description, Servers: downgradeServers(p.Servers)}
	for _, method := range emended.Methods {
		op := p.ByMethod(method)
		if op == nil {
			continue
		}
		out.Parameters = nil // path-level parameters never reappear; invariant 5 stays reversed onto the operation
		setOperationOAS30(out, method, downgradeOperationOAS30(op, result, path, method))
	}
	return out
}

func setOperationOAS30(item *source.PathItem, method string, op *source.Operation) {
	switch method {
	case "get":
		item.Get = op
	case "post":
		item.Post = op
	case "put":
		item.Put = op
	case "delete":
		item.Delete = op
	case "options":
		item.Options = op
	case "head":
		item.Head = op
	case "patch":
		item.Patch = op
	case "trace":
		item.Trace = op
	}
}

func downgradeOperationOAS30(op *emended.Operation, result *Result, path, method string) *source.Operation {
	out := &source.Operation{
		OperationID: op.OperationID,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
		Deprecated:  op.Deprecated,
		Security:    downgradeSecurityRequirements(op.Security),
		Servers:     downgradeServers(op.Servers),
		Responses:   make(map[string]*source.Response, len(op.Responses)),
	}
	for _, p := range op.Parameters {
		out.Parameters = append(out.Parameters, &source.Parameter{
			Name:        p.Name,
			In:          p.In,
			Description: p.Description,
			Required:    p.Required,
			Deprecated:  p.Deprecated,
			Schema:      downgradeSchema(TargetOAS30, p.Schema, result, issues.FormatPath(path, method, "parameters", p.Name), 0),
		})
	}
	if op.RequestBody != nil {
		out.RequestBody = &source.RequestBody{
			Description: op.RequestBody.Description,
			Required:    op.RequestBody.Required,
			Content:     downgradeContentMap(TargetOAS30, op.RequestBody.Content, result, issues.FormatPath(path, method, "requestBody")),
		}
	}
	for status, resp := range op.Responses {
		responsePath := issues.FormatPath(path, method, "responses", status)
		out.Responses[status] = &source.Response{
			Description: resp.Description,
			Content:     downgradeContentMap(TargetOAS30, resp.Content, result, responsePath),
			Headers:     downgradeHeaders(resp.Headers, result, responsePath),
		}
	}
	return out
}

func downgradeContentMap(target TargetVersion, in map[string]emended.MediaType, result *Result, path string) map[string]source.MediaType {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]source.MediaType, len(in))
	for mediaType, mt := range in {
		out[mediaType] = source.MediaType{Schema: downgradeSchema(target, mt.Schema, result, issues.FormatPath(path, mediaType), 0)}
	}
	return out
}

func downgradeHeaders(in map[string]*emended.Parameter, result *Result, path string) map[string]*source.Parameter {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]*source.Parameter, len(in))
	for name, h := range in {
		out[name] = &source.Parameter{
			Description: h.Description,
			Required:    h.Required,
			Deprecated:  h.Deprecated,
			Schema:      downgradeSchema(TargetOAS30, h.Schema, result, issues.FormatPath(path, "headers", name), 0),
		}
	}
	return out
}

// DowngradeToSwagger2 rewrites an emended document as Swagger 2.0
// (component F). One server URL is parsed into host/basePath/schemes; every
// operation's requestBody is flattened onto a single "in: body" parameter,
// dropping any content type beyond the first and recording the rest as
// x-nestia-content-type.
func DowngradeToSwagger2(doc *emended.Document) (*source.Document20, *Result) {
	result := &Result{Target: TargetSwagger20}
	out := &source.Document20{
		Swagger:             "2.0",
		Info:                downgradeInfo(doc.Info),
		Security:            downgradeSecurityRequirements(doc.Security),
		Tags:                downgradeTags(doc.Tags),
		ExternalDocs:        downgradeExternalDocs(doc.ExternalDocs),
		Definitions:         make(map[string]*source.Schema, len(doc.Components.Schemas)),
		SecurityDefinitions: downgradeSecuritySchemesSwagger2(doc.Components.SecuritySchemes, result),
	}
	if len(doc.Servers) > 0 {
		out.Host, out.BasePath, out.Schemes = splitServerURL(doc.Servers[0].URL)
	}

	for name, s := range doc.Components.Schemas {
		out.Definitions[name] = downgradeSchema(TargetSwagger20, s, result, issues.FormatPath("definitions", name), 0)
	}

	out.Paths = make(source.Paths, len(doc.Paths))
	for pattern, p := range doc.Paths {
		out.Paths[pattern] = downgradePathSwagger2(p, result, pattern)
	}
	return out, result
}

func splitServerURL(raw string) (host, basePath string, schemes []string) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", raw, nil
	}
	basePath = u.Path
	if u.Scheme != "" {
		schemes = []string{u.Scheme}
	}
	return u.Host, basePath, schemes
}

func downgradePathSwagger2(p *emended.Path, result *Result, path string) *source.PathItem {
	out := &source.PathItem{Summary: p.Summary, Description: p.Description}
	for _, method := range emended.Methods {
		op := p.ByMethod(method)
		if op == nil {
			continue
		}
		setOperationOAS30(out, method, downgradeOperationSwagger2(op, result, path, method))
	}
	return out
}

func downgradeOperationSwagger2(op *emended.Operation, result *Result, path, method string) *source.Operation {
	out := &source.Operation{
		OperationID: op.OperationID,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
		Deprecated:  op.Deprecated,
		Security:    downgradeSecurityRequirements(op.Security),
		Responses:   make(map[string]*source.Response, len(op.Responses)),
	}
	for _, p := range op.Parameters {
		out.Parameters = append(out.Parameters, &source.Parameter{
			Name:        p.Name,
			In:          p.In,
			Description: p.Description,
			Required:    p.Required,
			Schema:      downgradeSchema(TargetSwagger20, p.Schema, result, issues.FormatPath(path, method, "parameters", p.Name), 0),
		})
	}
	if op.RequestBody != nil {
		out.Parameters = append(out.Parameters, flattenRequestBody(op.RequestBody, result, issues.FormatPath(path, method, "requestBody")))
	}
	for status, resp := range op.Responses {
		out.Responses[status] = &source.Response{
			Description: resp.Description,
			Schema:      firstResponseSchema(resp.Content, result, issues.FormatPath(path, method, "responses", status)),
		}
	}
	return out
}

// flattenRequestBody collapses an OAS 3.x-native request body onto the
// single "in: body" parameter Swagger 2.0 allows. application/json (or the
// only content entry) becomes the body schema; every other media type is
// recorded as x-nestia-content-type so it is not silently dropped.
func flattenRequestBody(body *emended.RequestBody, result *Result, path string) *source.Parameter {
	var chosen *emended.Schema
	var extra []string
	if mt, ok := body.Content["application/json"]; ok {
		chosen = mt.Schema
	}
	for mediaType, mt := range body.Content {
		if chosen == nil {
			chosen = mt.Schema
		}
		if mediaType != "application/json" {
			extra = append(extra, mediaType)
		}
	}

	schema := downgradeSchema(TargetSwagger20, chosen, result, path, 0)
	if schema == nil {
		schema = &source.Schema{Type: "object"}
	}
	if len(extra) > 0 {
		setExtra(schema, "x-nestia-content-type", extra)
	}
	return &source.Parameter{Name: "body", In: "body", Description: body.Description, Required: body.Required, Schema: schema}
}

func firstResponseSchema(content map[string]emended.MediaType, result *Result, path string) *source.Schema {
	if mt, ok := content["application/json"]; ok {
		return downgradeSchema(TargetSwagger20, mt.Schema, result, path, 0)
	}
	for _, mt := range content {
		return downgradeSchema(TargetSwagger20, mt.Schema, result, path, 0)
	}
	return nil
}

func downgradeInfo(in *emended.Info) source.Info {
	if in == nil {
		return source.Info{}
	}
	out := source.Info{
		Title:          in.Title,
		Description:    in.Description,
		TermsOfService: in.TermsOfService,
		Version:        in.Version,
		Summary:        in.Summary,
	}
	if in.Contact != nil {
		out.Contact = &source.Contact{Name: in.Contact.Name, URL: in.Contact.URL, Email: in.Contact.Email}
	}
	if in.License != nil {
		out.License = &source.License{Name: in.License.Name, URL: in.License.URL, Identifier: in.License.Identifier}
	}
	return out
}

func downgradeServers(in []emended.Server) []source.Server {
	if len(in) == 0 {
		return nil
	}
	out := make([]source.Server, len(in))
	for i, s := range in {
		var vars map[string]source.ServerVariable
		if len(s.Variables) > 0 {
			vars = make(map[string]source.ServerVariable, len(s.Variables))
			for name, v := range s.Variables {
				vars[name] = source.ServerVariable{Enum: v.Enum, Default: v.Default, Description: v.Description}
			}
		}
		out[i] = source.Server{URL: s.URL, Description: s.Description, Variables: vars}
	}
	return out
}

func downgradeTags(in []emended.Tag) []source.Tag {
	if len(in) == 0 {
		return nil
	}
	out := make([]source.Tag, len(in))
	for i, t := range in {
		out[i] = source.Tag{Name: t.Name, Description: t.Description, ExternalDocs: downgradeExternalDocs(t.ExternalDocs)}
	}
	return out
}

func downgradeExternalDocs(in *emended.ExternalDocs) *source.ExternalDocs {
	if in == nil {
		return nil
	}
	return &source.ExternalDocs{Description: in.Description, URL: in.URL}
}

func downgradeSecurityRequirements(in []emended.SecurityRequirement) []source.SecurityRequirement {
	if len(in) == 0 {
		return nil
	}
	out := make([]source.SecurityRequirement, len(in))
	for i, r := range in {
		out[i] = source.SecurityRequirement(r)
	}
	return out
}
