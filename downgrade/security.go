package downgrade

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oas-emend/emendapi/emended"
	"github.com/oas-emend/emendapi/internal/issues"
	"github.com/oas-emend/emendapi/source"
)

var schemeSuffixCaser = cases.Title(language.Und, cases.NoLower)

// downgradeSecuritySchemesOAS30 maps emended security schemes onto OAS
// 3.0.x mostly unchanged: the Flows object shape is identical.
func downgradeSecuritySchemesOAS30(in map[string]*emended.SecurityScheme) map[string]*source.SecurityScheme {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]*source.SecurityScheme, len(in))
	for name, s := range in {
		switch s.Type {
		case "oauth2":
			out[name] = &source.SecurityScheme{Type: "oauth2", Description: s.Description, Flows: downgradeOAuthFlows(s.Flows)}
		default:
			out[name] = downgradeSimpleScheme(s)
		}
	}
	return out
}

func downgradeSimpleScheme(s *emended.SecurityScheme) *source.SecurityScheme {
	return &source.SecurityScheme{
		Type:             s.Type,
		Description:      s.Description,
		Name:             s.Name,
		In:               s.In,
		Scheme:           s.Scheme,
		BearerFormat:     s.BearerFormat,
		OpenIDConnectURL: s.OpenIDConnectURL,
	}
}

func downgradeOAuthFlows(in *emended.OAuthFlows) *source.OAuthFlows {
	if in == nil {
		return nil
	}
	return &source.OAuthFlows{
		Implicit:          downgradeOAuthFlow(in.Implicit),
		Password:          downgradeOAuthFlow(in.Password),
		ClientCredentials: downgradeOAuthFlow(in.ClientCredentials),
		AuthorizationCode: downgradeOAuthFlow(in.AuthorizationCode),
	}
}

func downgradeOAuthFlow(in *emended.OAuthFlow) *source.OAuthFlow {
	if in == nil {
		return nil
	}
	return &source.OAuthFlow{
		AuthorizationURL: in.AuthorizationURL,
		TokenURL:         in.TokenURL,
		RefreshURL:       in.RefreshURL,
		Scopes:           in.Scopes,
	}
}

// namedFlow pairs a Swagger 2.0 flow name with the emended flow it came
// from, in the fixed order downgradeSecuritySchemesSwagger2 walks flow sets.
type namedFlow struct {
	swagger2Name string
	flow         *emended.OAuthFlow
}

func presentFlows(flows *emended.OAuthFlows) []namedFlow {
	if flows == nil {
		return nil
	}
	var out []namedFlow
	if flows.Implicit != nil {
		out = append(out, namedFlow{"implicit", flows.Implicit})
	}
	if flows.Password != nil {
		out = append(out, namedFlow{"password", flows.Password})
	}
	if flows.ClientCredentials != nil {
		out = append(out, namedFlow{"application", flows.ClientCredentials})
	}
	if flows.AuthorizationCode != nil {
		out = append(out, namedFlow{"accessCode", flows.AuthorizationCode})
	}
	return out
}

// downgradeSecuritySchemesSwagger2 maps emended security schemes onto
// Swagger 2.0. Swagger 2.0 allows only one flow per scheme entry, so an
// oauth2 scheme with more than one flow set is split into several entries,
// named deterministically by title-casing the flow name onto the original
// scheme name.
func downgradeSecuritySchemesSwagger2(in map[string]*emended.SecurityScheme, result *Result) map[string]*source.SecurityScheme {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]*source.SecurityScheme, len(in))
	for name, s := range in {
		if s.Type != "oauth2" {
			if s.Type != "http" && s.Type != "apiKey" {
				result.unrepresentableConstruct(issues.FormatPath("components", "securitySchemes", name),
					"security scheme type "+s.Type+" has no Swagger 2.0 equivalent")
			}
			out[name] = downgradeSwagger2SimpleScheme(s)
			continue
		}

		flows := presentFlows(s.Flows)
		if len(flows) == 0 {
			continue
		}
		if len(flows) == 1 {
			out[name] = downgradeSwagger2OAuthFlow(s, flows[0])
			continue
		}

		result.splitOAuthFlow(issues.FormatPath("components", "securitySchemes", name), name)
		for _, nf := range flows {
			splitName := name + schemeSuffixCaser.String(nf.swagger2Name)
			out[splitName] = downgradeSwagger2OAuthFlow(s, nf)
		}
	}
	return out
}

func downgradeSwagger2SimpleScheme(s *emended.SecurityScheme) *source.SecurityScheme {
	switch s.Type {
	case "http":
		return &source.SecurityScheme{Type: "basic", Description: s.Description}
	case "apiKey":
		return &source.SecurityScheme{Type: "apiKey", Name: s.Name, In: s.In, Description: s.Description}
	default:
		// openIdConnect and unrecognized types have no Swagger 2.0
		// equivalent; downgradeSecuritySchemesSwagger2 records a critical
		// diagnostic for them before calling this.
		return &source.SecurityScheme{Type: s.Type, Description: s.Description}
	}
}

func downgradeSwagger2OAuthFlow(s *emended.SecurityScheme, nf namedFlow) *source.SecurityScheme {
	return &source.SecurityScheme{
		Type:             "oauth2",
		Description:      s.Description,
		Flow:             nf.swagger2Name,
		AuthorizationURL: nf.flow.AuthorizationURL,
		TokenURL:         nf.flow.TokenURL,
		Scopes:           nf.flow.Scopes,
	}
}
