package normalize

import (
	"github.com/oas-emend/emendapi/emended"
	"github.com/oas-emend/emendapi/source"
)

// convertSecuritySchemesSwagger2 maps Swagger 2.0 security definitions onto
// the emended flow-set names: basic becomes {type: http, scheme: basic}, and
// oauth2's single Flow name maps onto the matching OAuthFlows slot.
func convertSecuritySchemesSwagger2(in map[string]*source.SecurityScheme, result *Result) map[string]*emended.SecurityScheme {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]*emended.SecurityScheme, len(in))
	for name, s := range in {
		switch s.Type {
		case "basic":
			out[name] = &emended.SecurityScheme{Type: "http", Scheme: "basic", Description: s.Description}
		case "apiKey":
			out[name] = &emended.SecurityScheme{Type: "apiKey", Name: s.Name, In: s.In, Description: s.Description}
		case "oauth2":
			flow := &emended.OAuthFlow{
				AuthorizationURL: s.AuthorizationURL,
				TokenURL:         s.TokenURL,
				Scopes:           s.Scopes,
			}
			flows := &emended.OAuthFlows{}
			switch s.Flow {
			case "implicit":
				flows.Implicit = flow
			case "accessCode":
				flows.AuthorizationCode = flow
			case "password":
				flows.Password = flow
			case "application":
				flows.ClientCredentials = flow
			default:
				result.unknownSecurityScheme(name, "oauth2:"+s.Flow)
				continue
			}
			out[name] = &emended.SecurityScheme{Type: "oauth2", Description: s.Description, Flows: flows}
		default:
			result.unknownSecurityScheme(name, s.Type)
		}
	}
	return out
}

// convertSecuritySchemesOAS3 maps OAS 3.0/3.1 security schemes through
// mostly unchanged; only the flow-set field names differ dialect to dialect,
// and both already match the emended names.
func convertSecuritySchemesOAS3(in map[string]*source.SecurityScheme, result *Result) map[string]*emended.SecurityScheme {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]*emended.SecurityScheme, len(in))
	for name, s := range in {
		switch s.Type {
		case "http":
			out[name] = &emended.SecurityScheme{Type: "http", Scheme: s.Scheme, BearerFormat: s.BearerFormat, Description: s.Description}
		case "apiKey":
			out[name] = &emended.SecurityScheme{Type: "apiKey", Name: s.Name, In: s.In, Description: s.Description}
		case "oauth2":
			out[name] = &emended.SecurityScheme{Type: "oauth2", Description: s.Description, Flows: convertOAuthFlows(s.Flows)}
		case "openIdConnect":
			out[name] = &emended.SecurityScheme{Type: "openIdConnect", OpenIDConnectURL: s.OpenIDConnectURL, Description: s.Description}
		default:
			result.unknownSecurityScheme(name, s.Type)
		}
	}
	return out
}

func convertOAuthFlows(in *source.OAuthFlows) *emended.OAuthFlows {
	if in == nil {
		return nil
	}
	return &emended.OAuthFlows{
		Implicit:          convertOAuthFlow(in.Implicit),
		Password:          convertOAuthFlow(in.Password),
		ClientCredentials: convertOAuthFlow(in.ClientCredentials),
		AuthorizationCode: convertOAuthFlow(in.AuthorizationCode),
	}
}

func convertOAuthFlow(in *source.OAuthFlow) *emended.OAuthFlow {
	if in == nil {
		return nil
	}
	return &emended.OAuthFlow{
		AuthorizationURL: in.AuthorizationURL,
		TokenURL:         in.TokenURL,
		RefreshURL:       in.RefreshURL,
		Scopes:           in.Scopes,
	}
}
