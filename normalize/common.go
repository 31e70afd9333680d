package normalize

import (
	"github.com/oas-emend/emendapi/emended"
	"github.com/oas-emend/emendapi/source"
)

func convertInfo(in *source.Info) *emended.Info {
	if in == nil {
		return nil
	}
	out := &emended.Info{
		Title:          in.Title,
		Description:    in.Description,
		TermsOfService: in.TermsOfService,
		Version:        in.Version,
		Summary:        in.Summary,
	}
	if in.Contact != nil {
		out.Contact = &emended.Contact{Name: in.Contact.Name, URL: in.Contact.URL, Email: in.Contact.Email}
	}
	if in.License != nil {
		out.License = &emended.License{Name: in.License.Name, URL: in.License.URL, Identifier: in.License.Identifier}
	}
	return out
}

func convertExternalDocs(in *source.ExternalDocs) *emended.ExternalDocs {
	if in == nil {
		return nil
	}
	return &emended.ExternalDocs{Description: in.Description, URL: in.URL}
}

func convertTags(in []source.Tag) []emended.Tag {
	if len(in) == 0 {
		return nil
	}
	out := make([]emended.Tag, len(in))
	for i, t := range in {
		out[i] = emended.Tag{
			Name:         t.Name,
			Description:  t.Description,
			ExternalDocs: convertExternalDocs(t.ExternalDocs),
		}
	}
	return out
}

func convertServers(in []source.Server) []emended.Server {
	if len(in) == 0 {
		return nil
	}
	out := make([]emended.Server, len(in))
	for i, s := range in {
		out[i] = convertServer(s)
	}
	return out
}

func convertServer(s source.Server) emended.Server {
	out := emended.Server{URL: s.URL, Description: s.Description}
	if len(s.Variables) > 0 {
		out.Variables = make(map[string]emended.ServerVariable, len(s.Variables))
		for name, v := range s.Variables {
			out.Variables[name] = emended.ServerVariable{Enum: v.Enum, Default: v.Default, Description: v.Description}
		}
	}
	return out
}

func convertSecurityRequirements(in []source.SecurityRequirement) []emended.SecurityRequirement {
	if len(in) == 0 {
		return nil
	}
	out := make([]emended.SecurityRequirement, len(in))
	for i, req := range in {
		out[i] = emended.SecurityRequirement(req)
	}
	return out
}
