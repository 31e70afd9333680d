package source

// Document20 is a Swagger 2.0 document.
type Document20 struct {
	Swagger             string                     `json:"swagger"`
	Info                Info                       `json:"info"`
	Host                string                     `json:"host,omitempty"`
	BasePath            string                     `json:"basePath,omitempty"`
	Schemes             []string                   `json:"schemes,omitempty"`
	Consumes            []string                   `json:"consumes,omitempty"`
	Produces            []string                   `json:"produces,omitempty"`
	Paths               Paths                      `json:"paths"`
	Definitions         map[string]*Schema         `json:"definitions,omitempty"`
	Parameters          map[string]*Parameter      `json:"parameters,omitempty"`
	Responses           map[string]*Response       `json:"responses,omitempty"`
	SecurityDefinitions map[string]*SecurityScheme `json:"securityDefinitions,omitempty"`
	Security            []SecurityRequirement      `json:"security,omitempty"`
	Tags                []Tag                      `json:"tags,omitempty"`
	ExternalDocs        *ExternalDocs              `json:"externalDocs,omitempty"`
}
