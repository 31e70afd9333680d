package source

// Document3 is an OpenAPI 3.0 or 3.1 document. The dialect (3.0 vs 3.1) is
// carried alongside it by the caller (see sniff.Classification); the shape
// of this struct is shared because the envelope differs only in schema
// grammar, which is handled by the two per-dialect normalizers.
type Document3 struct {
	OpenAPI      string                `json:"openapi"`
	Info         Info                  `json:"info"`
	Servers      []Server              `json:"servers,omitempty"`
	Paths        Paths                 `json:"paths,omitempty"`
	Webhooks     map[string]*PathItem  `json:"webhooks,omitempty"` // OAS 3.1+
	Components   *Components           `json:"components,omitempty"`
	Security     []SecurityRequirement `json:"security,omitempty"`
	Tags         []Tag                 `json:"tags,omitempty"`
	ExternalDocs *ExternalDocs         `json:"externalDocs,omitempty"`
}

// Components holds the reusable object pool of an OAS 3.x document.
type Components struct {
	Schemas         map[string]*Schema         `json:"schemas,omitempty"`
	Responses       map[string]*Response       `json:"responses,omitempty"`
	Parameters      map[string]*Parameter      `json:"parameters,omitempty"`
	RequestBodies   map[string]*RequestBody    `json:"requestBodies,omitempty"`
	Headers         map[string]*Parameter      `json:"headers,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `json:"securitySchemes,omitempty"`
	PathItems       map[string]*PathItem       `json:"pathItems,omitempty"` // OAS 3.1+
}
