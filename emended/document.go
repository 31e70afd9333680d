package emended

// Document is the emended document produced by convert and consumed by
// downgrade (§3). Once produced, it is immutable; downgrade always starts a
// fresh tree.
type Document struct {
	OpenAPI      string                `json:"openapi"` // "3.1.x"
	Info         *Info                 `json:"info"`
	Servers      []Server              `json:"servers,omitempty"`
	Components   Components            `json:"components"` // always present, even if every map inside is empty
	Paths        map[string]*Path      `json:"paths,omitempty"`
	Webhooks     map[string]*Path      `json:"webhooks,omitempty"`
	Security     []SecurityRequirement `json:"security,omitempty"`
	Tags         []Tag                 `json:"tags,omitempty"`
	ExternalDocs *ExternalDocs         `json:"externalDocs,omitempty"`

	// Emended is the x-samchon-emended marker: true once a document has
	// passed through convert. Sniffing checks this alongside OpenAPI.
	Emended bool `json:"x-samchon-emended,omitempty"`
}

// Components is the reusable object pool of an emended document.
type Components struct {
	Schemas         map[string]*Schema         `json:"schemas,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `json:"securitySchemes,omitempty"`
}

// Path carries up to eight Operation slots keyed by method. Unlike the
// source grammars, Path has no Parameters field (invariant 5): path-level
// parameters are merged into each Operation during upgrade.
type Path struct {
	Summary     string   `json:"summary,omitempty"`
	Description string   `json:"description,omitempty"`
	Servers     []Server `json:"servers,omitempty"`

	Get     *Operation `json:"get,omitempty"`
	Post    *Operation `json:"post,omitempty"`
	Put     *Operation `json:"put,omitempty"`
	Delete  *Operation `json:"delete,omitempty"`
	Options *Operation `json:"options,omitempty"`
	Head    *Operation `json:"head,omitempty"`
	Patch   *Operation `json:"patch,omitempty"`
	Trace   *Operation `json:"trace,omitempty"`
}

// ByMethod returns the operation for a lowercase HTTP method, or nil.
func (p *Path) ByMethod(method string) *Operation {
	if p == nil {
		return nil
	}
	switch method {
	case "get":
		return p.Get
	case "post":
		return p.Post
	case "put":
		return p.Put
	case "delete":
		return p.Delete
	case "options":
		return p.Options
	case "head":
		return p.Head
	case "patch":
		return p.Patch
	case "trace":
		return p.Trace
	default:
		return nil
	}
}

// SetMethod assigns op to the named method's slot. Used by the upgrader
// when building a Path one operation at a time.
func (p *Path) SetMethod(method string, op *Operation) {
	switch method {
	case "get":
		p.Get = op
	case "post":
		p.Post = op
	case "put":
		p.Put = op
	case "delete":
		p.Delete = op
	case "options":
		p.Options = op
	case "head":
		p.Head = op
	case "patch":
		p.Patch = op
	case "trace":
		p.Trace = op
	}
}

// Methods lists the eight method slots in a fixed, stable order.
var Methods = []string{"get", "post", "put", "delete", "options", "head", "patch", "trace"}
