package entity

// Project roles offered on the project form.
const (
	RoleFrontend  = "frontend"
	RoleBackend   = "backend"
	RoleFullstack = "fullstack"
	RoleUIUX      = "ui-ux"
)

// ProjectRoles lists the accepted values of Project.ProjectRole in display order.
var ProjectRoles = []string{RoleFrontend, RoleBackend, RoleFullstack, RoleUIUX}

// TechnologySuggestions seeds the technologies input on the project form.
var TechnologySuggestions = []string{
	"JavaScript", "TypeScript", "React", "Next.js", "Node.js",
	"Express", "MongoDB", "PostgreSQL", "Tailwind CSS", "Shadcn/ui",
}

// Project is a portfolio showcase entry.
type Project struct {
	ID                 string   `json:"_id,omitempty" validate:"-"`
	Title              string   `json:"title" validate:"min=3"`
	Thumbnail          string   `json:"thumbnail" validate:"weburl"`
	Description        string   `json:"description" validate:"min=10"`
	ProjectRole        string   `json:"projectRole" validate:"oneof=frontend backend fullstack ui-ux"`
	TechnologiesUsed   []string `json:"technologiesUsed" validate:"min=1"`
	KeyFeatures        []string `json:"keyFeatures" validate:"min=1"`
	LiveLink           string   `json:"liveLink" validate:"weburl"`
	FrontendSourceCode string   `json:"frontendSourceCode" validate:"omitempty,weburl"`
	BackendSourceCode  string   `json:"backendSourceCode" validate:"omitempty,weburl"`
	APIDocumentation   string   `json:"apiDocumentation" validate:"omitempty,weburl"`
	IsFeatured         bool     `json:"isFeatured"`
}

var projectMessages = fieldMessages{
	"title.min":                 "Title must be at least 3 characters long",
	"thumbnail.weburl":          "Thumbnail must be a valid URL",
	"description.min":           "Description should be more detailed",
	"projectRole.oneof":         "Please select a project role",
	"technologiesUsed.min":      "Add at least one technology",
	"keyFeatures.min":           "Add at least one key feature",
	"liveLink.weburl":           "Live link must be a valid URL",
	"frontendSourceCode.weburl": "Frontend source code must be a valid URL",
	"backendSourceCode.weburl":  "Backend source code must be a valid URL",
	"apiDocumentation.weburl":   "API documentation must be a valid URL",
}

// Validate checks the project against the form schema.
// It returns ValidationErrors when one or more fields fail.
func (p *Project) Validate() error {
	return validateStruct(p, projectMessages)
}

// Key returns the identifier used in routes.
func (p *Project) Key() string { return p.ID }
