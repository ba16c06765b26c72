package entity

// Skill categories. Language and tools were offered by the update form only,
// but the API accepts them, so both forms use the full set.
const (
	SkillFrontend = "frontend"
	SkillBackend  = "backend"
	SkillOthers   = "others"
	SkillLanguage = "language"
	SkillTools    = "tools"
)

// SkillCategories lists the accepted values of Skill.Category in display order.
var SkillCategories = []string{SkillFrontend, SkillBackend, SkillOthers, SkillLanguage, SkillTools}

// Skill is a technology the portfolio owner lists as a competence.
type Skill struct {
	ID          string `json:"_id,omitempty" validate:"-"`
	Icon        string `json:"icon" validate:"weburl"`
	Name        string `json:"name" validate:"min=3,max=25"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"oneof=frontend backend others language tools"`
}

var skillMessages = fieldMessages{
	"icon.weburl":    "Icon must be a valid URL",
	"name.min":       "Skill name is too short: must be at least 3 characters long",
	"name.max":       "Skill name is too long: must be no longer than 25 characters",
	"category.oneof": "Please select a category",
}

// Validate checks the skill against the form schema.
func (s *Skill) Validate() error {
	return validateStruct(s, skillMessages)
}

// Key returns the identifier used in routes.
func (s *Skill) Key() string { return s.ID }
