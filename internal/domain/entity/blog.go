package entity

import "time"

// Blog is a rich-text article. MainContent holds HTML produced by the editor.
type Blog struct {
	ID           string    `json:"_id,omitempty" validate:"-"`
	Title        string    `json:"title" validate:"min=3"`
	Thumbnail    string    `json:"thumbnail" validate:"weburl"`
	Category     string    `json:"category" validate:"required"`
	AuthorName   string    `json:"authorName" validate:"required"`
	Introduction string    `json:"introduction" validate:"required"`
	MainContent  string    `json:"mainContent" validate:"min=10"`
	Tags         []string  `json:"tags,omitempty"`
	IsDeleted    bool      `json:"isDeleted,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

var blogMessages = fieldMessages{
	"title.min":             "Title must be at least 3 characters long",
	"thumbnail.weburl":      "Thumbnail must be a valid URL",
	"category.required":     "Category is required",
	"authorName.required":   "Author name is required",
	"introduction.required": "Introduction is required",
	"mainContent.min":       "Content must be at least 10 characters long",
}

// Validate checks the blog against the form schema.
func (b *Blog) Validate() error {
	return validateStruct(b, blogMessages)
}

// Key returns the identifier used in routes.
func (b *Blog) Key() string { return b.ID }
