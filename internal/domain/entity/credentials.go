package entity

// Credentials are the values submitted on the login form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=4"`
}

var credentialMessages = fieldMessages{
	"email.required": "Email is required",
	"email.email":    "Invalid email address",
	"password.min":   "Password must be at least 4 characters long",
}

// Validate checks the login form values.
func (c *Credentials) Validate() error {
	return validateStruct(c, credentialMessages)
}
