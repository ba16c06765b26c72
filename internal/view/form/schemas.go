package form

import "portfolio-dashboard/internal/domain/entity"

// ProjectSchema is the project create and update form.
func ProjectSchema() Schema[entity.Project] {
	type P = entity.Project
	return Schema[P]{
		Text("title", "Title", KindText, func(p *P) *string { return &p.Title }).
			WithPlaceholder("Project title"),
		Text("thumbnail", "Thumbnail URL", KindURL, func(p *P) *string { return &p.Thumbnail }),
		Text("description", "Description", KindTextArea, func(p *P) *string { return &p.Description }),
		Text("projectRole", "Project Role", KindSelect, func(p *P) *string { return &p.ProjectRole }).
			WithOptions(projectRoleOptions()),
		List("technologiesUsed", "Technologies Used", func(p *P) *[]string { return &p.TechnologiesUsed }).
			WithSuggestions(entity.TechnologySuggestions).
			WithHelp("Separate technologies with commas"),
		List("keyFeatures", "Key Features", func(p *P) *[]string { return &p.KeyFeatures }).
			WithHelp("Separate features with commas"),
		Text("liveLink", "Live Link", KindURL, func(p *P) *string { return &p.LiveLink }),
		Text("frontendSourceCode", "Frontend Source Code", KindURL, func(p *P) *string { return &p.FrontendSourceCode }),
		Text("backendSourceCode", "Backend Source Code", KindURL, func(p *P) *string { return &p.BackendSourceCode }),
		Text("apiDocumentation", "API Documentation", KindURL, func(p *P) *string { return &p.APIDocumentation }),
		Checkbox("isFeatured", "Featured", func(p *P) *bool { return &p.IsFeatured }),
	}
}

func projectRoleOptions() []Option {
	labels := map[string]string{
		entity.RoleFrontend:  "Frontend",
		entity.RoleBackend:   "Backend",
		entity.RoleFullstack: "Full Stack",
		entity.RoleUIUX:      "UI/UX",
	}
	opts := make([]Option, 0, len(entity.ProjectRoles))
	for _, r := range entity.ProjectRoles {
		opts = append(opts, Option{Value: r, Label: labels[r]})
	}
	return opts
}

// SkillSchema is the skill create and update form.
func SkillSchema() Schema[entity.Skill] {
	type S = entity.Skill
	return Schema[S]{
		Text("name", "Skill Name", KindText, func(s *S) *string { return &s.Name }),
		Text("icon", "Icon URL", KindURL, func(s *S) *string { return &s.Icon }),
		Text("category", "Category", KindSelect, func(s *S) *string { return &s.Category }).
			WithOptions(Options(entity.SkillCategories...)),
		Text("description", "Description", KindTextArea, func(s *S) *string { return &s.Description }),
	}
}

// BlogSchema is the blog create form.
func BlogSchema() Schema[entity.Blog] {
	type B = entity.Blog
	return Schema[B]{
		Text("title", "Title", KindText, func(b *B) *string { return &b.Title }),
		Text("thumbnail", "Thumbnail URL", KindURL, func(b *B) *string { return &b.Thumbnail }),
		Text("category", "Category", KindText, func(b *B) *string { return &b.Category }),
		Text("authorName", "Author Name", KindText, func(b *B) *string { return &b.AuthorName }),
		Text("introduction", "Introduction", KindTextArea, func(b *B) *string { return &b.Introduction }),
		Text("mainContent", "Content", KindRichText, func(b *B) *string { return &b.MainContent }),
		List("tags", "Tags", func(b *B) *[]string { return &b.Tags }).
			WithHelp("Separate tags with commas"),
	}
}

// LoginSchema is the sign-in form.
func LoginSchema() Schema[entity.Credentials] {
	type C = entity.Credentials
	return Schema[C]{
		Text("email", "Email", KindEmail, func(c *C) *string { return &c.Email }).
			WithPlaceholder("admin@example.com"),
		Text("password", "Password", KindPassword, func(c *C) *string { return &c.Password }),
	}
}
