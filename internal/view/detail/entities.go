package detail

import (
	"html/template"
	"time"

	"portfolio-dashboard/internal/domain/entity"
	"portfolio-dashboard/internal/utils/text"
)

// Project renders a project.
func Project(p *entity.Project, now time.Time) View {
	b := &builder{now: now}
	featured := "No"
	if p.IsFeatured {
		featured = "Yes"
	}
	b.text("Description", p.Description).
		badge("Role", p.ProjectRole).
		list("Technologies Used", p.TechnologiesUsed).
		list("Key Features", p.KeyFeatures).
		optional("Live Link", KindLink, p.LiveLink).
		optional("Frontend Source Code", KindLink, p.FrontendSourceCode).
		optional("Backend Source Code", KindLink, p.BackendSourceCode).
		optional("API Documentation", KindLink, p.APIDocumentation).
		text("Featured", featured)

	return View{
		Title:    p.Title,
		Image:    p.Thumbnail,
		ImageAlt: p.Title,
		Fields:   b.fields,
		Back:     "/projects",
		EditHref: "/projects/update-project/" + p.ID,
	}
}

// Skill renders a skill.
func Skill(s *entity.Skill, now time.Time) View {
	b := &builder{now: now}
	b.badge("Category", s.Category).
		optional("Description", KindText, s.Description)

	return View{
		Title:    s.Name,
		Image:    s.Icon,
		ImageAlt: s.Name,
		Fields:   b.fields,
		Back:     "/skills",
		EditHref: "/skills/update-skill/" + s.ID,
	}
}

// Blog renders a blog post. The main content is sanitized before it is
// emitted as HTML; if it cannot be parsed it is shown as plain text.
func Blog(bl *entity.Blog, now time.Time) View {
	b := &builder{now: now}
	b.badge("Category", bl.Category).
		text("Author", bl.AuthorName).
		text("Introduction", bl.Introduction)

	if content, err := text.SanitizeHTML(bl.MainContent); err == nil {
		b.html("Content", content)
	} else {
		b.html("Content", template.HTML(template.HTMLEscapeString(bl.MainContent)))
	}

	b.list("Tags", bl.Tags).
		time("Created", bl.CreatedAt).
		time("Updated", bl.UpdatedAt)

	return View{
		Title:    bl.Title,
		Subtitle: "By " + bl.AuthorName,
		Image:    bl.Thumbnail,
		ImageAlt: bl.Title,
		Fields:   b.fields,
		Back:     "/blogs",
	}
}

// Contact renders a contact submission. Contacts have no image.
func Contact(c *entity.Contact, now time.Time) View {
	b := &builder{now: now}
	b.optional("Email", KindEmail, c.Email).
		optional("Phone", KindPhone, c.Phone).
		text("Message", c.Message).
		time("Received", c.CreatedAt)

	return View{
		Title:  c.Name,
		Fields: b.fields,
		Back:   "/contacts",
	}
}
