package screen

import (
	"cmp"
	"strings"
	"time"

	"portfolio-dashboard/internal/domain/entity"
	"portfolio-dashboard/internal/usecase/resource"
	"portfolio-dashboard/internal/utils/text"
	"portfolio-dashboard/internal/view/detail"
	"portfolio-dashboard/internal/view/form"
	"portfolio-dashboard/internal/view/list"
)

const (
	techShown     = 3
	messageLength = 60
	dateLayout    = "Jan 2, 2006"
)

// Projects configures the project screens.
func Projects(svc *resource.Service[entity.Project]) *Resource[entity.Project] {
	type P = entity.Project
	res := &Resource[P]{
		Key:       "projects",
		Noun:      "project",
		Title:     "Projects",
		Service:   svc,
		ID:        (*P).Key,
		Label:     func(p *P) string { return p.Title },
		Schema:    form.ProjectSchema(),
		Updatable: true,
		Deletable: true,
		Detail:    detail.Project,
	}
	res.Table = list.Config[P]{
		Columns: []list.Column[P]{
			{Key: "title", Header: "Title", Value: func(p *P) string { return p.Title }, Sortable: true, Fixed: true},
			{Key: "role", Header: "Role", Value: func(p *P) string { return p.ProjectRole }, Sortable: true},
			{Key: "technologies", Header: "Technologies", Value: func(p *P) string { return list.Truncated(p.TechnologiesUsed, techShown) }},
			{Key: "liveLink", Header: "Live Link", Value: func(p *P) string { return list.OrNA(p.LiveLink) }},
			{
				Key:      "featured",
				Header:   "Featured",
				Value:    func(p *P) string { return list.YesNo(p.IsFeatured) },
				Compare:  func(a, b *P) int { return cmpBool(a.IsFeatured, b.IsFeatured) },
				Sortable: true,
			},
		},
		FilterKey: "title",
		ID:        (*P).Key,
		Actions: func(p *P) []list.Action {
			actions := list.RowActions(res.Base(), p.ID, res.updateSegment(), res.deleteSegment())
			return append(actions, list.CopyAction("Copy Live Link", p.LiveLink)...)
		},
	}
	return res
}

// Skills configures the skill screens.
func Skills(svc *resource.Service[entity.Skill]) *Resource[entity.Skill] {
	type S = entity.Skill
	res := &Resource[S]{
		Key:       "skills",
		Noun:      "skill",
		Title:     "Skills",
		Service:   svc,
		ID:        (*S).Key,
		Label:     func(s *S) string { return s.Name },
		Schema:    form.SkillSchema(),
		Updatable: true,
		Deletable: true,
		Detail:    detail.Skill,
	}
	res.Table = list.Config[S]{
		Columns: []list.Column[S]{
			{Key: "name", Header: "Name", Value: func(s *S) string { return s.Name }, Sortable: true, Fixed: true},
			{Key: "category", Header: "Category", Value: func(s *S) string { return s.Category }, Sortable: true},
			{Key: "description", Header: "Description", Value: func(s *S) string { return list.OrNA(text.Truncate(s.Description, messageLength)) }},
		},
		FilterKey: "name",
		ID:        (*S).Key,
		Actions: func(s *S) []list.Action {
			return list.RowActions(res.Base(), s.ID, res.updateSegment(), res.deleteSegment())
		},
	}
	return res
}

// Blogs configures the blog screens. Blogs cannot be edited.
func Blogs(svc *resource.Service[entity.Blog]) *Resource[entity.Blog] {
	type B = entity.Blog
	res := &Resource[B]{
		Key:       "blogs",
		Noun:      "blog",
		Title:     "Blogs",
		Service:   svc,
		ID:        (*B).Key,
		Label:     func(b *B) string { return b.Title },
		Schema:    form.BlogSchema(),
		Deletable: true,
		Detail:    detail.Blog,
	}
	res.Table = list.Config[B]{
		Columns: []list.Column[B]{
			{Key: "title", Header: "Title", Value: func(b *B) string { return b.Title }, Sortable: true, Fixed: true},
			{Key: "category", Header: "Category", Value: func(b *B) string { return b.Category }, Sortable: true},
			{Key: "author", Header: "Author", Value: func(b *B) string { return b.AuthorName }, Sortable: true},
			{Key: "introduction", Header: "Introduction", Value: func(b *B) string { return text.Excerpt(b.Introduction, messageLength) }},
			{
				Key:      "created",
				Header:   "Created",
				Value:    func(b *B) string { return formatDate(b.CreatedAt) },
				Compare:  func(x, y *B) int { return x.CreatedAt.Compare(y.CreatedAt) },
				Sortable: true,
			},
		},
		FilterKey: "title",
		ID:        (*B).Key,
		Actions: func(b *B) []list.Action {
			return list.RowActions(res.Base(), b.ID, res.updateSegment(), res.deleteSegment())
		},
	}
	return res
}

// Contacts configures the read-only contact screens.
func Contacts(svc *resource.Service[entity.Contact]) *Resource[entity.Contact] {
	type C = entity.Contact
	res := &Resource[C]{
		Key:     "contacts",
		Noun:    "contact",
		Title:   "Contacts",
		Service: svc,
		ID:      (*C).Key,
		Label:   func(c *C) string { return c.Name },
		Detail:  detail.Contact,
	}
	res.Table = list.Config[C]{
		Columns: []list.Column[C]{
			{Key: "name", Header: "Name", Value: func(c *C) string { return c.Name }, Sortable: true, Fixed: true},
			{Key: "email", Header: "Email", Value: func(c *C) string { return c.Email }, Sortable: true},
			{Key: "phone", Header: "Phone", Value: func(c *C) string { return list.OrNA(c.Phone) }},
			{Key: "message", Header: "Message", Value: func(c *C) string { return text.Truncate(strings.TrimSpace(c.Message), messageLength) }},
			{
				Key:      "received",
				Header:   "Received",
				Value:    func(c *C) string { return formatDate(c.CreatedAt) },
				Compare:  func(x, y *C) int { return x.CreatedAt.Compare(y.CreatedAt) },
				Sortable: true,
			},
		},
		FilterKey: "name",
		ID:        (*C).Key,
		Actions: func(c *C) []list.Action {
			return list.RowActions(res.Base(), c.ID, "", "")
		},
	}
	return res
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return list.NotAvailable
	}
	return t.Format(dateLayout)
}

func cmpBool(a, b bool) int {
	toInt := func(v bool) int {
		if v {
			return 1
		}
		return 0
	}
	return cmp.Compare(toInt(a), toInt(b))
}
