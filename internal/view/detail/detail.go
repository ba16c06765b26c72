// Package detail renders a single entity as labelled read-only fields.
package detail

import (
	"html/template"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// NoImage is shown in place of a missing thumbnail.
const NoImage = "No image available"

// Kind selects how a field renders.
type Kind string

const (
	KindText  Kind = "text"
	KindLink  Kind = "link"
	KindEmail Kind = "email"
	KindPhone Kind = "phone"
	KindBadge Kind = "badge"
	KindList  Kind = "list"
	KindTime  Kind = "time"
	KindHTML  Kind = "html"
)

// Field is one labelled value.
type Field struct {
	Label string
	Kind  Kind
	Value string
	Items []string
	HTML  template.HTML
	// Title is the exact value for a tooltip, set on relative times.
	Title string
}

// View is the detail template model.
type View struct {
	Title    string
	Subtitle string
	Image    string
	ImageAlt string
	Fields   []Field
	Back     string
	EditHref string
}

// HasImage reports whether a thumbnail can be shown.
func (v View) HasImage() bool { return v.Image != "" }

// NoImageText is the fallback caption.
func (v View) NoImageText() string { return NoImage }

// builder accumulates fields, dropping empty optional ones.
type builder struct {
	now    time.Time
	fields []Field
}

func (b *builder) text(label, value string) *builder {
	b.fields = append(b.fields, Field{Label: label, Kind: KindText, Value: value})
	return b
}

func (b *builder) optional(label string, kind Kind, value string) *builder {
	if strings.TrimSpace(value) == "" {
		return b
	}
	b.fields = append(b.fields, Field{Label: label, Kind: kind, Value: value})
	return b
}

func (b *builder) badge(label, value string) *builder {
	b.fields = append(b.fields, Field{Label: label, Kind: KindBadge, Value: value})
	return b
}

func (b *builder) list(label string, items []string) *builder {
	if len(items) == 0 {
		return b
	}
	b.fields = append(b.fields, Field{Label: label, Kind: KindList, Items: items})
	return b
}

func (b *builder) time(label string, t time.Time) *builder {
	if t.IsZero() {
		return b
	}
	b.fields = append(b.fields, Field{
		Label: label,
		Kind:  KindTime,
		Value: Relative(t, b.now),
		Title: t.Format(time.RFC1123),
	})
	return b
}

func (b *builder) html(label string, h template.HTML) *builder {
	b.fields = append(b.fields, Field{Label: label, Kind: KindHTML, HTML: h})
	return b
}

// Relative renders t relative to now, like "3 days ago".
func Relative(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
