// Package csp builds Content-Security-Policy header values.
package csp

import (
	"strings"
)

// directiveOrder fixes the output order so the header is stable.
var directiveOrder = []string{
	"default-src",
	"script-src",
	"style-src",
	"img-src",
	"font-src",
	"connect-src",
	"frame-ancestors",
	"form-action",
	"base-uri",
	"object-src",
}

// Builder assembles a policy. It is not safe for concurrent use; build
// the header once at startup.
type Builder struct {
	directives map[string][]string
	reportOnly bool
}

// NewBuilder returns an empty policy.
func NewBuilder() *Builder {
	return &Builder{directives: make(map[string][]string)}
}

// Directive sets the sources of one directive, replacing earlier values.
// Unknown directive names are ignored by Build.
func (b *Builder) Directive(name string, sources ...string) *Builder {
	b.directives[name] = sources
	return b
}

func (b *Builder) DefaultSrc(sources ...string) *Builder { return b.Directive("default-src", sources...) }
func (b *Builder) ScriptSrc(sources ...string) *Builder { return b.Directive("script-src", sources...) }
func (b *Builder) StyleSrc(sources ...string) *Builder { return b.Directive("style-src", sources...) }
func (b *Builder) ImgSrc(sources ...string) *Builder { return b.Directive("img-src", sources...) }
func (b *Builder) FontSrc(sources ...string) *Builder { return b.Directive("font-src", sources...) }
func (b *Builder) ConnectSrc(sources ...string) *Builder { return b.Directive("connect-src", sources...) }
func (b *Builder) FormAction(sources ...string) *Builder { return b.Directive("form-action", sources...) }
func (b *Builder) BaseURI(sources ...string) *Builder { return b.Directive("base-uri", sources...) }
func (b *Builder) ObjectSrc(sources ...string) *Builder { return b.Directive("object-src", sources...) }

func (b *Builder) FrameAncestors(sources ...string) *Builder {
	return b.Directive("frame-ancestors", sources...)
}

// ReportOnly switches the header name to the report-only variant.
func (b *Builder) ReportOnly(enabled bool) *Builder {
	b.reportOnly = enabled
	return b
}

// Build renders the policy, e.g. "default-src 'self'; img-src 'self' https:".
func (b *Builder) Build() string {
	parts := make([]string, 0, len(b.directives))
	for _, name := range directiveOrder {
		if sources := b.directives[name]; len(sources) > 0 {
			parts = append(parts, name+" "+strings.Join(sources, " "))
		}
	}
	return strings.Join(parts, "; ")
}

// HeaderName returns the header the policy belongs in.
func (b *Builder) HeaderName() string {
	if b.reportOnly {
		return "Content-Security-Policy-Report-Only"
	}
	return "Content-Security-Policy"
}

// DashboardPolicy allows same-origin scripts and styles and remote https
// images, which thumbnails and skill icons need. Forms may only post back
// to the dashboard and the pages cannot be framed.
func DashboardPolicy() *Builder {
	return NewBuilder().
		DefaultSrc("'self'").
		ScriptSrc("'self'").
		StyleSrc("'self'").
		ImgSrc("'self'", "https:", "data:").
		FontSrc("'self'", "data:").
		ConnectSrc("'self'").
		FrameAncestors("'none'").
		FormAction("'self'").
		BaseURI("'self'").
		ObjectSrc("'none'")
}
