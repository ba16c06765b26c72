// Package form binds entity fields to HTML form inputs. A Schema decodes
// submitted values into an entity and pre-fills inputs from one, so a
// pre-filled form submitted unchanged yields an equal entity.
package form

import (
	"net/url"
	"strconv"

	"portfolio-dashboard/internal/domain/entity"
)

// Kind selects the input widget.
type Kind string

const (
	KindText     Kind = "text"
	KindTextArea Kind = "textarea"
	KindURL      Kind = "url"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
	KindSelect   Kind = "select"
	KindCheckbox Kind = "checkbox"
	// KindList is comma separated text bound to a []string.
	KindList Kind = "list"
	// KindRichText is HTML produced by the editor.
	KindRichText Kind = "richtext"
)

// Option is one choice of a select input.
type Option struct {
	Value string
	Label string
}

// Options builds select options whose labels equal their values.
func Options(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: v}
	}
	return out
}

// Spec describes one input bound to a field of T.
type Spec[T any] struct {
	Name        string // wire name, matches entity validation fields
	Label       string
	Kind        Kind
	Placeholder string
	Help        string
	Options     []Option
	Suggestions []string

	get func(*T) string
	set func(*T, string)
}

// Text binds a string field.
func Text[T any](name, label string, kind Kind, field func(*T) *string) Spec[T] {
	return Spec[T]{
		Name:  name,
		Label: label,
		Kind:  kind,
		get:   func(t *T) string { return *field(t) },
		set:   func(t *T, v string) { *field(t) = v },
	}
}

// List binds a []string field to comma separated text.
func List[T any](name, label string, field func(*T) *[]string) Spec[T] {
	return Spec[T]{
		Name:  name,
		Label: label,
		Kind:  KindList,
		get:   func(t *T) string { return entity.JoinList(*field(t)) },
		set:   func(t *T, v string) { *field(t) = entity.SplitList(v) },
	}
}

// Checkbox binds a bool field. An unchecked box submits nothing.
func Checkbox[T any](name, label string, field func(*T) *bool) Spec[T] {
	return Spec[T]{
		Name:  name,
		Label: label,
		Kind:  KindCheckbox,
		get: func(t *T) string {
			if *field(t) {
				return "true"
			}
			return ""
		},
		set: func(t *T, v string) {
			b, _ := strconv.ParseBool(v)
			*field(t) = b || v == "on"
		},
	}
}

// WithOptions turns the spec into a select.
func (s Spec[T]) WithOptions(opts []Option) Spec[T] {
	s.Kind = KindSelect
	s.Options = opts
	return s
}

// WithSuggestions attaches datalist suggestions.
func (s Spec[T]) WithSuggestions(values []string) Spec[T] {
	s.Suggestions = values
	return s
}

// WithPlaceholder sets the input placeholder.
func (s Spec[T]) WithPlaceholder(p string) Spec[T] {
	s.Placeholder = p
	return s
}

// WithHelp sets the hint shown below the input.
func (s Spec[T]) WithHelp(h string) Spec[T] {
	s.Help = h
	return s
}

// Schema is the ordered input list of one entity form.
type Schema[T any] []Spec[T]

// Decode builds a T from submitted values. Fields not in the schema stay
// zero.
func (s Schema[T]) Decode(values url.Values) *T {
	t := new(T)
	for _, f := range s {
		f.set(t, values.Get(f.Name))
	}
	return t
}

// Encode renders t as the values its inputs would submit.
func (s Schema[T]) Encode(t *T) url.Values {
	values := url.Values{}
	if t == nil {
		return values
	}
	for _, f := range s {
		if v := f.get(t); v != "" {
			values.Set(f.Name, v)
		}
	}
	return values
}

// Field is one rendered input.
type Field struct {
	Name        string
	Label       string
	Kind        Kind
	Placeholder string
	Help        string
	Options     []Option
	Suggestions []string
	Value       string
	Error       string
}

// Checked reports whether a checkbox input is ticked.
func (f Field) Checked() bool {
	b, _ := strconv.ParseBool(f.Value)
	return b || f.Value == "on"
}

// Selected reports whether opt is the current select value.
func (f Field) Selected(opt Option) bool { return f.Value == opt.Value }

// Fields renders the inputs with values and per-field errors.
func (s Schema[T]) Fields(values url.Values, errs map[string]string) []Field {
	out := make([]Field, 0, len(s))
	for _, f := range s {
		out = append(out, Field{
			Name:        f.Name,
			Label:       f.Label,
			Kind:        f.Kind,
			Placeholder: f.Placeholder,
			Help:        f.Help,
			Options:     f.Options,
			Suggestions: f.Suggestions,
			Value:       values.Get(f.Name),
			Error:       errs[f.Name],
		})
	}
	return out
}
