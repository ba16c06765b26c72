package form

import (
	"context"
	"errors"
	"net/url"

	"portfolio-dashboard/internal/domain/entity"
)

// Mode distinguishes an empty form from a pre-filled one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
)

// View is the form template model.
type View struct {
	Title       string
	Action      string
	SubmitLabel string
	Mode        Mode
	Fields      []Field
	Message     string
	State       State
	CSRFToken   string
}

// Failed reports whether the notice is an error.
func (v View) Failed() bool { return v.State == Failure }

// Definition is a form for T bound to its submit endpoint.
type Definition[T any] struct {
	Title       string
	Action      string
	SubmitLabel string
	Schema      Schema[T]
}

// Create renders the empty form.
func (d Definition[T]) Create() View {
	return d.view(ModeCreate, url.Values{}, nil)
}

// Update renders the form pre-filled from t.
func (d Definition[T]) Update(t *T) View {
	return d.view(ModeUpdate, d.Schema.Encode(t), nil)
}

func (d Definition[T]) view(mode Mode, values url.Values, errs map[string]string) View {
	label := d.SubmitLabel
	if label == "" {
		label = "Submit"
	}
	return View{
		Title:       d.Title,
		Action:      d.Action,
		SubmitLabel: label,
		Mode:        mode,
		Fields:      d.Schema.Fields(values, errs),
	}
}

// Outcome is the result of one submission.
type Outcome[T any] struct {
	Value *T
	View  View
}

// OK reports whether the submission succeeded.
func (o Outcome[T]) OK() bool { return o.View.State == Success }

// Submit decodes values and passes the entity to send. On failure the
// returned view keeps the submitted values and carries the notice chosen
// by message, plus per-field errors when err holds validation failures.
func (d Definition[T]) Submit(ctx context.Context, mode Mode, values url.Values, send func(context.Context, *T) (*T, error), message func(error) string, successMsg string) Outcome[T] {
	var m Machine
	_ = m.Submit()

	item := d.Schema.Decode(values)
	saved, err := send(ctx, item)
	if err != nil {
		_ = m.Fail(message(err))
		v := d.view(mode, values, fieldErrors(err))
		v.State, v.Message = m.State(), m.Message()
		return Outcome[T]{View: v}
	}

	_ = m.Succeed(successMsg)
	if saved == nil {
		saved = item
	}
	v := d.view(mode, values, nil)
	v.State, v.Message = m.State(), m.Message()
	return Outcome[T]{Value: saved, View: v}
}

func fieldErrors(err error) map[string]string {
	var ves entity.ValidationErrors
	if errors.As(err, &ves) {
		return ves.ByField()
	}
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		return map[string]string{ve.Field: ve.Message}
	}
	return nil
}
