// Package flash carries a one-shot notice across a redirect in a cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const cookieName = "flash"

// Kind colours the notice.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Message is one notice.
type Message struct {
	Kind Kind   `json:"k"`
	Text string `json:"t"`
}

// IsError reports whether m is an error notice.
func (m *Message) IsError() bool { return m != nil && m.Kind == Error }

// Set stores a notice for the next request.
func Set(w http.ResponseWriter, kind Kind, text string) {
	raw, err := json.Marshal(Message{Kind: kind, Text: text})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending notice, if any, and clears it. Undecodable
// cookies are cleared and ignored.
func Pop(w http.ResponseWriter, r *http.Request) *Message {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: cookieName, Path: "/", MaxAge: -1, HttpOnly: true})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var m Message
	if err := json.Unmarshal(raw, &m); err != nil || m.Text == "" {
		return nil
	}
	return &m
}
