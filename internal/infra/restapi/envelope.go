package restapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

// envelope is the response shape shared by every endpoint of the content API.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

type errorItem struct {
	Message string `json:"message"`
}

// message returns the most specific user-facing text of a failed envelope:
// error[0].message, then message, then GenericMessage.
func (e *envelope) message() string {
	if len(e.Error) > 0 {
		var items []errorItem
		if err := json.Unmarshal(e.Error, &items); err == nil {
			if len(items) > 0 && strings.TrimSpace(items[0].Message) != "" {
				return items[0].Message
			}
		} else {
			// Some handlers send a bare string instead of the list.
			var s string
			if err := json.Unmarshal(e.Error, &s); err == nil && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return GenericMessage
}

// toError converts a failed envelope into an *Error.
func (e *envelope) toError(status int) *Error {
	kind := KindRemote
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindUnauthenticated
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = KindValidation
	}
	return &Error{Kind: kind, Message: e.message(), Status: status}
}
