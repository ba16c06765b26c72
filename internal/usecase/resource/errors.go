// Package resource provides the create, read, update and delete use cases
// shared by every dashboard collection. Payloads are validated locally
// before any request leaves the process.
package resource

import (
	"errors"

	"portfolio-dashboard/internal/domain/entity"
	"portfolio-dashboard/internal/infra/restapi"
)

// Sentinel errors for resource use cases.
var (
	// ErrNotFound indicates that the addressed item does not exist upstream.
	ErrNotFound = errors.New("resource not found")

	// ErrReadOnly is returned by mutations on a collection without a writer.
	ErrReadOnly = errors.New("resource is read-only")
)

// UserMessage picks the notice shown for err: the first local validation
// message, then the message the API returned, then the generic fallback.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var ves entity.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		return ves.First().Message
	}
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}

	var apiErr *restapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	if errors.Is(err, ErrNotFound) {
		return "The requested item no longer exists"
	}
	return restapi.GenericMessage
}
