package restapi

import (
	"errors"
	"fmt"
)

// GenericMessage is shown when no better message can be extracted.
const GenericMessage = "Something went wrong!"

// Kind classifies a failed upstream call.
type Kind int

const (
	// KindRemote: the API answered with success=false.
	KindRemote Kind = iota + 1
	// KindNetwork: the call did not complete, or the answer was unreadable.
	KindNetwork
	// KindUnauthenticated: no session token, or the API refused the token.
	KindUnauthenticated
	// KindNotFound: the addressed entity does not exist.
	KindNotFound
	// KindValidation: the API rejected the payload (400 or 422).
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindRemote:
		return "remote"
	case KindNetwork:
		return "network"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// ErrNoToken is the cause of a mutation attempted without a session.
var ErrNoToken = errors.New("no session token")

// Error is the single failure shape returned by every client call.
type Error struct {
	Kind    Kind
	Message string // user-facing
	Status  int    // HTTP status, 0 when no response
	Err     error  // underlying cause, for logs
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content api %s (status %d): %s: %v", e.Kind, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("content api %s (status %d): %s", e.Kind, e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == k
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: GenericMessage, Err: err}
}
