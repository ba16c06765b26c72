package form

import (
	"errors"
	"fmt"
)

// State is a step of one form submission.
type State int

const (
	Idle State = iota
	Submitting
	Success
	Failure
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrInvalidTransition is returned for a move the machine does not allow.
var ErrInvalidTransition = errors.New("invalid form state transition")

// Machine tracks a submission: Idle → Submitting → Success | Failure,
// and Failure → Idle when the user edits the form again.
type Machine struct {
	state   State
	message string
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Message returns the notice of the last outcome.
func (m *Machine) Message() string { return m.message }

func (m *Machine) move(from, to State) error {
	if m.state != from {
		return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, m.state, to)
	}
	m.state = to
	return nil
}

// Submit starts a submission. A second Submit while one is in flight fails.
func (m *Machine) Submit() error {
	if err := m.move(Idle, Submitting); err != nil {
		return err
	}
	m.message = ""
	return nil
}

// Succeed ends the submission successfully.
func (m *Machine) Succeed(msg string) error {
	if err := m.move(Submitting, Success); err != nil {
		return err
	}
	m.message = msg
	return nil
}

// Fail ends the submission with a notice.
func (m *Machine) Fail(msg string) error {
	if err := m.move(Submitting, Failure); err != nil {
		return err
	}
	m.message = msg
	return nil
}

// Reset returns a failed form to Idle, keeping the message until the next
// Submit.
func (m *Machine) Reset() error {
	return m.move(Failure, Idle)
}
