package domain

import (
	"errors"
	"fmt"
	"time"
)

type State string

const (
	StateIdle             State = "IDLE"
	StateOrderCreated     State = "ORDER_CREATED"
	StatePaymentCreated   State = "PAYMENT_CREATED"
	StatePaymentProcessed State = "PAYMENT_PROCESSED"
	StateOrderPaid        State = "ORDER_PAID"
	StatePaymentFailed    State = "PAYMENT_FAILED"
)

// transitions lists the legal next states. Every non-terminal state may
// fall to PAYMENT_FAILED.
var transitions = map[State][]State{
	StateIdle:             {StateOrderCreated, StatePaymentFailed},
	StateOrderCreated:     {StatePaymentCreated, StatePaymentFailed},
	StatePaymentCreated:   {StatePaymentProcessed, StatePaymentFailed},
	StatePaymentProcessed: {StateOrderPaid, StatePaymentFailed},
}

var ErrIllegalTransition = errors.New("illegal checkout transition")

func (s State) Terminal() bool {
	return s == StateOrderPaid || s == StatePaymentFailed
}

func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Transition struct {
	From State
	To   State
	At   time.Time
}

// Attempt is one run of the checkout state machine. It is not safe for
// concurrent use; a single attempt runs its steps strictly in sequence.
type Attempt struct {
	ID         string
	CustomerID string
	State      State
	OrderID    string
	PaymentID  string
	History    []Transition

	now func() time.Time
}

func NewAttempt(id, customerID string) *Attempt {
	return &Attempt{
		ID:         id,
		CustomerID: customerID,
		State:      StateIdle,
		now:        time.Now,
	}
}

func (a *Attempt) Advance(to State) error {
	if !CanTransition(a.State, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, a.State, to)
	}
	a.History = append(a.History, Transition{From: a.State, To: to, At: a.now()})
	a.State = to
	return nil
}

// Path returns the sequence of states visited, starting with IDLE.
func (a *Attempt) Path() []State {
	out := []State{StateIdle}
	for _, t := range a.History {
		out = append(out, t.To)
	}
	return out
}
