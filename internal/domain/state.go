package domain

import "strings"

// TransactionState is the lifecycle state of a transaction.
type TransactionState string

const (
	StateSend     TransactionState = "SEND"
	StateReceived TransactionState = "RECEIVED"
	StatePayed    TransactionState = "PAYED"
)

// States lists every known state in lifecycle order.
var States = []TransactionState{StateSend, StateReceived, StatePayed}

func (s TransactionState) Valid() bool {
	switch s {
	case StateSend, StateReceived, StatePayed:
		return true
	}
	return false
}

func (s TransactionState) String() string { return string(s) }

// ParseState normalizes a raw token into a TransactionState.
// Unknown tokens return ErrInvalidState.
func ParseState(raw string) (TransactionState, error) {
	s := TransactionState(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", ErrInvalidState
	}
	return s, nil
}
