package ledger

import (
	"fmt"

	"github.com/PIliev24/green-street/internal/domain"
)

// TransitionPolicy decides whether a transaction may move from current to
// target. Both arguments are already-known state tokens; token validity is
// checked before the policy runs.
type TransitionPolicy func(current, target domain.TransactionState) error

// Permissive accepts any known state as a target regardless of the current
// state, including moving backwards (PAYED to SEND). This matches the
// behavior users rely on for manual corrections and is the default.
func Permissive(current, target domain.TransactionState) error {
	return nil
}

// Sequential only allows the forward order SEND -> RECEIVED -> PAYED.
// Re-asserting the current state is allowed as a no-op. Swap this in at
// construction time for a stricter lifecycle.
func Sequential(current, target domain.TransactionState) error {
	if current == target {
		return nil
	}
	ok := (current == domain.StateSend && target == domain.StateReceived) ||
		(current == domain.StateReceived && target == domain.StatePayed)
	if !ok {
		return fmt.Errorf("%w: cannot move from %s to %s", domain.ErrInvalidState, current, target)
	}
	return nil
}

// applyTransition returns a copy of tx with the state replaced; every other
// field is untouched.
func applyTransition(tx domain.Transaction, target domain.TransactionState, policy TransitionPolicy) (domain.Transaction, error) {
	if !target.Valid() {
		return domain.Transaction{}, domain.ErrInvalidState
	}
	if err := policy(tx.State, target); err != nil {
		return domain.Transaction{}, err
	}
	tx.State = target
	return tx, nil
}
