// Package validate coerces untrusted input into well-typed domain values.
// Failures come back as domain.FieldErrors so callers can render
// field-level messages; nothing here touches storage.
package validate

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/PIliev24/green-street/internal/domain"
	"github.com/PIliev24/green-street/internal/money"
)

// NewTransactionInput is the raw create-transaction payload. Amount is the
// user-entered major-unit decimal string; conversion to cents happens here,
// at the boundary.
type NewTransactionInput struct {
	AccountFrom string `json:"account_from"`
	AccountTo   string `json:"account_to"`
	Amount      string `json:"amount"`
}

// ValidatedTransaction is a NewTransactionInput that passed validation,
// with the amount in integer cents.
type ValidatedTransaction struct {
	AccountFrom string
	AccountTo   string
	Amount      int64
}

// ValidatedTransition is a validated state-change request.
type ValidatedTransition struct {
	ID    string
	State domain.TransactionState
}

// NewTransaction enforces identifier well-formedness on both accounts,
// positivity of the amount, and the same-account rejection. The
// same-account error is attached to account_to so the caller can render
// it on that field.
func NewTransaction(in NewTransactionInput) (ValidatedTransaction, domain.FieldErrors) {
	errs := domain.FieldErrors{}

	from := strings.TrimSpace(in.AccountFrom)
	to := strings.TrimSpace(in.AccountTo)

	if _, err := uuid.Parse(from); err != nil {
		errs.Add("account_from", "Invalid account ID")
	}
	if _, err := uuid.Parse(to); err != nil {
		errs.Add("account_to", "Invalid account ID")
	}

	amount, err := money.ParseMajor(in.Amount)
	if err != nil {
		errs.Add("amount", "Amount must be a positive number")
	}

	if from != "" && from == to && !errs.HasField("account_to") {
		errs.Add("account_to", "Cannot send money to the same person")
	}

	if !errs.Empty() {
		return ValidatedTransaction{}, errs
	}
	return ValidatedTransaction{AccountFrom: from, AccountTo: to, Amount: amount}, nil
}

// StateTransition validates a transition request: id must be a UUID and
// state one of the three known tokens.
func StateTransition(id, state string) (ValidatedTransition, domain.FieldErrors) {
	errs := domain.FieldErrors{}

	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		errs.Add("id", "Invalid transaction ID")
	}

	parsed, err := domain.ParseState(state)
	if err != nil {
		errs.Add("state", "State must be one of SEND, RECEIVED, PAYED")
	}

	if !errs.Empty() {
		return ValidatedTransition{}, errs
	}
	return ValidatedTransition{ID: id, State: parsed}, nil
}

// Contractor sanity-checks a contractor record sourced from a collaborator.
// Contractors are not created through this service, so this guards reads.
func Contractor(c domain.Contractor) domain.FieldErrors {
	errs := domain.FieldErrors{}

	if _, err := uuid.Parse(c.ID); err != nil {
		errs.Add("id", "Invalid contractor ID")
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		errs.Add("name", "Name is required")
	} else if len(name) > 100 {
		errs.Add("name", "Name too long")
	}

	if u, err := url.Parse(c.Image); err != nil || u.Scheme == "" || u.Host == "" {
		errs.Add("image", "Must be a valid URL")
	}

	if !errs.Empty() {
		return errs
	}
	return nil
}

// Login checks that both credentials are present.
func Login(username, password string) domain.FieldErrors {
	errs := domain.FieldErrors{}
	if strings.TrimSpace(username) == "" {
		errs.Add("username", "Username is required")
	}
	if password == "" {
		errs.Add("password", "Password is required")
	}
	if !errs.Empty() {
		return errs
	}
	return nil
}
