// Package ledger orchestrates transaction creation, reads, and state
// transitions. It is the only place a transaction is born, always with
// state SEND and server-assigned timestamps.
package ledger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/PIliev24/green-street/internal/domain"
	"github.com/PIliev24/green-street/internal/validate"
)

// Cache-scope identifiers. Every mutation invalidates the exact set of
// scopes it dirties, never the whole cache.
const (
	ScopeHome         = "home"
	ScopeTransactions = "transactions"
)

// ScopeTransaction names the detail-view scope of a single transaction.
func ScopeTransaction(id string) string {
	return ScopeTransactions + ":" + id
}

// Store is the persistence collaborator. Implementations must return
// domain.ErrNotFound when a row is absent and keep List ordered by date
// descending.
type Store interface {
	Insert(ctx context.Context, in validate.ValidatedTransaction) (domain.Transaction, error)
	List(ctx context.Context) ([]domain.TransactionWithContractors, error)
	GetByID(ctx context.Context, id string) (domain.TransactionWithContractors, error)
	UpdateState(ctx context.Context, id string, state domain.TransactionState) (domain.Transaction, error)
	Summary(ctx context.Context) (domain.Summary, error)
}

// Cache caches read views under named scopes. A nil or disabled cache must
// behave as a miss on reads and a no-op on writes.
type Cache interface {
	Get(ctx context.Context, scope string, dst any) bool
	Set(ctx context.Context, scope string, value any)
	Invalidate(ctx context.Context, scopes ...string)
}

type Service struct {
	store  Store
	cache  Cache
	policy TransitionPolicy
	log    *zap.SugaredLogger
}

func NewService(store Store, cache Cache, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{store: store, cache: cache, policy: Permissive, log: log}
}

// WithPolicy swaps the transition policy. Callers are untouched; only the
// legality of state moves changes.
func (s *Service) WithPolicy(p TransitionPolicy) *Service {
	s.policy = p
	return s
}

// Create validates the input and inserts a new transaction with state SEND.
// Timestamps are server-assigned, never client-supplied. Validation errors
// come back as domain.FieldErrors; persistence failures as wrapped errors
// for the handler to surface under the general field.
func (s *Service) Create(ctx context.Context, in validate.NewTransactionInput) (domain.Transaction, error) {
	valid, errs := validate.NewTransaction(in)
	if errs != nil {
		return domain.Transaction{}, errs
	}

	tx, err := s.store.Insert(ctx, valid)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	s.invalidate(ctx, ScopeHome, ScopeTransactions)
	return tx, nil
}

// List returns all transactions joined with both contractors, most recent
// first. The result is cached under the transactions scope.
func (s *Service) List(ctx context.Context) ([]domain.TransactionWithContractors, error) {
	var cached []domain.TransactionWithContractors
	if s.cacheGet(ctx, ScopeTransactions, &cached) {
		return cached, nil
	}

	list, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	s.cacheSet(ctx, ScopeTransactions, list)
	return list, nil
}

// Get returns one transaction joined with both contractors. Absence is
// domain.ErrNotFound, distinct from a persistence failure.
func (s *Service) Get(ctx context.Context, id string) (domain.TransactionWithContractors, error) {
	var cached domain.TransactionWithContractors
	if s.cacheGet(ctx, ScopeTransaction(id), &cached) {
		return cached, nil
	}

	tx, err := s.store.GetByID(ctx, id)
	if err != nil {
		return domain.TransactionWithContractors{}, err
	}

	s.cacheSet(ctx, ScopeTransaction(id), tx)
	return tx, nil
}

// UpdateState validates the request, loads the transaction, runs the
// transition policy, and persists the new state. A transition to the
// current state is a no-op: the write is skipped and the unchanged
// transaction returned. Successful writes invalidate the home view, the
// transaction list, and the detail view for this id.
func (s *Service) UpdateState(ctx context.Context, id, state string) (domain.Transaction, error) {
	valid, errs := validate.StateTransition(id, state)
	if errs != nil {
		return domain.Transaction{}, errs
	}

	existing, err := s.store.GetByID(ctx, valid.ID)
	if err != nil {
		return domain.Transaction{}, err
	}

	if existing.State == valid.State {
		return existing.Transaction, nil
	}

	next, err := applyTransition(existing.Transaction, valid.State, s.policy)
	if err != nil {
		return domain.Transaction{}, err
	}

	updated, err := s.store.UpdateState(ctx, valid.ID, next.State)
	if err != nil {
		return domain.Transaction{}, err
	}

	s.invalidate(ctx, ScopeHome, ScopeTransactions, ScopeTransaction(valid.ID))
	return updated, nil
}

// Summary aggregates the ledger for the home dashboard, cached under the
// home scope.
func (s *Service) Summary(ctx context.Context) (domain.Summary, error) {
	var cached domain.Summary
	if s.cacheGet(ctx, ScopeHome, &cached) {
		return cached, nil
	}

	sum, err := s.store.Summary(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("ledger summary: %w", err)
	}

	s.cacheSet(ctx, ScopeHome, sum)
	return sum, nil
}

func (s *Service) cacheGet(ctx context.Context, scope string, dst any) bool {
	if s.cache == nil {
		return false
	}
	return s.cache.Get(ctx, scope, dst)
}

func (s *Service) cacheSet(ctx context.Context, scope string, value any) {
	if s.cache == nil {
		return
	}
	s.cache.Set(ctx, scope, value)
}

func (s *Service) invalidate(ctx context.Context, scopes ...string) {
	if s.cache == nil {
		return
	}
	s.cache.Invalidate(ctx, scopes...)
	s.log.Debugw("cache scopes invalidated", "scopes", scopes)
}
