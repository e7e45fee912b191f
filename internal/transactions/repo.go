package transactions

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PIliev24/green-street/internal/domain"
	"github.com/PIliev24/green-street/internal/validate"
)

// Repo implements ledger.Store over Postgres. Every read joins both
// contractor rows; timestamps are assigned by the database.
type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

const joinedSelect = `
SELECT t.id::text, t.date::text, t.account_from::text, t.account_to::text,
       t.amount, t.state, t.created_at::text,
       cf.id::text, cf.name, cf.image, cf.created_at::text,
       ct.id::text, ct.name, ct.image, ct.created_at::text
FROM transactions t
JOIN contractors cf ON cf.id = t.account_from
JOIN contractors ct ON ct.id = t.account_to
`

func (r *Repo) Insert(ctx context.Context, in validate.ValidatedTransaction) (domain.Transaction, error) {
	var t domain.Transaction
	err := r.Pool.QueryRow(ctx, `
INSERT INTO transactions (account_from, account_to, amount, state)
VALUES ($1::uuid, $2::uuid, $3, 'SEND')
RETURNING id::text, date::text, account_from::text, account_to::text, amount, state, created_at::text
`, in.AccountFrom, in.AccountTo, in.Amount).
		Scan(&t.ID, &t.Date, &t.AccountFrom, &t.AccountTo, &t.Amount, &t.State, &t.CreatedAt)
	if err != nil {
		return domain.Transaction{}, err
	}
	return t, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.TransactionWithContractors, error) {
	rows, err := r.Pool.Query(ctx, joinedSelect+`ORDER BY t.date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.TransactionWithContractors{}
	for rows.Next() {
		tx, err := scanJoined(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

func (r *Repo) GetByID(ctx context.Context, id string) (domain.TransactionWithContractors, error) {
	row := r.Pool.QueryRow(ctx, joinedSelect+`WHERE t.id = $1::uuid`, id)
	tx, err := scanJoined(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TransactionWithContractors{}, domain.ErrNotFound
		}
		return domain.TransactionWithContractors{}, err
	}
	return tx, nil
}

func (r *Repo) UpdateState(ctx context.Context, id string, state domain.TransactionState) (domain.Transaction, error) {
	var t domain.Transaction
	err := r.Pool.QueryRow(ctx, `
UPDATE transactions SET state = $2 WHERE id = $1::uuid
RETURNING id::text, date::text, account_from::text, account_to::text, amount, state, created_at::text
`, id, string(state)).
		Scan(&t.ID, &t.Date, &t.AccountFrom, &t.AccountTo, &t.Amount, &t.State, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Transaction{}, domain.ErrNotFound
		}
		return domain.Transaction{}, err
	}
	return t, nil
}

// Summary aggregates counts and amounts per state for the home view.
func (r *Repo) Summary(ctx context.Context) (domain.Summary, error) {
	rows, err := r.Pool.Query(ctx, `
SELECT state, COUNT(*)::bigint, COALESCE(SUM(amount), 0)::bigint
FROM transactions
GROUP BY state
`)
	if err != nil {
		return domain.Summary{}, err
	}
	defer rows.Close()

	sum := domain.Summary{
		ByState: map[string]int64{},
		Amounts: map[string]int64{},
	}
	for rows.Next() {
		var state string
		var count, amount int64
		if err := rows.Scan(&state, &count, &amount); err != nil {
			return domain.Summary{}, err
		}
		sum.ByState[state] = count
		sum.Amounts[state] = amount
		sum.Count += count
		sum.Total += amount
	}
	if err := rows.Err(); err != nil {
		return domain.Summary{}, err
	}
	return sum, nil
}

func scanJoined(row pgx.Row) (domain.TransactionWithContractors, error) {
	var tx domain.TransactionWithContractors
	err := row.Scan(
		&tx.ID, &tx.Date, &tx.AccountFrom, &tx.AccountTo, &tx.Amount, &tx.State, &tx.CreatedAt,
		&tx.ContractorFrom.ID, &tx.ContractorFrom.Name, &tx.ContractorFrom.Image, &tx.ContractorFrom.CreatedAt,
		&tx.ContractorTo.ID, &tx.ContractorTo.Name, &tx.ContractorTo.Image, &tx.ContractorTo.CreatedAt,
	)
	if err != nil {
		return domain.TransactionWithContractors{}, fmt.Errorf("scan transaction: %w", err)
	}
	return tx, nil
}
