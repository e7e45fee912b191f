package transactions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PIliev24/green-street/internal/domain"
	"github.com/PIliev24/green-street/internal/ledger"
	"github.com/PIliev24/green-street/internal/validate"
)

const (
	aliceID = "11111111-1111-1111-1111-111111111111"
	bobID   = "22222222-2222-2222-2222-222222222222"
)

type memStore struct {
	rows   map[string]domain.TransactionWithContractors
	order  []string
	nextID int
}

func newMemStore() *memStore {
	return &memStore{rows: map[string]domain.TransactionWithContractors{}}
}

func (m *memStore) Insert(_ context.Context, in validate.ValidatedTransaction) (domain.Transaction, error) {
	m.nextID++
	tx := domain.Transaction{
		ID:          fmt.Sprintf("00000000-0000-0000-0000-0000000000%02d", m.nextID),
		Date:        fmt.Sprintf("2024-06-%02dT12:00:00Z", m.nextID),
		AccountFrom: in.AccountFrom,
		AccountTo:   in.AccountTo,
		Amount:      in.Amount,
		State:       domain.StateSend,
		CreatedAt:   fmt.Sprintf("2024-06-%02dT12:00:00Z", m.nextID),
	}
	joined := domain.TransactionWithContractors{
		Transaction:    tx,
		ContractorFrom: domain.Contractor{ID: in.AccountFrom, Name: "Alice"},
		ContractorTo:   domain.Contractor{ID: in.AccountTo, Name: "Bob"},
	}
	m.rows[tx.ID] = joined
	m.order = append(m.order, tx.ID)
	return tx, nil
}

func (m *memStore) List(context.Context) ([]domain.TransactionWithContractors, error) {
	out := make([]domain.TransactionWithContractors, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, m.rows[m.order[i]])
	}
	return out, nil
}

func (m *memStore) GetByID(_ context.Context, id string) (domain.TransactionWithContractors, error) {
	tx, ok := m.rows[id]
	if !ok {
		return domain.TransactionWithContractors{}, domain.ErrNotFound
	}
	return tx, nil
}

func (m *memStore) UpdateState(_ context.Context, id string, state domain.TransactionState) (domain.Transaction, error) {
	tx, ok := m.rows[id]
	if !ok {
		return domain.Transaction{}, domain.ErrNotFound
	}
	tx.State = state
	m.rows[id] = tx
	return tx.Transaction, nil
}

func (m *memStore) Summary(context.Context) (domain.Summary, error) {
	return domain.Summary{Count: int64(len(m.rows))}, nil
}

func newTestApp(store ledger.Store) *fiber.App {
	app := fiber.New()
	h := NewHandler(ledger.NewService(store, nil, nil))
	app.Get("/api/transactions", h.List)
	app.Get("/api/transactions/:id", h.Get)
	app.Post("/api/transactions", h.Create)
	app.Patch("/api/transactions/:id/state", h.UpdateState)
	app.Get("/api/summary", h.Summary)
	return app
}

type respBody struct {
	Data   json.RawMessage     `json:"data"`
	Error  *string             `json:"error"`
	Errors map[string][]string `json:"errors"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, respBody) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out respBody
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestCreateTransactionEndpoint(t *testing.T) {
	app := newTestApp(newMemStore())

	status, body := doJSON(t, app, "POST", "/api/transactions",
		fmt.Sprintf(`{"account_from":%q,"account_to":%q,"amount":"12.34"}`, aliceID, bobID))
	require.Equal(t, fiber.StatusCreated, status)

	var tx domain.Transaction
	require.NoError(t, json.Unmarshal(body.Data, &tx))
	assert.Equal(t, domain.StateSend, tx.State)
	assert.Equal(t, int64(1234), tx.Amount)
	assert.Nil(t, body.Error)
}

func TestCreateTransactionSameAccount(t *testing.T) {
	app := newTestApp(newMemStore())

	status, body := doJSON(t, app, "POST", "/api/transactions",
		fmt.Sprintf(`{"account_from":%q,"account_to":%q,"amount":"10.00"}`, aliceID, aliceID))
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Contains(t, body.Errors, "account_to")
	assert.Equal(t, "Cannot send money to the same person", body.Errors["account_to"][0])
}

func TestGetTransactionNotFound(t *testing.T) {
	app := newTestApp(newMemStore())

	status, body := doJSON(t, app, "GET", "/api/transactions/"+aliceID, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, "not found", *body.Error)
}

func TestUpdateStateEndpoint(t *testing.T) {
	store := newMemStore()
	app := newTestApp(store)

	_, created := doJSON(t, app, "POST", "/api/transactions",
		fmt.Sprintf(`{"account_from":%q,"account_to":%q,"amount":"5.00"}`, aliceID, bobID))
	var tx domain.Transaction
	require.NoError(t, json.Unmarshal(created.Data, &tx))

	status, body := doJSON(t, app, "PATCH", "/api/transactions/"+tx.ID+"/state", `{"state":"RECEIVED"}`)
	require.Equal(t, fiber.StatusOK, status)

	var updated domain.Transaction
	require.NoError(t, json.Unmarshal(body.Data, &updated))
	assert.Equal(t, domain.StateReceived, updated.State)
}

func TestUpdateStateUnknownToken(t *testing.T) {
	app := newTestApp(newMemStore())

	status, body := doJSON(t, app, "PATCH", "/api/transactions/"+aliceID+"/state", `{"state":"REFUNDED"}`)
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Contains(t, body.Errors, "state")
}

func TestListFiltersAndSorts(t *testing.T) {
	store := newMemStore()
	app := newTestApp(store)

	for i := 0; i < 3; i++ {
		status, _ := doJSON(t, app, "POST", "/api/transactions",
			fmt.Sprintf(`{"account_from":%q,"account_to":%q,"amount":"%d.00"}`, aliceID, bobID, 10+i))
		require.Equal(t, fiber.StatusCreated, status)
	}

	status, body := doJSON(t, app, "GET", "/api/transactions", "")
	require.Equal(t, fiber.StatusOK, status)
	var list []domain.TransactionWithContractors
	require.NoError(t, json.Unmarshal(body.Data, &list))
	require.Len(t, list, 3)
	assert.Equal(t, "00000000-0000-0000-0000-000000000003", list[0].ID) // newest first

	status, body = doJSON(t, app, "GET", "/api/transactions?sort=amount&dir=asc", "")
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(body.Data, &list))
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", list[0].ID)

	status, body = doJSON(t, app, "GET", "/api/transactions?q=zzz", "")
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(body.Data, &list))
	assert.Empty(t, list)
}
