package reports

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	apphttp "github.com/PIliev24/green-street/internal/http"
)

type Handler struct {
	Pool *pgxpool.Pool
}

func NewHandler(pool *pgxpool.Pool) *Handler {
	return &Handler{Pool: pool}
}

type StatementItem struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	From      string `json:"from"`
	To        string `json:"to"`
	Amount    int64  `json:"amount"`
	State     string `json:"state"`
	CreatedAt string `json:"created_at"`
}

type StatementResponse struct {
	From  string          `json:"from"`
	To    string          `json:"to"`
	Total int64           `json:"total"`
	Items []StatementItem `json:"items"`
}

// Statement lists transfers in a date range, newest first, with contractor
// names resolved. Defaults to the last 30 days.
func (h *Handler) Statement(c *fiber.Ctx) error {
	from, to, err := dateRange(c)
	if err != nil {
		return apphttp.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	resp, err := h.buildStatement(c.UserContext(), from, to)
	if err != nil {
		return apphttp.FailErr(c, err)
	}
	return apphttp.Data(c, fiber.StatusOK, resp)
}

func (h *Handler) buildStatement(ctx context.Context, from, to string) (StatementResponse, error) {
	rows, err := h.Pool.Query(ctx, `
SELECT t.id::text, t.date::text, cf.name, ct.name, t.amount, t.state, t.created_at::text
FROM transactions t
JOIN contractors cf ON cf.id = t.account_from
JOIN contractors ct ON ct.id = t.account_to
WHERE t.date::date BETWEEN $1::date AND $2::date
ORDER BY t.date DESC, t.created_at DESC
LIMIT 2000
`, from, to)
	if err != nil {
		return StatementResponse{}, err
	}
	defer rows.Close()

	resp := StatementResponse{From: from, To: to, Items: []StatementItem{}}
	for rows.Next() {
		var it StatementItem
		if err := rows.Scan(&it.ID, &it.Date, &it.From, &it.To, &it.Amount, &it.State, &it.CreatedAt); err != nil {
			return StatementResponse{}, err
		}
		resp.Total += it.Amount
		resp.Items = append(resp.Items, it)
	}
	return resp, rows.Err()
}

func dateRange(c *fiber.Ctx) (string, string, error) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		end := time.Now()
		start := end.AddDate(0, 0, -29)
		from = start.Format("2006-01-02")
		to = end.Format("2006-01-02")
	}

	if _, err := time.Parse("2006-01-02", from); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "to must be YYYY-MM-DD")
	}
	return from, to, nil
}
