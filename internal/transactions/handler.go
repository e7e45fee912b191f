package transactions

import (
	"github.com/gofiber/fiber/v2"

	apphttp "github.com/PIliev24/green-street/internal/http"
	"github.com/PIliev24/green-street/internal/ledger"
	"github.com/PIliev24/green-street/internal/query"
	"github.com/PIliev24/green-street/internal/validate"
)

type Handler struct {
	Service *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{Service: svc}
}

// List returns all transactions joined with contractors, newest first.
// Optional q / sort / dir parameters run the in-memory filter and sort over
// the fetched page, so interactive search never changes the stored order.
func (h *Handler) List(c *fiber.Ctx) error {
	list, err := h.Service.List(c.UserContext())
	if err != nil {
		return apphttp.FailErr(c, err)
	}

	q := c.Query("q")
	sortField := c.Query("sort")
	if q == "" && sortField == "" {
		return apphttp.Data(c, fiber.StatusOK, list)
	}

	cfg := query.DefaultSort
	if sortField != "" {
		cfg.Field = query.SortField(sortField)
		cfg.Direction = query.SortDirection(c.Query("dir", string(query.Asc)))
	}
	return apphttp.Data(c, fiber.StatusOK, query.FilterAndSort(list, q, cfg))
}

func (h *Handler) Get(c *fiber.Ctx) error {
	tx, err := h.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return apphttp.FailErr(c, err)
	}
	return apphttp.Data(c, fiber.StatusOK, tx)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var body validate.NewTransactionInput
	if err := c.BodyParser(&body); err != nil {
		return apphttp.Fail(c, fiber.StatusBadRequest, "invalid body")
	}

	tx, err := h.Service.Create(c.UserContext(), body)
	if err != nil {
		return apphttp.FailErr(c, err)
	}
	return apphttp.Data(c, fiber.StatusCreated, tx)
}

type updateStateRequest struct {
	State string `json:"state"`
}

func (h *Handler) UpdateState(c *fiber.Ctx) error {
	var body updateStateRequest
	if err := c.BodyParser(&body); err != nil {
		return apphttp.Fail(c, fiber.StatusBadRequest, "invalid body")
	}

	tx, err := h.Service.UpdateState(c.UserContext(), c.Params("id"), body.State)
	if err != nil {
		return apphttp.FailErr(c, err)
	}
	return apphttp.Data(c, fiber.StatusOK, tx)
}

func (h *Handler) Summary(c *fiber.Ctx) error {
	sum, err := h.Service.Summary(c.UserContext())
	if err != nil {
		return apphttp.FailErr(c, err)
	}
	return apphttp.Data(c, fiber.StatusOK, sum)
}
