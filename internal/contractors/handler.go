package contractors

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	apphttp "github.com/PIliev24/green-street/internal/http"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) List(c *fiber.Ctx) error {
	list, err := h.Repo.List(c.UserContext())
	if err != nil {
		return apphttp.FailErr(c, err)
	}
	return apphttp.Data(c, fiber.StatusOK, list)
}

func (h *Handler) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return apphttp.Fail(c, fiber.StatusBadRequest, "Query parameter 'q' is required")
	}

	list, err := h.Repo.Search(c.UserContext(), q)
	if err != nil {
		return apphttp.FailErr(c, err)
	}
	return apphttp.Data(c, fiber.StatusOK, list)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return apphttp.Fail(c, fiber.StatusBadRequest, "Invalid contractor ID")
	}

	contractor, err := h.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		return apphttp.FailErr(c, err)
	}
	return apphttp.Data(c, fiber.StatusOK, contractor)
}
