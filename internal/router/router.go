package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PIliev24/green-street/internal/contractors"
	handlers "github.com/PIliev24/green-street/internal/http"
	"github.com/PIliev24/green-street/internal/reports"
	"github.com/PIliev24/green-street/internal/transactions"
)

type Router struct {
	AuthHandler         *handlers.AuthHandler
	TransactionsHandler *transactions.Handler
	ContractorsHandler  *contractors.Handler
	ReportsHandler      *reports.Handler
	AuthMW              fiber.Handler
	TxRateLimit         fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	if r.AuthHandler != nil {
		app.Post("/api/auth/login", r.AuthHandler.Login)
		app.Get("/api/me", r.AuthMW, r.AuthHandler.Me)
	}

	if r.TransactionsHandler != nil {
		app.Get("/api/transactions", r.AuthMW, r.TransactionsHandler.List)
		app.Get("/api/transactions/:id", r.AuthMW, r.TransactionsHandler.Get)
		app.Post("/api/transactions", r.TxRateLimit, r.AuthMW, r.TransactionsHandler.Create)
		app.Patch("/api/transactions/:id/state", r.TxRateLimit, r.AuthMW, r.TransactionsHandler.UpdateState)
		app.Get("/api/summary", r.AuthMW, r.TransactionsHandler.Summary)
	}

	if r.ContractorsHandler != nil {
		app.Get("/api/contractors", r.AuthMW, r.ContractorsHandler.List)
		app.Get("/api/contractors/search", r.AuthMW, r.ContractorsHandler.Search)
		app.Get("/api/contractors/:id", r.AuthMW, r.ContractorsHandler.Get)
	}

	if r.ReportsHandler != nil {
		app.Get("/api/reports/statement", r.AuthMW, r.ReportsHandler.Statement)
		app.Get("/api/reports/statement.pdf", r.AuthMW, r.ReportsHandler.StatementPDF)
	}
}
