package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/phpdave11/gofpdf"

	apphttp "github.com/PIliev24/green-street/internal/http"
	"github.com/PIliev24/green-street/internal/money"
)

// StatementPDF renders the same statement as a downloadable PDF.
func (h *Handler) StatementPDF(c *fiber.Ctx) error {
	from, to, err := dateRange(c)
	if err != nil {
		return apphttp.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	stmt, err := h.buildStatement(c.UserContext(), from, to)
	if err != nil {
		return apphttp.FailErr(c, err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 42)
	pdf.SetTextColor(235, 235, 235)
	pdf.Text(22, 140, "GREEN STREET")

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, "Transaction Statement", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s to %s", stmt.From, stmt.To), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Generated: "+time.Now().Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// table header
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(28, 7, "Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(48, 7, "From", "1", 0, "L", true, 0, "")
	pdf.CellFormat(48, 7, "To", "1", 0, "L", true, 0, "")
	pdf.CellFormat(26, 7, "Amount", "1", 0, "R", true, 0, "")
	pdf.CellFormat(28, 7, "State", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, it := range stmt.Items {
		date := it.Date
		if len(date) > 10 {
			date = date[:10]
		}
		pdf.CellFormat(28, 6, date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(48, 6, clip(it.From, 30), "1", 0, "L", false, 0, "")
		pdf.CellFormat(48, 6, clip(it.To, 30), "1", 0, "L", false, 0, "")
		pdf.CellFormat(26, 6, money.FormatCents(it.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, it.State, "1", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Transfers: %d    Total volume: %s", len(stmt.Items), money.FormatCents(stmt.Total)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return apphttp.Fail(c, fiber.StatusInternalServerError, "failed to render pdf")
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="statement-%s-%s.pdf"`, stmt.From, stmt.To))
	return c.Send(buf.Bytes())
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
