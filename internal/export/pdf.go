package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"rental-backend/internal/models"
	"rental-backend/internal/schedule"
	"rental-backend/internal/timeutil"
)

// ContractStatement renders a contract's reconciled payment schedule as a
// printable PDF statement.
func ContractStatement(contract *models.Contract, client *models.Client, entries []schedule.EffectivePayment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Contract Payment Statement", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Contract", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	clientName := ""
	if client != nil {
		clientName = client.Name
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Client: %s", clientName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Unit: %s", contract.UnitNumber), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("From: %s", contract.StartDate.Format(timeutil.DisplayLayout)), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("To: %s", contract.EndDate.Format(timeutil.DisplayLayout)), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Payment Schedule", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(50, 7, "Due Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Amount", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Paid On", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	var total, paid float64
	for _, e := range entries {
		paidOn := ""
		if e.PaidDate != nil {
			paidOn = *e.PaidDate
		}
		pdf.CellFormat(50, 6, e.DueDate, "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", e.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, e.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, paidOn, "1", 1, "C", false, 0, "")

		total += e.Amount
		if e.Status == models.PaymentStatusPaid {
			paid += e.Amount
		}
	}
	pdf.Ln(5)

	outstanding := total - paid
	if outstanding > 0 {
		pdf.SetFillColor(255, 200, 200)
	} else {
		pdf.SetFillColor(200, 255, 200)
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(63, 9, fmt.Sprintf("Total: %.2f", total), "1", 0, "C", false, 0, "")
	pdf.CellFormat(63, 9, fmt.Sprintf("Paid: %.2f", paid), "1", 0, "C", false, 0, "")
	pdf.CellFormat(64, 9, fmt.Sprintf("Outstanding: %.2f", outstanding), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render statement: %w", err)
	}
	return buf.Bytes(), nil
}
