package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"rental-backend/internal/models"
	"rental-backend/internal/timeutil"
)

// Excel renders the dataset as a workbook with one sheet per collection.
func (d *Dataset) Excel() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	_ = f.SetDocProps(&excelize.DocProperties{
		Title:   "Rental back-office export",
		Created: timeutil.Now().Format("2006-01-02T15:04:05Z"),
	})

	if err := d.writeSheets(f); err != nil {
		return nil, err
	}

	// Drop the default sheet left over from NewFile.
	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *Dataset) writeSheets(f *excelize.File) error {
	sheets := []struct {
		name    string
		headers []string
		rows    [][]interface{}
	}{
		{"Properties", []string{"ID", "Name", "Location", "Type", "Floors"}, propertyRows(d.Properties)},
		{"Units", []string{"ID", "Property", "Number", "Floor", "Type", "Available"}, unitRows(d.Units)},
		{"Clients", []string{"ID", "Name", "Email", "Phone", "ID Number", "Address"}, clientRows(d.Clients)},
		{"Contracts", []string{"ID", "Property", "Client", "Unit", "Start", "End", "Total Rent", "Payment Dates", "Payment Amounts", "Status"}, contractRows(d.Contracts)},
		{"Payments", []string{"ID", "Contract", "Amount", "Due Date", "Paid Date", "Status", "Method", "Check", "Bank"}, paymentRows(d.Payments)},
		{"Maintenance", []string{"ID", "Property", "Unit", "Description", "Priority", "Status", "Reported"}, maintenanceRows(d.MaintenanceRequests)},
		{"Vaults", []string{"ID", "Name", "Currency", "Balance"}, vaultRows(d.Vaults)},
		{"Customers", []string{"ID", "Name", "Phone", "Email", "ID Number"}, customerRows(d.Customers)},
		{"Suppliers", []string{"ID", "Name", "Company", "Phone", "Email"}, supplierRows(d.Suppliers)},
		{"Exchange", []string{"ID", "Vault", "Type", "Currency In", "Amount In", "Currency Out", "Amount Out", "Rate"}, exchangeRows(d.ExchangeTransactions)},
	}

	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", s.name, err)
		}
		for i, h := range s.headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			if err := f.SetCellValue(s.name, cell, h); err != nil {
				return err
			}
		}
		for rowIdx, row := range s.rows {
			for colIdx, v := range row {
				cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
				if err := f.SetCellValue(s.name, cell, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func propertyRows(items []*models.Property) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, p := range items {
		rows = append(rows, []interface{}{p.ID.String(), p.Name, p.Location, p.Type, p.Floors})
	}
	return rows
}

func unitRows(items []*models.Unit) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, u := range items {
		rows = append(rows, []interface{}{u.ID.String(), u.PropertyID.String(), u.Number, u.Floor, u.UnitType, u.IsAvailable})
	}
	return rows
}

func clientRows(items []*models.Client) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, c := range items {
		rows = append(rows, []interface{}{c.ID.String(), c.Name, c.Email, c.Phone, c.IDNumber, c.Address})
	}
	return rows
}

func contractRows(items []*models.Contract) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, c := range items {
		rows = append(rows, []interface{}{
			c.ID.String(), c.PropertyID.String(), c.ClientID.String(), c.UnitNumber,
			c.StartDate.Format(timeutil.DateLayout), c.EndDate.Format(timeutil.DateLayout),
			c.TotalRent, c.PaymentDates, c.PaymentAmounts, c.Status,
		})
	}
	return rows
}

func paymentRows(items []*models.Payment) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, p := range items {
		paid := ""
		if p.PaidDate != nil {
			paid = *p.PaidDate
		}
		rows = append(rows, []interface{}{
			p.ID.String(), p.ContractID.String(), p.Amount, p.DueDate, paid,
			p.Status, p.PaymentMethod, p.CheckNumber, p.BankName,
		})
	}
	return rows
}

func maintenanceRows(items []*models.MaintenanceRequest) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, m := range items {
		rows = append(rows, []interface{}{
			m.ID.String(), m.PropertyID.String(), m.UnitNumber, m.Description,
			m.Priority, m.Status, m.ReportedAt.Format(timeutil.DateLayout),
		})
	}
	return rows
}

func vaultRows(items []*models.Vault) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, v := range items {
		rows = append(rows, []interface{}{v.ID.String(), v.Name, v.Currency, v.Balance})
	}
	return rows
}

func customerRows(items []*models.Customer) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, c := range items {
		rows = append(rows, []interface{}{c.ID.String(), c.Name, c.Phone, c.Email, c.IDNumber})
	}
	return rows
}

func supplierRows(items []*models.Supplier) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, s := range items {
		rows = append(rows, []interface{}{s.ID.String(), s.Name, s.Company, s.Phone, s.Email})
	}
	return rows
}

func exchangeRows(items []*models.ExchangeTransaction) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, e := range items {
		rows = append(rows, []interface{}{
			e.ID.String(), e.VaultID.String(), e.Type, e.CurrencyIn, e.AmountIn,
			e.CurrencyOut, e.AmountOut, e.Rate,
		})
	}
	return rows
}
