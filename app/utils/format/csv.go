package format

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/Rakhulsr/figurine-shop/app/models"
)

const dateLayout = "2006-01-02"

func WriteChargesCSV(w io.Writer, charges []models.Charge) error {
	rows := [][]string{{"Date", "Title", "Category", "Amount", "Notes"}}
	for _, c := range charges {
		rows = append(rows, []string{c.Date.Format(dateLayout), c.Title, string(c.Category), Amount(c.Amount), c.Notes})
	}
	return writeRows(w, rows)
}

func WriteInvestmentsCSV(w io.Writer, investments []models.Investment) error {
	rows := [][]string{{"Date", "Title", "Amount", "Notes"}}
	for _, i := range investments {
		rows = append(rows, []string{i.Date.Format(dateLayout), i.Title, Amount(i.Amount), i.Notes})
	}
	return writeRows(w, rows)
}

func WriteRevenuesCSV(w io.Writer, revenues []models.Revenue) error {
	rows := [][]string{{"Date", "Category", "Source", "Product", "Order", "Amount"}}
	for _, r := range revenues {
		rows = append(rows, []string{r.Date.Format(dateLayout), r.Category, string(r.Source), r.ProductName, r.OrderID, Amount(r.Amount)})
	}
	return writeRows(w, rows)
}

func ExportFileName(kind string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", kind, now.Format(dateLayout))
}

func writeRows(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
