// Package report builds the printable loan report. It is a pure function
// of a loan collection: no network access, no mutation.
package report

import (
	"bytes"
	"fmt"
	"time"

	"lablend/internal/adapters/persistence/models"

	"github.com/go-pdf/fpdf"
)

// LoansPerPage is the fixed page size of the loan report.
const LoansPerPage = 3

// Page is one page of a paginated loan report.
type Page struct {
	Number int
	Total  int
	Loans  []*models.Loan
}

// Paginate splits a loan collection into pages of LoansPerPage.
// An empty collection yields a single empty page, so the generated
// document always has at least one labeled page.
func Paginate(loans []*models.Loan) []Page {
	total := (len(loans) + LoansPerPage - 1) / LoansPerPage
	if total == 0 {
		total = 1
	}

	pages := make([]Page, 0, total)
	for i := 0; i < total; i++ {
		start := i * LoansPerPage
		end := start + LoansPerPage
		if start > len(loans) {
			start = len(loans)
		}
		if end > len(loans) {
			end = len(loans)
		}
		pages = append(pages, Page{
			Number: i + 1,
			Total:  total,
			Loans:  loans[start:end],
		})
	}
	return pages
}

// Label returns the page's ordinal label.
func (p Page) Label() string {
	return fmt.Sprintf("Página %d de %d", p.Number, p.Total)
}

// LoanReport renders the loan collection as a PDF document, LoansPerPage
// loans per page, each page labeled with its ordinal and the total count.
func LoanReport(loans []*models.Loan, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range Paginate(loans) {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 20)
		pdf.SetTextColor(44, 62, 80)
		pdf.CellFormat(0, 14, tr("REPORTE DE PRÉSTAMOS"), "", 1, "C", false, 0, "")
		pdf.Ln(4)

		for _, loan := range page.Loans {
			writeLoan(pdf, tr, loan)
		}

		pdf.SetY(-25)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(127, 140, 141)
		footer := fmt.Sprintf("Reporte generado el %s - %s",
			generatedAt.Format("02/01/2006"), page.Label())
		pdf.CellFormat(0, 8, tr(footer), "", 0, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeLoan renders one loan block
func writeLoan(pdf *fpdf.Fpdf, tr func(string) string, loan *models.Loan) {
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(52, 73, 94)
		pdf.CellFormat(55, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(44, 62, 80)
		pdf.CellFormat(0, 7, tr(value), "", 1, "L", false, 0, "")
	}

	row("ID:", loan.LoanID)
	if loan.User != nil {
		row("Usuario:", loan.User.FirstName+" "+loan.User.LastName)
	}
	if loan.Material != nil {
		row("Material:", fmt.Sprintf("%s - %s (%s)",
			loan.Material.MaterialType, loan.Material.Brand, loan.Material.Model))
	}
	row("Fecha de Préstamo:", loan.LoanDate.Format("02/01/2006"))
	row("Fecha de Devolución:", loan.ReturnDate.Format("02/01/2006"))
	row("Estado:", loan.LoanStatus)

	pdf.Ln(2)
	x, y := pdf.GetX(), pdf.GetY()
	pdf.SetDrawColor(224, 224, 224)
	pdf.Line(x, y, x+190, y)
	pdf.Ln(6)
}
