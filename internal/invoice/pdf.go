package invoice

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// EncodePDF writes the document as an A4 PDF. Layout only; all content and
// formatting decisions were already made by Build.
func (d *Document) EncodePDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 12, d.Title)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 6, d.Issuer)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Invoice No: %s", d.Number))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Paid on: %s", d.PaidDate))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 5, "Bill To:")
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range d.BillTo {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	pdf.Ln(5)

	// Item table header.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 7, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Unit Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range d.Lines {
		pdf.CellFormat(90, 7, line.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, strconv.Itoa(line.Qty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, line.UnitPrice, "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, line.LineTotal, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	for _, row := range d.Totals {
		pdf.SetFont("Helvetica", "", 10)
		if row.Label == "Total" {
			pdf.SetFont("Helvetica", "B", 11)
		}
		pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", row.Label, row.Amount), "", 1, "R", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, d.Closing)

	return pdf.Output(w)
}
