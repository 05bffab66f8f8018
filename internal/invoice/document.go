package invoice

import (
	"fmt"

	"proshop/internal/models"

	"github.com/shopspring/decimal"
)

// Issuer is the store name printed on every invoice.
const Issuer = "ProShop"

// Line is a rendered item row. Amounts are pre-formatted to two decimals.
type Line struct {
	Name      string
	Qty       int
	UnitPrice string
	LineTotal string
}

// TotalRow is one entry of the totals block, e.g. "Subtotal: $20.00".
type TotalRow struct {
	Label  string
	Amount string
}

// Document is the fixed-layout invoice model. It is built entirely from the
// order snapshot so rendering has no I/O and is unit-testable on its own.
type Document struct {
	Title    string
	Issuer   string
	Number   string
	PaidDate string
	BillTo   []string
	Lines    []Line
	Totals   []TotalRow
	Closing  string
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Build transforms a paid order into an invoice document. The stored pricing
// snapshot is trusted as-is; totals are never recomputed from the items.
func Build(order *models.Order) (*Document, error) {
	if !order.IsPaid {
		return nil, models.ErrInvoiceNotAvailable
	}

	addr := order.ShippingAddress
	doc := &Document{
		Title:  "INVOICE",
		Issuer: Issuer,
		Number: order.ID,
		BillTo: []string{
			addr.FullName,
			addr.Address,
			fmt.Sprintf("%s, %s", addr.City, addr.PostalCode),
			addr.Country,
		},
		Totals: []TotalRow{
			{Label: "Subtotal", Amount: money(order.ItemsPrice)},
			{Label: "Tax", Amount: money(order.TaxPrice)},
			{Label: "Shipping", Amount: money(order.ShippingPrice)},
			{Label: "Total", Amount: money(order.TotalPrice)},
		},
		Closing: "Thank you for shopping with us!",
	}
	if order.PaidAt != nil {
		doc.PaidDate = order.PaidAt.Format("January 2, 2006")
	}

	// Line items keep the order's stored sequence.
	for _, item := range order.Items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Qty)))
		doc.Lines = append(doc.Lines, Line{
			Name:      item.Name,
			Qty:       item.Qty,
			UnitPrice: money(item.Price),
			LineTotal: money(lineTotal),
		})
	}

	return doc, nil
}
