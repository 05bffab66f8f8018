package invoice_test

import (
	"bytes"
	"testing"
	"time"

	"proshop/internal/invoice"
	"proshop/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func paidOrder() *models.Order {
	paidAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	return &models.Order{
		ID:     "order-1",
		UserID: "user-1",
		Items: []models.OrderItem{
			{Name: "A", Price: decimal.RequireFromString("10.00"), Qty: 2},
		},
		ShippingAddress: models.ShippingAddress{
			FullName:   "Jane Buyer",
			Address:    "1 Main St",
			City:       "Springfield",
			PostalCode: "12345",
			Country:    "USA",
		},
		ItemsPrice:    decimal.RequireFromString("20.00"),
		ShippingPrice: decimal.RequireFromString("10.00"),
		TaxPrice:      decimal.RequireFromString("3.00"),
		TotalPrice:    decimal.RequireFromString("33.00"),
		IsPaid:        true,
		PaidAt:        &paidAt,
		PaymentResult: &models.PaymentResult{ExternalID: "pay_123", Status: "completed"},
	}
}

func TestBuild_UnpaidOrderRejected(t *testing.T) {
	order := paidOrder()
	order.IsPaid = false
	order.PaidAt = nil
	order.PaymentResult = nil

	doc, err := invoice.Build(order)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, models.ErrInvoiceNotAvailable)
}

func TestBuild_TotalsBlockMatchesSnapshot(t *testing.T) {
	doc, err := invoice.Build(paidOrder())
	assert.NoError(t, err)

	assert.Equal(t, "INVOICE", doc.Title)
	assert.Equal(t, "ProShop", doc.Issuer)
	assert.Equal(t, "order-1", doc.Number)
	assert.Equal(t, "March 15, 2024", doc.PaidDate)

	// Totals come straight from the stored snapshot, formatted to 2 decimals.
	assert.Equal(t, []invoice.TotalRow{
		{Label: "Subtotal", Amount: "$20.00"},
		{Label: "Tax", Amount: "$3.00"},
		{Label: "Shipping", Amount: "$10.00"},
		{Label: "Total", Amount: "$33.00"},
	}, doc.Totals)
}

func TestBuild_LineItems(t *testing.T) {
	order := paidOrder()
	order.Items = append(order.Items, models.OrderItem{
		Name:  "B",
		Price: decimal.RequireFromString("4.50"),
		Qty:   3,
	})

	doc, err := invoice.Build(order)
	assert.NoError(t, err)

	// One row per item, preserving the stored sequence.
	assert.Len(t, doc.Lines, len(order.Items))
	assert.Equal(t, invoice.Line{Name: "A", Qty: 2, UnitPrice: "$10.00", LineTotal: "$20.00"}, doc.Lines[0])
	assert.Equal(t, invoice.Line{Name: "B", Qty: 3, UnitPrice: "$4.50", LineTotal: "$13.50"}, doc.Lines[1])
}

func TestBuild_BillToFromShippingAddress(t *testing.T) {
	doc, err := invoice.Build(paidOrder())
	assert.NoError(t, err)

	assert.Equal(t, []string{
		"Jane Buyer",
		"1 Main St",
		"Springfield, 12345",
		"USA",
	}, doc.BillTo)
}

func TestEncodePDF(t *testing.T) {
	doc, err := invoice.Build(paidOrder())
	assert.NoError(t, err)

	var buf bytes.Buffer
	err = doc.EncodePDF(&buf)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should be a PDF document")
}
