package services

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"

	"storefront/internal/models"
)

// InvoiceLine is one row of the invoice's line-item table.
type InvoiceLine struct {
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// Invoice is the structured document built from a finalized order:
// header, bill-to block, line-item table, totals block and the
// payment/delivery footer. Rendering it to PDF or other formats is left
// to external tooling; RenderText produces a plain-text version.
type Invoice struct {
	OrderID         string          `json:"order_id"`
	OrderDate       string          `json:"order_date"`
	BillTo          []string        `json:"bill_to"`
	Lines           []InvoiceLine   `json:"lines"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	PaymentMethod   string          `json:"payment_method"`
	DeliveryCompany string          `json:"delivery_company"`
	DeliveryDate    string          `json:"delivery_date"`
}

// InvoiceService builds invoices from finalized orders. It never mutates
// an order, so it is safe to call repeatedly and concurrently.
type InvoiceService struct{}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService() *InvoiceService {
	return &InvoiceService{}
}

// Build derives an invoice from an order's immutable item snapshots. The
// totals are recomputed from the snapshots and cross-checked against the
// values stored at checkout; a mismatch means the order record has been
// corrupted and is reported as an error rather than papered over.
func (s *InvoiceService) Build(order *models.Order) (*Invoice, error) {
	lines := make([]InvoiceLine, 0, len(order.Items))
	subtotal := decimal.Zero
	for _, item := range order.Items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		lines = append(lines, InvoiceLine{
			ProductName: item.ProductName,
			UnitPrice:   item.Price,
			Quantity:    item.Quantity,
			LineTotal:   lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	tax := subtotal.Mul(TaxRate).Round(2)
	grandTotal := subtotal.Add(tax).Round(2)

	if !subtotal.Equal(order.Subtotal) || !tax.Equal(order.Tax) || !grandTotal.Equal(order.GrandTotal) {
		return nil, fmt.Errorf("invoice totals for order %s do not match stored totals (computed %s/%s/%s, stored %s/%s/%s)",
			order.ID,
			subtotal.StringFixed(2), tax.StringFixed(2), grandTotal.StringFixed(2),
			order.Subtotal.StringFixed(2), order.Tax.StringFixed(2), order.GrandTotal.StringFixed(2))
	}

	return &Invoice{
		OrderID:   order.ID,
		OrderDate: order.OrderDate.Format("02-01-2006"),
		BillTo: []string{
			order.Address,
			fmt.Sprintf("%s %s", order.ZipCode, order.City),
			order.Country,
		},
		Lines:           lines,
		Subtotal:        subtotal,
		Tax:             tax,
		GrandTotal:      grandTotal,
		PaymentMethod:   order.PaymentMethod,
		DeliveryCompany: order.DeliveryCompany,
		DeliveryDate:    order.DeliveryDate.Format("02-01-2006"),
	}, nil
}

// RenderText renders the invoice to a fixed-layout plain-text document.
func (s *InvoiceService) RenderText(inv *Invoice) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "INVOICE - Order %s\n", inv.OrderID)
	fmt.Fprintf(&buf, "Date: %s\n", inv.OrderDate)
	buf.WriteString("Thank you for your purchase.\n\n")

	buf.WriteString("Bill to:\n")
	for _, line := range inv.BillTo {
		fmt.Fprintf(&buf, "  %s\n", line)
	}
	buf.WriteString("\nItems:\n")
	for _, line := range inv.Lines {
		fmt.Fprintf(&buf, "  %-30s x%-3d @ €%-10s €%s\n",
			line.ProductName, line.Quantity, line.UnitPrice.StringFixed(2), line.LineTotal.StringFixed(2))
	}

	buf.WriteString("\n")
	fmt.Fprintf(&buf, "Subtotal:    €%s\n", inv.Subtotal.StringFixed(2))
	fmt.Fprintf(&buf, "Tax (10%%):   €%s\n", inv.Tax.StringFixed(2))
	fmt.Fprintf(&buf, "Grand total: €%s\n\n", inv.GrandTotal.StringFixed(2))

	fmt.Fprintf(&buf, "Paid with %s. Delivery by %s, expected %s.\n",
		inv.PaymentMethod, inv.DeliveryCompany, inv.DeliveryDate)

	return buf.Bytes()
}
