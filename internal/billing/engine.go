package billing

import (
	"fmt"
	"time"

	"facturation/internal/model"
)

// LineRequest is the caller's raw selection: a product code and a quantity.
// The engine resolves the price and label from the catalog.
type LineRequest struct {
	ProductCode string
	Quantity    int
}

// Engine composes the billing core into the invoice posting pipeline. Its
// collaborators are plain functions so the engine stays synchronous and
// storage-free: lookups return (nil, nil) for absent entities, and the
// used-number sets reflect the freshly loaded store. The caller persists the
// returned records; the engine itself issues no writes.
type Engine struct {
	LookupProduct      func(code string) (*model.Product, error)
	LookupCard         func(clientCode string) (*model.DiscountCard, error)
	UsedInvoiceNumbers func() (map[string]bool, error)
	UsedCardNumbers    func() (map[string]bool, error)
	Now                func() time.Time
}

// PostInvoice validates the request, computes the full monetary breakdown
// applying the client's existing discount card if any, allocates the invoice
// number, and — when the TTC newly crosses a loyalty threshold for a client
// without a card — mints the discount card to persist alongside the invoice.
// The returned card is nil when no issuance is due.
func (e *Engine) PostInvoice(client *model.Client, lines []LineRequest) (*model.Invoice, *model.DiscountCard, error) {
	if client == nil {
		return nil, nil, validationf("client is required")
	}
	if len(lines) == 0 {
		return nil, nil, &ValidationError{Reason: "at least one line item required"}
	}

	items := make([]LineItem, 0, len(lines))
	for _, line := range lines {
		product, err := e.LookupProduct(line.ProductCode)
		if err != nil {
			return nil, nil, fmt.Errorf("catalog lookup for %q: %w", line.ProductCode, err)
		}
		if product == nil {
			return nil, nil, &NotFoundError{Entity: "product", Code: line.ProductCode}
		}
		items = append(items, LineItem{
			ProductCode: product.Code,
			Label:       product.Label,
			UnitPrice:   product.UnitPrice,
			Quantity:    line.Quantity,
		})
	}

	card, err := e.LookupCard(client.Code)
	if err != nil {
		return nil, nil, fmt.Errorf("card lookup for %q: %w", client.Code, err)
	}
	discountRate := 0
	if card != nil {
		discountRate = card.DiscountRate
	}

	totals, err := ComputeTotals(items, discountRate)
	if err != nil {
		return nil, nil, err
	}

	usedInvoices, err := e.UsedInvoiceNumbers()
	if err != nil {
		return nil, nil, fmt.Errorf("loading used invoice numbers: %w", err)
	}

	invoice := &model.Invoice{
		Number:               NextInvoiceNumber(usedInvoices),
		ClientCode:           client.Code,
		IssueDate:            e.now(),
		TotalHT:              totals.TotalHT,
		DiscountRate:         totals.DiscountRate,
		DiscountAmount:       totals.DiscountAmount,
		TotalHTAfterDiscount: totals.TotalHTAfterDiscount,
		TaxAmount:            totals.TaxAmount,
		TotalTTC:             totals.TotalTTC,
	}
	for i, item := range items {
		invoice.Lines = append(invoice.Lines, model.InvoiceLine{
			LineNo:      i + 1,
			ProductCode: item.ProductCode,
			Label:       item.Label,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.Total(),
		})
	}

	var newCard *model.DiscountCard
	if ShouldIssueCard(card != nil, totals.TotalTTC) {
		rate, _ := TierFor(totals.TotalTTC)
		usedCards, err := e.UsedCardNumbers()
		if err != nil {
			return nil, nil, fmt.Errorf("loading used card numbers: %w", err)
		}
		newCard = &model.DiscountCard{
			Number:       NextCardNumber(usedCards),
			ClientCode:   client.Code,
			DiscountRate: rate,
		}
	}

	return invoice, newCard, nil
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
