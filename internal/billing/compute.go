package billing

import (
	"github.com/shopspring/decimal"
)

// TaxRate is the fixed TVA applied to the discounted HT.
var TaxRate = decimal.New(18, -2) // 0.18

var oneHundred = decimal.NewFromInt(100)

// LineItem is one billed catalog entry with its price copied from the
// catalog at posting time.
type LineItem struct {
	ProductCode string
	Label       string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// Total returns unit price times quantity, exact.
func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Totals is the complete monetary breakdown of an invoice. All five fields
// are rounded to 2 decimals for presentation; the chaining that produced
// them used exact intermediates.
type Totals struct {
	TotalHT              decimal.Decimal
	DiscountRate         int // percent actually applied, 0 when no card
	DiscountAmount       decimal.Decimal
	TotalHTAfterDiscount decimal.Decimal
	TaxAmount            decimal.Decimal
	TotalTTC             decimal.Decimal
}

// ComputeTotals runs the invoice pipeline: exact HT sum, discount from the
// card rate, TVA on the discounted HT, TTC. Rounding happens once, at the
// boundary — the chain itself uses the unrounded HT so rounding error never
// compounds:
//
//	remise     = HT × rate/100
//	THT remisé = HT − remise
//	TVA        = round(THT remisé × 0.18, 2)
//	TTC        = THT remisé + TVA
func ComputeTotals(items []LineItem, discountRate int) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, validationf("at least one line item required")
	}
	if discountRate < 0 || discountRate > 100 {
		return Totals{}, validationf("discount rate %d%% out of range", discountRate)
	}

	totalHT := decimal.Zero
	for i, item := range items {
		if item.Quantity <= 0 {
			return Totals{}, validationf("line %d (%s): quantity must be positive, got %d", i+1, item.ProductCode, item.Quantity)
		}
		if !item.UnitPrice.IsPositive() {
			return Totals{}, validationf("line %d (%s): unit price must be positive, got %s", i+1, item.ProductCode, item.UnitPrice)
		}
		totalHT = totalHT.Add(item.Total())
	}

	discount := totalHT.Mul(decimal.NewFromInt(int64(discountRate))).Div(oneHundred)
	afterDiscount := totalHT.Sub(discount)
	tax := afterDiscount.Mul(TaxRate).Round(2)
	totalTTC := afterDiscount.Add(tax)

	return Totals{
		TotalHT:              totalHT.Round(2),
		DiscountRate:         discountRate,
		DiscountAmount:       discount.Round(2),
		TotalHTAfterDiscount: afterDiscount.Round(2),
		TaxAmount:            tax,
		TotalTTC:             totalTTC.Round(2),
	}, nil
}
