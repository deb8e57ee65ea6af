package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is one entry of the append-only billing ledger. Rows are never
// updated or deleted once created; the monetary breakdown is frozen at
// posting time.
type Invoice struct {
	ID                   uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Number               string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"number"` // FACT + counter
	ClientCode           string          `gorm:"type:varchar(20);not null;index" json:"client_code"`
	IssueDate            time.Time       `gorm:"type:date;not null" json:"issue_date"`
	TotalHT              decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_ht"`
	DiscountRate         int             `gorm:"not null;default:0" json:"discount_rate"` // percent, 0 when no card applied
	DiscountAmount       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"discount_amount"`
	TotalHTAfterDiscount decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_ht_after_discount"`
	TaxAmount            decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"tax_amount"` // TVA 18% of the discounted HT
	TotalTTC             decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_ttc"`
	Lines                []InvoiceLine   `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"lines"`
	CreatedAt            time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// InvoiceLine is a hard copy of the billed product at posting time. Label and
// unit price are duplicated from the catalog on purpose.
type InvoiceLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	LineNo      int             `gorm:"not null" json:"line_no"`
	ProductCode string          `gorm:"type:varchar(6);not null" json:"product_code"`
	Label       string          `gorm:"type:varchar(255);not null" json:"label"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unit_price"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"line_total"` // unit_price * quantity
}
