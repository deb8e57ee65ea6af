package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductCodeLength is the mandatory length of a catalog product code.
const ProductCodeLength = 6

// Product is a catalog entry. The unit price held here is only a default:
// invoice lines copy it at posting time, so later catalog edits never change
// a posted invoice.
type Product struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code      string          `gorm:"type:varchar(6);uniqueIndex;not null" json:"code"`
	Label     string          `gorm:"type:varchar(255);not null" json:"label"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unit_price"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
