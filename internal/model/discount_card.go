package model

import (
	"time"

	"github.com/google/uuid"
)

// DiscountCard grants a client a permanent discount rate. A client holds at
// most one card, ever: the first qualifying invoice wins and later invoices
// never upgrade or replace it. The uniqueIndex on ClientCode backs the
// query-then-insert check performed at issuance.
type DiscountCard struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Number       string    `gorm:"type:varchar(30);uniqueIndex;not null" json:"number"` // CARTE + counter
	ClientCode   string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"client_code"`
	DiscountRate int       `gorm:"not null" json:"discount_rate"` // one of the fixed tier percentages
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
