package model

import (
	"time"

	"github.com/google/uuid"
)

// IFULength is the mandatory length of a client's fiscal identifier (IFU).
const IFULength = 13

// Client is a billed party. Clients are created once and then referenced by
// invoices and by at most one discount card.
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code      string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Contact   string    `gorm:"type:varchar(255);not null" json:"contact"` // email or phone
	IFU       string    `gorm:"type:varchar(13);not null" json:"ifu"`      // fiscal identifier, exactly 13 chars
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
