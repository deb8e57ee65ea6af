package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles recognized by the auth middleware.
const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
)

// User is an operator of the billing API (back-office staff).
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`   // bcrypt hash, omitted from JSON
	Role      string    `gorm:"type:varchar(50);not null" json:"role"` // admin, agent
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
