package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel mirrors the 'credentials' table. PostgreSQL generates the
// UUIDs; the unique index on identifier is the system's single source of
// truth for duplicate registrations.
type CredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Identifier   string    `gorm:"type:varchar(255);uniqueIndex:idx_credentials_identifier;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(50);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
