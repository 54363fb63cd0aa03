package model

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Description  *string   `db:"description"`
	ContactEmail string    `db:"contact_email"`
	CreatedBy    int       `db:"created_by"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Location struct {
	ID             uuid.UUID `db:"id"`
	OrganizationID uuid.UUID `db:"organization_id"`
	Name           string    `db:"name"`
	Address        string    `db:"address"`
	City           string    `db:"city"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
