package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	ID             uuid.UUID `db:"id"`
	OrganizationID uuid.UUID `db:"organization_id"`
	LocationID     uuid.UUID `db:"location_id"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	Category       string    `db:"category"`
	MinAge         int       `db:"min_age"`
	MaxAge         int       `db:"max_age"`
	ImageURL       *string   `db:"image_url"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// PricingPeriod is the closed set of billing periods a pricing plan can use.
type PricingPeriod string

const (
	PricingPerSession PricingPeriod = "perSession"
	PricingPerMonth   PricingPeriod = "perMonth"
	PricingPerTerm    PricingPeriod = "perTerm"
)

func (p PricingPeriod) Valid() error {
	switch p {
	case PricingPerSession, PricingPerMonth, PricingPerTerm:
		return nil
	}
	return fmt.Errorf("unknown pricing period %q", string(p))
}

type PricingPlan struct {
	ID         uuid.UUID     `db:"id"`
	ActivityID uuid.UUID     `db:"activity_id"`
	Name       string        `db:"name"`
	PriceCents int           `db:"price_cents"`
	Currency   string        `db:"currency"`
	Period     PricingPeriod `db:"period"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}
