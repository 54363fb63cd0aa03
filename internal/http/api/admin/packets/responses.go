package packets

import (
	"time"

	"github.com/Playtura-App/playtura/internal/model"
)

type OrganizationResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	ContactEmail string  `json:"contact_email"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func NewOrganizationResponse(o model.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:           o.ID.String(),
		Name:         o.Name,
		Description:  o.Description,
		ContactEmail: o.ContactEmail,
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    o.UpdatedAt.Format(time.RFC3339),
	}
}

type LocationResponse struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	City           string `json:"city"`
}

func NewLocationResponse(l model.Location) LocationResponse {
	return LocationResponse{
		ID:             l.ID.String(),
		OrganizationID: l.OrganizationID.String(),
		Name:           l.Name,
		Address:        l.Address,
		City:           l.City,
	}
}

type ActivityResponse struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organization_id"`
	LocationID     string  `json:"location_id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	MinAge         int     `json:"min_age"`
	MaxAge         int     `json:"max_age"`
	ImageURL       *string `json:"image_url"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func NewActivityResponse(a model.Activity) ActivityResponse {
	return ActivityResponse{
		ID:             a.ID.String(),
		OrganizationID: a.OrganizationID.String(),
		LocationID:     a.LocationID.String(),
		Name:           a.Name,
		Description:    a.Description,
		Category:       a.Category,
		MinAge:         a.MinAge,
		MaxAge:         a.MaxAge,
		ImageURL:       a.ImageURL,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      a.UpdatedAt.Format(time.RFC3339),
	}
}

type PricingPlanResponse struct {
	ID         string `json:"id"`
	ActivityID string `json:"activity_id"`
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents"`
	Currency   string `json:"currency"`
	Period     string `json:"period"`
}

func NewPricingPlanResponse(p model.PricingPlan) PricingPlanResponse {
	return PricingPlanResponse{
		ID:         p.ID.String(),
		ActivityID: p.ActivityID.String(),
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Currency:   p.Currency,
		Period:     string(p.Period),
	}
}

type ScheduleEntryResponse struct {
	ID              string   `json:"id"`
	ActivityID      string   `json:"activity_id"`
	ScheduleType    string   `json:"schedule_type"`
	DayOfWeekUTC    *int     `json:"day_of_week_utc"`
	DayOfMonth      *int     `json:"day_of_month"`
	StartAtUTC      *string  `json:"start_at_utc"`
	EndAtUTC        *string  `json:"end_at_utc"`
	StartMinutesUTC *int     `json:"start_minutes_utc"`
	EndMinutesUTC   *int     `json:"end_minutes_utc"`
	Languages       []string `json:"languages"`
}

func NewScheduleEntryResponse(e model.ScheduleEntry) ScheduleEntryResponse {
	fmtTime := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.UTC().Format(time.RFC3339)
		return &s
	}
	return ScheduleEntryResponse{
		ID:              e.ID.String(),
		ActivityID:      e.ActivityID.String(),
		ScheduleType:    string(e.ScheduleType),
		DayOfWeekUTC:    e.DayOfWeekUTC,
		DayOfMonth:      e.DayOfMonth,
		StartAtUTC:      fmtTime(e.StartAtUTC),
		EndAtUTC:        fmtTime(e.EndAtUTC),
		StartMinutesUTC: e.StartMinutesUTC,
		EndMinutesUTC:   e.EndMinutesUTC,
		Languages:       e.Languages,
	}
}
