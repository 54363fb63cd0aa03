package packets

import "time"

type CreateOrganizationRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	ContactEmail string  `json:"contact_email" binding:"required,email"`
}

type UpdateOrganizationRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	ContactEmail string  `json:"contact_email" binding:"required,email"`
}

type CreateLocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
}

type CreateActivityRequest struct {
	LocationID  string `json:"location_id" binding:"required,uuid"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	MinAge      int    `json:"min_age" binding:"min=0"`
	MaxAge      int    `json:"max_age" binding:"min=0"`
}

type UpdateActivityRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	MinAge      *int    `json:"min_age"`
	MaxAge      *int    `json:"max_age"`
}

type CreatePricingPlanRequest struct {
	Name       string `json:"name" binding:"required"`
	PriceCents int    `json:"price_cents" binding:"min=0"`
	Currency   string `json:"currency" binding:"required,len=3"`
	Period     string `json:"period" binding:"required"`
}

type CreateScheduleEntryRequest struct {
	ScheduleType    string     `json:"schedule_type" binding:"required"`
	DayOfWeekUTC    *int       `json:"day_of_week_utc"`
	DayOfMonth      *int       `json:"day_of_month"`
	StartAtUTC      *time.Time `json:"start_at_utc"`
	EndAtUTC        *time.Time `json:"end_at_utc"`
	StartMinutesUTC *int       `json:"start_minutes_utc"`
	EndMinutesUTC   *int       `json:"end_minutes_utc"`
	Languages       []string   `json:"languages"`
}
