package packets

import (
	"time"

	"github.com/Playtura-App/playtura/internal/db"
)

type SearchResultResponse struct {
	ScheduleID      string   `json:"schedule_id"`
	ScheduleType    string   `json:"schedule_type"`
	DayOfWeekUTC    *int     `json:"day_of_week_utc"`
	DayOfMonth      *int     `json:"day_of_month"`
	StartAtUTC      *string  `json:"start_at_utc"`
	EndAtUTC        *string  `json:"end_at_utc"`
	StartMinutesUTC *int     `json:"start_minutes_utc"`
	EndMinutesUTC   *int     `json:"end_minutes_utc"`
	Languages       []string `json:"languages"`

	ActivityID       string  `json:"activity_id"`
	ActivityName     string  `json:"activity_name"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	MinAge           int     `json:"min_age"`
	MaxAge           int     `json:"max_age"`
	ImageURL         *string `json:"image_url"`
	OrganizationID   string  `json:"organization_id"`
	OrganizationName string  `json:"organization_name"`
	LocationID       string  `json:"location_id"`
	LocationName     string  `json:"location_name"`
	City             string  `json:"city"`
	MinPriceCents    *int    `json:"min_price_cents"`
}

// SearchResponse is one page of results. NextCursor is absent on the last
// page; its insides are opaque to clients.
type SearchResponse struct {
	Items      []SearchResultResponse `json:"items"`
	NextCursor string                 `json:"next_cursor,omitempty"`
}

func NewSearchResultResponse(r db.ActivitySearchRow) SearchResultResponse {
	fmtTime := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.UTC().Format(time.RFC3339)
		return &s
	}
	return SearchResultResponse{
		ScheduleID:       r.ScheduleID.String(),
		ScheduleType:     r.ScheduleType,
		DayOfWeekUTC:     r.DayOfWeekUTC,
		DayOfMonth:       r.DayOfMonth,
		StartAtUTC:       fmtTime(r.StartAtUTC),
		EndAtUTC:         fmtTime(r.EndAtUTC),
		StartMinutesUTC:  r.StartMinutesUTC,
		EndMinutesUTC:    r.EndMinutesUTC,
		Languages:        r.Languages,
		ActivityID:       r.ActivityID.String(),
		ActivityName:     r.ActivityName,
		Description:      r.Description,
		Category:         r.Category,
		MinAge:           r.MinAge,
		MaxAge:           r.MaxAge,
		ImageURL:         r.ImageURL,
		OrganizationID:   r.OrganizationID.String(),
		OrganizationName: r.OrganizationName,
		LocationID:       r.LocationID.String(),
		LocationName:     r.LocationName,
		City:             r.City,
		MinPriceCents:    r.MinPriceCents,
	}
}
