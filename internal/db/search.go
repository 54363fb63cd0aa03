package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Playtura-App/playtura/internal/search"
)

// ActivitySearchRow is one schedule entry joined with the activity,
// organization, location and cheapest price a search result projects. The
// schedule id plus the day/minute columns carry the sort key the next-page
// cursor is built from.
type ActivitySearchRow struct {
	ScheduleID      uuid.UUID      `db:"schedule_id"`
	ScheduleType    string         `db:"schedule_type"`
	DayOfWeekUTC    *int           `db:"day_of_week_utc"`
	DayOfMonth      *int           `db:"day_of_month"`
	StartAtUTC      *time.Time     `db:"start_at_utc"`
	EndAtUTC        *time.Time     `db:"end_at_utc"`
	StartMinutesUTC *int           `db:"start_minutes_utc"`
	EndMinutesUTC   *int           `db:"end_minutes_utc"`
	Languages       pq.StringArray `db:"languages"`

	ActivityID       uuid.UUID `db:"activity_id"`
	ActivityName     string    `db:"activity_name"`
	Description      string    `db:"description"`
	Category         string    `db:"category"`
	MinAge           int       `db:"min_age"`
	MaxAge           int       `db:"max_age"`
	ImageURL         *string   `db:"image_url"`
	OrganizationID   uuid.UUID `db:"organization_id"`
	OrganizationName string    `db:"organization_name"`
	LocationID       uuid.UUID `db:"location_id"`
	LocationName     string    `db:"location_name"`
	City             string    `db:"city"`
	MinPriceCents    *int      `db:"min_price_cents"`
}

// SortKey is the position EncodeCursor needs to resume after this row.
func (r ActivitySearchRow) SortKey() search.Cursor {
	return search.Cursor{
		DayOfWeekUTC:    r.DayOfWeekUTC,
		StartMinutesUTC: r.StartMinutesUTC,
		ScheduleID:      r.ScheduleID,
	}
}

// SearchActivities compiles the filters into one statement and runs it. Rows
// come back in sort-key order, capped at the page size; the caller decides
// whether a next-page cursor is warranted.
func (s *pgStore) SearchActivities(filters search.Filters) ([]ActivitySearchRow, error) {
	q, err := search.BuildSearchQuery(filters)
	if err != nil {
		return nil, err
	}

	var rows []ActivitySearchRow
	if err := s.db.Select(&rows, q.SQL, q.Args...); err != nil {
		log.Error().Err(err).Msg("SearchActivities failed")
		return nil, err
	}
	return rows, nil
}
