package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ScheduleType is the closed set of recurrence shapes a schedule entry can have.
type ScheduleType string

const (
	ScheduleWeekly       ScheduleType = "weekly"
	ScheduleMonthly      ScheduleType = "monthly"
	ScheduleDateSpecific ScheduleType = "dateSpecific"
)

func (t ScheduleType) Valid() error {
	switch t {
	case ScheduleWeekly, ScheduleMonthly, ScheduleDateSpecific:
		return nil
	}
	return fmt.Errorf("unknown schedule type %q", string(t))
}

// ScheduleEntry is one concrete slot an activity runs in. Which fields are set
// depends on the type: weekly entries carry DayOfWeekUTC, monthly entries carry
// DayOfMonth, dateSpecific entries carry the absolute timestamps. The minute
// pair is the UTC time-of-day window shared by the recurring types; a window
// whose start is numerically greater than its end wraps past midnight.
type ScheduleEntry struct {
	ID              uuid.UUID      `db:"id"`
	ActivityID      uuid.UUID      `db:"activity_id"`
	ScheduleType    ScheduleType   `db:"schedule_type"`
	DayOfWeekUTC    *int           `db:"day_of_week_utc"`
	DayOfMonth      *int           `db:"day_of_month"`
	StartAtUTC      *time.Time     `db:"start_at_utc"`
	EndAtUTC        *time.Time     `db:"end_at_utc"`
	StartMinutesUTC *int           `db:"start_minutes_utc"`
	EndMinutesUTC   *int           `db:"end_minutes_utc"`
	Languages       pq.StringArray `db:"languages"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}
