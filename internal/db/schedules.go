package db

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Playtura-App/playtura/internal/model"
	"github.com/Playtura-App/playtura/internal/search"
)

// ValidateScheduleEntry checks type/field consistency before anything is
// written. The minute window follows the permissive rule: a wrapped window
// (start > end) is a valid overnight slot, only equal bounds are rejected.
func ValidateScheduleEntry(e model.ScheduleEntry) error {
	if err := e.ScheduleType.Valid(); err != nil {
		return err
	}
	switch e.ScheduleType {
	case model.ScheduleWeekly:
		if e.DayOfWeekUTC == nil || *e.DayOfWeekUTC < 0 || *e.DayOfWeekUTC > 6 {
			return fmt.Errorf("weekly entry needs day_of_week_utc in [0, 6]")
		}
	case model.ScheduleMonthly:
		if e.DayOfMonth == nil || *e.DayOfMonth < 1 || *e.DayOfMonth > 31 {
			return fmt.Errorf("monthly entry needs day_of_month in [1, 31]")
		}
	case model.ScheduleDateSpecific:
		if e.StartAtUTC == nil || e.EndAtUTC == nil {
			return fmt.Errorf("dateSpecific entry needs start_at_utc and end_at_utc")
		}
		if !e.StartAtUTC.Before(*e.EndAtUTC) {
			return fmt.Errorf("dateSpecific entry must start before it ends")
		}
	}
	return search.ValidateEntryWindow(e.StartMinutesUTC, e.EndMinutesUTC)
}

func (s *pgStore) CreateScheduleEntry(entry model.ScheduleEntry) (model.ScheduleEntry, error) {
	if err := ValidateScheduleEntry(entry); err != nil {
		return model.ScheduleEntry{}, err
	}

	var e model.ScheduleEntry
	const q = `
	INSERT INTO schedule_entries
	  (id, activity_id, schedule_type, day_of_week_utc, day_of_month,
	   start_at_utc, end_at_utc, start_minutes_utc, end_minutes_utc, languages,
	   created_at, updated_at)
	VALUES
	  (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
	RETURNING
	  id, activity_id, schedule_type, day_of_week_utc, day_of_month,
	  start_at_utc, end_at_utc, start_minutes_utc, end_minutes_utc, languages,
	  created_at, updated_at;`
	err := s.db.Get(&e, q,
		entry.ActivityID, string(entry.ScheduleType), entry.DayOfWeekUTC, entry.DayOfMonth,
		entry.StartAtUTC, entry.EndAtUTC, entry.StartMinutesUTC, entry.EndMinutesUTC, entry.Languages)
	if err != nil {
		log.Error().Err(err).Msg("CreateScheduleEntry failed")
		return model.ScheduleEntry{}, err
	}
	return e, nil
}

func (s *pgStore) GetScheduleEntryByID(id uuid.UUID) (model.ScheduleEntry, error) {
	var e model.ScheduleEntry
	err := s.db.Get(&e, `
	SELECT id, activity_id, schedule_type, day_of_week_utc, day_of_month,
	       start_at_utc, end_at_utc, start_minutes_utc, end_minutes_utc, languages,
	       created_at, updated_at
	  FROM schedule_entries WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("schedule_entry_id", id.String()).Msg("GetScheduleEntryByID failed")
	}
	return e, err
}

func (s *pgStore) ListScheduleEntries(activityID uuid.UUID) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	const q = `
	SELECT id, activity_id, schedule_type, day_of_week_utc, day_of_month,
	       start_at_utc, end_at_utc, start_minutes_utc, end_minutes_utc, languages,
	       created_at, updated_at
	  FROM schedule_entries
	 WHERE activity_id = $1
	 ORDER BY COALESCE(day_of_week_utc, 7), COALESCE(start_minutes_utc, 1441), id;`
	if err := s.db.Select(&out, q, activityID); err != nil {
		log.Error().Err(err).Str("activity_id", activityID.String()).Msg("ListScheduleEntries failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) DeleteScheduleEntry(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM schedule_entries WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("schedule_entry_id", id.String()).Msg("DeleteScheduleEntry failed")
	}
	return err
}
