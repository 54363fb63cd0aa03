package db

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Playtura-App/playtura/internal/model"
	"github.com/Playtura-App/playtura/internal/search"
)

func intPtr(n int) *int { return &n }

// openTestStore connects to the database named by TEST_DATABASE_URL and runs
// the migrations; the whole test is skipped when the variable is unset.
func openTestStore(t *testing.T) Store {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	conn, err := Connect(dbURL)
	require.NoError(t, err)
	require.NoError(t, RunMigrations(conn, "../../migrations"))
	t.Cleanup(func() { conn.Close() })
	return NewStore(conn)
}

// seeds one org/location/activity chain and returns the activity.
func seedActivity(t *testing.T, store Store, email string) model.Activity {
	t.Helper()
	user, err := store.GetOrCreateUserByEmail(email)
	require.NoError(t, err)

	org, err := store.CreateOrganization("Test Club", nil, email, user.ID)
	require.NoError(t, err)

	loc, err := store.CreateLocation(org.ID, "Main Hall", "1 Main St", "Oslo")
	require.NoError(t, err)

	activity, err := store.CreateActivity(org.ID, loc.ID, "Night Swim", "late session", "sports", 6, 12)
	require.NoError(t, err)
	return activity
}

func TestStoreIntegration(t *testing.T) {
	store := openTestStore(t)
	email := fmt.Sprintf("it-%d@example.com", time.Now().UnixNano())

	t.Run("User Management", func(t *testing.T) {
		user, err := store.GetOrCreateUserByEmail(email)
		assert.NoError(t, err)
		assert.Greater(t, user.ID, 0)

		again, err := store.GetOrCreateUserByEmail(email)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, again.ID)

		name := "Updated Name"
		assert.NoError(t, store.UpdateUserProfile(user.ID, &name))
		loaded, err := store.GetUserByID(user.ID)
		assert.NoError(t, err)
		assert.Equal(t, &name, loaded.Name)
	})

	t.Run("Schedule Window Rules", func(t *testing.T) {
		activity := seedActivity(t, store, fmt.Sprintf("win-%s", email))

		// wrapped window is legal
		_, err := store.CreateScheduleEntry(model.ScheduleEntry{
			ActivityID:      activity.ID,
			ScheduleType:    model.ScheduleWeekly,
			DayOfWeekUTC:    intPtr(5),
			StartMinutesUTC: intPtr(1320),
			EndMinutesUTC:   intPtr(120),
			Languages:       []string{"en"},
		})
		assert.NoError(t, err)

		// equal bounds are not
		_, err = store.CreateScheduleEntry(model.ScheduleEntry{
			ActivityID:      activity.ID,
			ScheduleType:    model.ScheduleWeekly,
			DayOfWeekUTC:    intPtr(5),
			StartMinutesUTC: intPtr(600),
			EndMinutesUTC:   intPtr(600),
		})
		assert.Error(t, err)
	})

	t.Run("Wrapped Entry Search", func(t *testing.T) {
		activity := seedActivity(t, store, fmt.Sprintf("wrap-%s", email))

		// 22:00-02:00 UTC on Fridays
		entry, err := store.CreateScheduleEntry(model.ScheduleEntry{
			ActivityID:      activity.ID,
			ScheduleType:    model.ScheduleWeekly,
			DayOfWeekUTC:    intPtr(5),
			StartMinutesUTC: intPtr(1320),
			EndMinutesUTC:   intPtr(120),
			Languages:       []string{"en"},
		})
		require.NoError(t, err)

		contains := func(rows []ActivitySearchRow) bool {
			for _, r := range rows {
				if r.ScheduleID == entry.ID {
					return true
				}
			}
			return false
		}

		// 00:00-01:00 overlaps the after-midnight tail
		rows, err := store.SearchActivities(search.Filters{
			StartMinutesUTC: intPtr(0), EndMinutesUTC: intPtr(60),
		})
		assert.NoError(t, err)
		assert.True(t, contains(rows), "early-morning search should find the wrapped entry")

		// 10:00-11:00 misses both pieces
		rows, err = store.SearchActivities(search.Filters{
			StartMinutesUTC: intPtr(600), EndMinutesUTC: intPtr(660),
		})
		assert.NoError(t, err)
		assert.False(t, contains(rows), "midday search should not find the wrapped entry")
	})

	t.Run("Cursor Pagination", func(t *testing.T) {
		activity := seedActivity(t, store, fmt.Sprintf("page-%s", email))
		category := fmt.Sprintf("paging-%d", time.Now().UnixNano())
		require.NoError(t, store.UpdateActivity(activity.ID, nil, nil, &category, nil, nil))

		for day := 0; day < 5; day++ {
			_, err := store.CreateScheduleEntry(model.ScheduleEntry{
				ActivityID:      activity.ID,
				ScheduleType:    model.ScheduleWeekly,
				DayOfWeekUTC:    intPtr(day),
				StartMinutesUTC: intPtr(540),
				EndMinutesUTC:   intPtr(600),
			})
			require.NoError(t, err)
		}

		filters := search.Filters{Category: &category, Limit: 2}
		var seen []ActivitySearchRow
		for {
			rows, err := store.SearchActivities(filters)
			require.NoError(t, err)
			seen = append(seen, rows...)
			if len(rows) < filters.PageSize() {
				break
			}
			key := rows[len(rows)-1].SortKey()
			filters.Cursor = &key
		}

		require.Len(t, seen, 5)
		// no duplicates, strictly ascending days
		for i := 1; i < len(seen); i++ {
			assert.Less(t, *seen[i-1].DayOfWeekUTC, *seen[i].DayOfWeekUTC)
		}
	})
}
