package endpoints

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Playtura-App/playtura/internal/db"
	"github.com/Playtura-App/playtura/internal/http/api"
	"github.com/Playtura-App/playtura/internal/http/api/public/packets"
	"github.com/Playtura-App/playtura/internal/search"
)

// fakeStore stubs just the search path; the embedded interface panics if a
// handler wanders anywhere else.
type fakeStore struct {
	db.Store
	rows       []db.ActivitySearchRow
	gotFilters search.Filters
}

func (f *fakeStore) SearchActivities(filters search.Filters) ([]db.ActivitySearchRow, error) {
	f.gotFilters = filters
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	limit := filters.PageSize()
	if len(f.rows) > limit {
		return f.rows[:limit], nil
	}
	return f.rows, nil
}

func newSearchRouter(store db.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/public"}, SearchModule(store))
	return r
}

func searchRow(day, minutes int) db.ActivitySearchRow {
	return db.ActivitySearchRow{
		ScheduleID:      uuid.New(),
		ScheduleType:    "weekly",
		DayOfWeekUTC:    &day,
		StartMinutesUTC: &minutes,
		ActivityID:      uuid.New(),
		ActivityName:    "Junior Climbing",
		OrganizationID:  uuid.New(),
		LocationID:      uuid.New(),
		City:            "Oslo",
	}
}

func doSearch(t *testing.T, router *gin.Engine, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/public/activities/search"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSearchShortPageHasNoCursor(t *testing.T) {
	store := &fakeStore{rows: []db.ActivitySearchRow{searchRow(1, 540), searchRow(2, 600)}}
	router := newSearchRouter(store)

	w := doSearch(t, router, "?limit=10")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var response packets.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatal(err)
	}
	if len(response.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(response.Items))
	}
	if response.NextCursor != "" {
		t.Fatalf("short page produced a cursor: %q", response.NextCursor)
	}
}

func TestSearchFullPageEmitsCursorForLastRow(t *testing.T) {
	rows := []db.ActivitySearchRow{searchRow(1, 540), searchRow(2, 600), searchRow(3, 660)}
	store := &fakeStore{rows: rows}
	router := newSearchRouter(store)

	w := doSearch(t, router, "?limit=2")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var response packets.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatal(err)
	}
	if len(response.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(response.Items))
	}
	cursor, err := search.ParseCursor(response.NextCursor)
	if err != nil {
		t.Fatalf("next_cursor does not parse: %v", err)
	}
	if cursor.ScheduleID != rows[1].ScheduleID {
		t.Fatalf("cursor points at %s, want last returned row %s", cursor.ScheduleID, rows[1].ScheduleID)
	}
}

func TestSearchPassesFiltersThrough(t *testing.T) {
	store := &fakeStore{}
	router := newSearchRouter(store)

	w := doSearch(t, router, "?start_minutes_utc=480&end_minutes_utc=600&day_of_week_utc=2&age_min=6&city=Oslo&language=en&language=no&limit=25")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	f := store.gotFilters
	if f.StartMinutesUTC == nil || *f.StartMinutesUTC != 480 {
		t.Errorf("start minutes not bound: %v", f.StartMinutesUTC)
	}
	if f.EndMinutesUTC == nil || *f.EndMinutesUTC != 600 {
		t.Errorf("end minutes not bound: %v", f.EndMinutesUTC)
	}
	if f.DayOfWeekUTC == nil || *f.DayOfWeekUTC != 2 {
		t.Errorf("day of week not bound: %v", f.DayOfWeekUTC)
	}
	if f.City == nil || *f.City != "Oslo" {
		t.Errorf("city not bound: %v", f.City)
	}
	if len(f.Languages) != 2 {
		t.Errorf("languages not bound: %v", f.Languages)
	}
	if f.Limit != 25 {
		t.Errorf("limit = %d, want 25", f.Limit)
	}
}

func TestSearchRejectsInvertedWindow(t *testing.T) {
	router := newSearchRouter(&fakeStore{})
	w := doSearch(t, router, "?start_minutes_utc=600&end_minutes_utc=540")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestSearchRejectsBadCursor(t *testing.T) {
	router := newSearchRouter(&fakeStore{})
	for name, token := range map[string]string{
		"garbage":  "not-base64!!!",
		"bad uuid": base64.RawURLEncoding.EncodeToString([]byte(`{"schedule_id":"not-a-uuid"}`)),
	} {
		w := doSearch(t, router, "?cursor="+token)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status %d, want 400: %s", name, w.Code, w.Body.String())
		}
	}
}

func TestSearchRejectsOversizedLimit(t *testing.T) {
	router := newSearchRouter(&fakeStore{})
	w := doSearch(t, router, "?limit=500")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestSearchCursorRoundTripsThroughQuery(t *testing.T) {
	rows := []db.ActivitySearchRow{searchRow(1, 540), searchRow(2, 600)}
	store := &fakeStore{rows: rows}
	router := newSearchRouter(store)

	w := doSearch(t, router, "?limit=1")
	var response packets.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatal(err)
	}

	w = doSearch(t, router, "?limit=1&cursor="+response.NextCursor)
	if w.Code != http.StatusOK {
		t.Fatalf("second page status %d: %s", w.Code, w.Body.String())
	}
	if store.gotFilters.Cursor == nil {
		t.Fatal("cursor did not reach the store")
	}
	if store.gotFilters.Cursor.ScheduleID != rows[0].ScheduleID {
		t.Fatalf("resume position %s, want %s", store.gotFilters.Cursor.ScheduleID, rows[0].ScheduleID)
	}
}
