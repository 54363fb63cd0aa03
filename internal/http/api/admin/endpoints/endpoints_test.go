package endpoints

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Playtura-App/playtura/internal/db"
	"github.com/Playtura-App/playtura/internal/http/api"
	"github.com/Playtura-App/playtura/internal/model"
)

var errNotFound = errors.New("not found")

// fakeAdminStore backs the ownership tests; the embedded interface panics if
// a handler wanders anywhere else.
type fakeAdminStore struct {
	db.Store
	orgs       map[uuid.UUID]model.Organization
	activities map[uuid.UUID]model.Activity
	locations  map[uuid.UUID]model.Location
	entries    map[uuid.UUID]model.ScheduleEntry
	plans      map[uuid.UUID]model.PricingPlan
	deleted    []uuid.UUID
}

func (f *fakeAdminStore) GetOrganizationByID(id uuid.UUID) (model.Organization, error) {
	o, ok := f.orgs[id]
	if !ok {
		return model.Organization{}, errNotFound
	}
	return o, nil
}

func (f *fakeAdminStore) GetActivityByID(id uuid.UUID) (model.Activity, error) {
	a, ok := f.activities[id]
	if !ok {
		return model.Activity{}, errNotFound
	}
	return a, nil
}

func (f *fakeAdminStore) GetLocationByID(id uuid.UUID) (model.Location, error) {
	l, ok := f.locations[id]
	if !ok {
		return model.Location{}, errNotFound
	}
	return l, nil
}

func (f *fakeAdminStore) GetScheduleEntryByID(id uuid.UUID) (model.ScheduleEntry, error) {
	e, ok := f.entries[id]
	if !ok {
		return model.ScheduleEntry{}, errNotFound
	}
	return e, nil
}

func (f *fakeAdminStore) GetPricingPlanByID(id uuid.UUID) (model.PricingPlan, error) {
	p, ok := f.plans[id]
	if !ok {
		return model.PricingPlan{}, errNotFound
	}
	return p, nil
}

func (f *fakeAdminStore) DeleteScheduleEntry(id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAdminStore) DeletePricingPlan(id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAdminStore) DeleteLocation(id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

// newFixture seeds one organization owned by user 1 with one activity.
func newFixture() (*fakeAdminStore, model.Activity) {
	org := model.Organization{ID: uuid.New(), Name: "Test Club", CreatedBy: 1}
	activity := model.Activity{ID: uuid.New(), OrganizationID: org.ID, Name: "Night Swim"}
	store := &fakeAdminStore{
		orgs:       map[uuid.UUID]model.Organization{org.ID: org},
		activities: map[uuid.UUID]model.Activity{activity.ID: activity},
		locations:  map[uuid.UUID]model.Location{},
		entries:    map[uuid.UUID]model.ScheduleEntry{},
		plans:      map[uuid.UUID]model.PricingPlan{},
	}
	return store, activity
}

func newAdminRouter(store db.Store, user *model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Middleware: []gin.HandlerFunc{func(c *gin.Context) {
			c.Set("currentUser", user)
			c.Next()
		}},
	},
		OrganizationModule(store),
		ActivityModule(store, nil),
		ScheduleModule(store),
	)
	return r
}

func doDelete(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDeleteScheduleEntryRequiresOwnership(t *testing.T) {
	store, activity := newFixture()
	entry := model.ScheduleEntry{ID: uuid.New(), ActivityID: activity.ID}
	store.entries[entry.ID] = entry
	path := "/api/admin/schedule/" + entry.ID.String()

	w := doDelete(t, newAdminRouter(store, &model.User{ID: 2}), path)
	if w.Code != http.StatusForbidden {
		t.Fatalf("stranger delete: status %d, want 403: %s", w.Code, w.Body.String())
	}
	if len(store.deleted) != 0 {
		t.Fatalf("stranger delete reached the store: %v", store.deleted)
	}

	w = doDelete(t, newAdminRouter(store, &model.User{ID: 1}), path)
	if w.Code != http.StatusOK {
		t.Fatalf("owner delete: status %d: %s", w.Code, w.Body.String())
	}
	if len(store.deleted) != 1 || store.deleted[0] != entry.ID {
		t.Fatalf("owner delete did not reach the store: %v", store.deleted)
	}
}

func TestDeletePricingPlanRequiresOwnership(t *testing.T) {
	store, activity := newFixture()
	plan := model.PricingPlan{ID: uuid.New(), ActivityID: activity.ID}
	store.plans[plan.ID] = plan
	path := "/api/admin/pricing/" + plan.ID.String()

	w := doDelete(t, newAdminRouter(store, &model.User{ID: 2}), path)
	if w.Code != http.StatusForbidden {
		t.Fatalf("stranger delete: status %d, want 403: %s", w.Code, w.Body.String())
	}
	if len(store.deleted) != 0 {
		t.Fatalf("stranger delete reached the store: %v", store.deleted)
	}

	w = doDelete(t, newAdminRouter(store, &model.User{ID: 1}), path)
	if w.Code != http.StatusOK {
		t.Fatalf("owner delete: status %d: %s", w.Code, w.Body.String())
	}
	if len(store.deleted) != 1 || store.deleted[0] != plan.ID {
		t.Fatalf("owner delete did not reach the store: %v", store.deleted)
	}
}

func TestDeleteMissingScheduleEntryIs404(t *testing.T) {
	store, _ := newFixture()
	w := doDelete(t, newAdminRouter(store, &model.User{ID: 1}), "/api/admin/schedule/"+uuid.NewString())
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404: %s", w.Code, w.Body.String())
	}
}

func TestDeleteLocationScopedToOrganization(t *testing.T) {
	store, _ := newFixture()
	var ownOrg model.Organization
	for _, o := range store.orgs {
		ownOrg = o
	}

	otherOrg := model.Organization{ID: uuid.New(), CreatedBy: 2}
	store.orgs[otherOrg.ID] = otherOrg
	foreign := model.Location{ID: uuid.New(), OrganizationID: otherOrg.ID}
	store.locations[foreign.ID] = foreign
	mine := model.Location{ID: uuid.New(), OrganizationID: ownOrg.ID}
	store.locations[mine.ID] = mine

	router := newAdminRouter(store, &model.User{ID: 1})

	// a location under someone else's organization is invisible here
	w := doDelete(t, router, "/api/admin/organizations/"+ownOrg.ID.String()+"/locations/"+foreign.ID.String())
	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign location: status %d, want 404: %s", w.Code, w.Body.String())
	}
	if len(store.deleted) != 0 {
		t.Fatalf("foreign location delete reached the store: %v", store.deleted)
	}

	w = doDelete(t, router, "/api/admin/organizations/"+ownOrg.ID.String()+"/locations/"+mine.ID.String())
	if w.Code != http.StatusOK {
		t.Fatalf("own location: status %d: %s", w.Code, w.Body.String())
	}
	if len(store.deleted) != 1 || store.deleted[0] != mine.ID {
		t.Fatalf("own location delete did not reach the store: %v", store.deleted)
	}
}
