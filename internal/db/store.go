// exposes a Store interface that is passed to API calls w/ param requirements
package db

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Playtura-App/playtura/internal/model"
	"github.com/Playtura-App/playtura/internal/search"
)

type Store interface {
	// user functions
	GetOrCreateUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, name *string) error

	// organization functions
	CreateOrganization(name string, description *string, contactEmail string, createdBy int) (model.Organization, error)
	GetOrganizationByID(id uuid.UUID) (model.Organization, error)
	ListOrganizations(ownerID int) ([]model.Organization, error)
	UpdateOrganization(id uuid.UUID, name string, description *string, contactEmail string) error
	DeleteOrganization(id uuid.UUID) error

	// location functions
	CreateLocation(organizationID uuid.UUID, name, address, city string) (model.Location, error)
	GetLocationByID(id uuid.UUID) (model.Location, error)
	ListLocations(organizationID uuid.UUID) ([]model.Location, error)
	DeleteLocation(id uuid.UUID) error

	// activity functions
	CreateActivity(organizationID, locationID uuid.UUID, name, description, category string, minAge, maxAge int) (model.Activity, error)
	GetActivityByID(id uuid.UUID) (model.Activity, error)
	ListActivities(organizationID uuid.UUID) ([]model.Activity, error)
	UpdateActivity(id uuid.UUID, name, description, category *string, minAge, maxAge *int) error
	SetActivityImage(id uuid.UUID, imageURL string) error
	DeleteActivity(id uuid.UUID) error

	// pricing functions
	CreatePricingPlan(activityID uuid.UUID, name string, priceCents int, currency string, period model.PricingPeriod) (model.PricingPlan, error)
	GetPricingPlanByID(id uuid.UUID) (model.PricingPlan, error)
	ListPricingPlans(activityID uuid.UUID) ([]model.PricingPlan, error)
	DeletePricingPlan(id uuid.UUID) error

	// schedule functions
	CreateScheduleEntry(entry model.ScheduleEntry) (model.ScheduleEntry, error)
	GetScheduleEntryByID(id uuid.UUID) (model.ScheduleEntry, error)
	ListScheduleEntries(activityID uuid.UUID) ([]model.ScheduleEntry, error)
	DeleteScheduleEntry(id uuid.UUID) error

	// search functions
	SearchActivities(filters search.Filters) ([]ActivitySearchRow, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}
