package db

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Playtura-App/playtura/internal/model"
)

func (s *pgStore) CreateActivity(organizationID, locationID uuid.UUID, name, description, category string, minAge, maxAge int) (model.Activity, error) {
	var a model.Activity
	const q = `
	INSERT INTO activities (id, organization_id, location_id, name, description, category, min_age, max_age, created_at, updated_at)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, now(), now())
	RETURNING id, organization_id, location_id, name, description, category, min_age, max_age, image_url, created_at, updated_at;`
	if err := s.db.Get(&a, q, organizationID, locationID, name, description, category, minAge, maxAge); err != nil {
		log.Error().Err(err).Msg("CreateActivity failed")
		return model.Activity{}, err
	}
	return a, nil
}

func (s *pgStore) GetActivityByID(id uuid.UUID) (model.Activity, error) {
	var a model.Activity
	err := s.db.Get(&a, `
	SELECT id, organization_id, location_id, name, description, category, min_age, max_age, image_url, created_at, updated_at
	  FROM activities WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("activity_id", id.String()).Msg("GetActivityByID failed")
	}
	return a, err
}

func (s *pgStore) ListActivities(organizationID uuid.UUID) ([]model.Activity, error) {
	var out []model.Activity
	const q = `
	SELECT id, organization_id, location_id, name, description, category, min_age, max_age, image_url, created_at, updated_at
	  FROM activities
	 WHERE organization_id = $1
	 ORDER BY created_at, id;`
	if err := s.db.Select(&out, q, organizationID); err != nil {
		log.Error().Err(err).Msg("ListActivities failed")
		return nil, err
	}
	return out, nil
}

// UpdateActivity applies only the provided fields; nil pointers leave the
// column untouched.
func (s *pgStore) UpdateActivity(id uuid.UUID, name, description, category *string, minAge, maxAge *int) error {
	_, err := s.db.Exec(`
	UPDATE activities
	   SET name        = COALESCE($2, name),
	       description = COALESCE($3, description),
	       category    = COALESCE($4, category),
	       min_age     = COALESCE($5, min_age),
	       max_age     = COALESCE($6, max_age),
	       updated_at  = now()
	 WHERE id = $1;`, id, name, description, category, minAge, maxAge)
	if err != nil {
		log.Error().Err(err).Str("activity_id", id.String()).Msg("UpdateActivity failed")
	}
	return err
}

func (s *pgStore) SetActivityImage(id uuid.UUID, imageURL string) error {
	_, err := s.db.Exec(`UPDATE activities SET image_url = $2, updated_at = now() WHERE id = $1;`, id, imageURL)
	if err != nil {
		log.Error().Err(err).Str("activity_id", id.String()).Msg("SetActivityImage failed")
	}
	return err
}

func (s *pgStore) DeleteActivity(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM activities WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("activity_id", id.String()).Msg("DeleteActivity failed")
	}
	return err
}

func (s *pgStore) CreatePricingPlan(activityID uuid.UUID, name string, priceCents int, currency string, period model.PricingPeriod) (model.PricingPlan, error) {
	if err := period.Valid(); err != nil {
		return model.PricingPlan{}, err
	}
	var p model.PricingPlan
	const q = `
	INSERT INTO pricing_plans (id, activity_id, name, price_cents, currency, period, created_at, updated_at)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, now(), now())
	RETURNING id, activity_id, name, price_cents, currency, period, created_at, updated_at;`
	if err := s.db.Get(&p, q, activityID, name, priceCents, currency, string(period)); err != nil {
		log.Error().Err(err).Msg("CreatePricingPlan failed")
		return model.PricingPlan{}, err
	}
	return p, nil
}

func (s *pgStore) GetPricingPlanByID(id uuid.UUID) (model.PricingPlan, error) {
	var p model.PricingPlan
	err := s.db.Get(&p, `
	SELECT id, activity_id, name, price_cents, currency, period, created_at, updated_at
	  FROM pricing_plans WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("pricing_plan_id", id.String()).Msg("GetPricingPlanByID failed")
	}
	return p, err
}

func (s *pgStore) ListPricingPlans(activityID uuid.UUID) ([]model.PricingPlan, error) {
	var out []model.PricingPlan
	const q = `
	SELECT id, activity_id, name, price_cents, currency, period, created_at, updated_at
	  FROM pricing_plans
	 WHERE activity_id = $1
	 ORDER BY price_cents, id;`
	if err := s.db.Select(&out, q, activityID); err != nil {
		log.Error().Err(err).Msg("ListPricingPlans failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) DeletePricingPlan(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM pricing_plans WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("pricing_plan_id", id.String()).Msg("DeletePricingPlan failed")
	}
	return err
}
