package db

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Playtura-App/playtura/internal/model"
)

func (s *pgStore) CreateOrganization(name string, description *string, contactEmail string, createdBy int) (model.Organization, error) {
	var o model.Organization
	const q = `
	INSERT INTO organizations (id, name, description, contact_email, created_by, created_at, updated_at)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, now(), now())
	RETURNING id, name, description, contact_email, created_by, created_at, updated_at;`
	if err := s.db.Get(&o, q, name, description, contactEmail, createdBy); err != nil {
		log.Error().Err(err).Msg("CreateOrganization failed")
		return model.Organization{}, err
	}
	return o, nil
}

func (s *pgStore) GetOrganizationByID(id uuid.UUID) (model.Organization, error) {
	var o model.Organization
	err := s.db.Get(&o, `
	SELECT id, name, description, contact_email, created_by, created_at, updated_at
	  FROM organizations WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("organization_id", id.String()).Msg("GetOrganizationByID failed")
	}
	return o, err
}

func (s *pgStore) ListOrganizations(ownerID int) ([]model.Organization, error) {
	var out []model.Organization
	const q = `
	SELECT id, name, description, contact_email, created_by, created_at, updated_at
	  FROM organizations
	 WHERE created_by = $1
	 ORDER BY created_at, id;`
	if err := s.db.Select(&out, q, ownerID); err != nil {
		log.Error().Err(err).Msg("ListOrganizations failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateOrganization(id uuid.UUID, name string, description *string, contactEmail string) error {
	_, err := s.db.Exec(`
	UPDATE organizations
	   SET name = $2, description = $3, contact_email = $4, updated_at = now()
	 WHERE id = $1;`, id, name, description, contactEmail)
	if err != nil {
		log.Error().Err(err).Str("organization_id", id.String()).Msg("UpdateOrganization failed")
	}
	return err
}

func (s *pgStore) DeleteOrganization(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM organizations WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("organization_id", id.String()).Msg("DeleteOrganization failed")
	}
	return err
}

func (s *pgStore) CreateLocation(organizationID uuid.UUID, name, address, city string) (model.Location, error) {
	var l model.Location
	const q = `
	INSERT INTO locations (id, organization_id, name, address, city, created_at, updated_at)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, now(), now())
	RETURNING id, organization_id, name, address, city, created_at, updated_at;`
	if err := s.db.Get(&l, q, organizationID, name, address, city); err != nil {
		log.Error().Err(err).Msg("CreateLocation failed")
		return model.Location{}, err
	}
	return l, nil
}

func (s *pgStore) GetLocationByID(id uuid.UUID) (model.Location, error) {
	var l model.Location
	err := s.db.Get(&l, `
	SELECT id, organization_id, name, address, city, created_at, updated_at
	  FROM locations WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("location_id", id.String()).Msg("GetLocationByID failed")
	}
	return l, err
}

func (s *pgStore) ListLocations(organizationID uuid.UUID) ([]model.Location, error) {
	var out []model.Location
	const q = `
	SELECT id, organization_id, name, address, city, created_at, updated_at
	  FROM locations
	 WHERE organization_id = $1
	 ORDER BY name, id;`
	if err := s.db.Select(&out, q, organizationID); err != nil {
		log.Error().Err(err).Msg("ListLocations failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) DeleteLocation(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM locations WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("location_id", id.String()).Msg("DeleteLocation failed")
	}
	return err
}
