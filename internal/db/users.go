package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Playtura-App/playtura/internal/model"
)

// fetches a user by ID. Returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, email, name, created_at, updated_at
	FROM users
	WHERE id = $1;
	`
	err := s.db.Get(&u, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get user by id")
		return nil, err
	}
	return &u, nil
}

// returns the user for an email, provisioning a row on first sight. Accounts
// are passwordless so an email that just proved OTP possession is the whole
// identity.
func (s *pgStore) GetOrCreateUserByEmail(email string) (*model.User, error) {
	var u model.User
	query := `
	INSERT INTO users (email, created_at, updated_at)
	VALUES ($1, now(), now())
	ON CONFLICT (email) DO UPDATE SET updated_at = now()
	RETURNING id, email, name, created_at, updated_at;
	`
	if err := s.db.Get(&u, query, email); err != nil {
		log.Error().Err(err).Msg("failed to get or create user")
		return nil, err
	}
	return &u, nil
}

func (s *pgStore) UpdateUserProfile(id int, name *string) error {
	_, err := s.db.Exec(`
	UPDATE users SET name = $2, updated_at = now() WHERE id = $1;
	`, id, name)
	if err != nil {
		log.Error().Err(err).Int("user_id", id).Msg("failed to update user profile")
	}
	return err
}
