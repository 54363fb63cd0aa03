package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// ErrCodeMismatch is returned when no code is pending for the email or the
// submitted code does not match. Callers cannot tell the two apart, so an
// attacker cannot probe which emails have a login in flight.
var ErrCodeMismatch = errors.New("invalid or expired code")

const codeDigits = 6

// CodeStore keeps one-time login codes in redis, bcrypt-hashed so a dumped
// keyspace does not leak usable codes. Built around an injected client.
type CodeStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCodeStore(rdb *redis.Client, ttl time.Duration) *CodeStore {
	return &CodeStore{rdb: rdb, ttl: ttl}
}

func codeKey(email string) string { return "otp:" + email }

// Issue generates a fresh 6-digit code for the email, stores its hash with the
// configured TTL and returns the plaintext for delivery. Issuing again before
// the previous code is used replaces it.
func (s *CodeStore) Issue(ctx context.Context, email string) (string, error) {
	code, err := newCode()
	if err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("could not hash code: %w", err)
	}
	if err := s.rdb.Set(ctx, codeKey(email), string(hashed), s.ttl).Err(); err != nil {
		log.Error().Err(err).Msg("failed to store login code")
		return "", err
	}
	return code, nil
}

// Verify checks a submitted code against the pending hash and consumes it on
// success; a code can only be redeemed once.
func (s *CodeStore) Verify(ctx context.Context, email, code string) error {
	hashed, err := s.rdb.Get(ctx, codeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrCodeMismatch
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to load login code")
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(hashed), []byte(code)) != nil {
		return ErrCodeMismatch
	}
	if err := s.rdb.Del(ctx, codeKey(email)).Err(); err != nil {
		log.Error().Err(err).Msg("failed to consume login code")
		return err
	}
	return nil
}

// newCode draws a uniformly random zero-padded 6-digit string.
func newCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("could not draw code: %w", err)
	}
	return fmt.Sprintf("%0*d", codeDigits, n), nil
}
