package auth

import "github.com/rs/zerolog/log"

// Sender delivers a login code to an email address. Actual mail transport
// lives outside this service; deployments plug in their provider here.
type Sender interface {
	SendCode(email, code string) error
}

// LogSender writes codes to the log instead of sending mail. Development only.
type LogSender struct{}

func (LogSender) SendCode(email, code string) error {
	log.Info().Str("email", email).Str("code", code).Msg("login code issued (log sender)")
	return nil
}
