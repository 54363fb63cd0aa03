package endpoints

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Playtura-App/playtura/internal/auth"
	"github.com/Playtura-App/playtura/internal/db"
	"github.com/Playtura-App/playtura/internal/http/api"
	"github.com/Playtura-App/playtura/internal/http/api/auth/packets"
	"github.com/Playtura-App/playtura/internal/http/middleware"
	"github.com/Playtura-App/playtura/internal/model"
)

// AuthPublicModule mounts the passwordless login endpoints
// (/auth/request_code, /auth/verify_code).
func AuthPublicModule(jwtSecret string, store db.Store, codes *auth.CodeStore, sender auth.Sender) api.Module {
	ctl := newAccountManager(jwtSecret, store, codes, sender)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/auth/request_code", ctl.requestCode)
		c.PUBLIC_POST("/auth/verify_code", ctl.verifyCode)
	})
}

// AuthSessionModule mounts private session/profile endpoints (JWT required).
func AuthSessionModule(jwtSecret string, store db.Store) api.Module {
	ctl := newAccountManager(jwtSecret, store, nil, nil)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/current_profile", ctl.getCurrentProfile)
		c.PUT("/auth/current_profile", ctl.updateCurrentProfile)
	})
}

type AccountManager struct {
	jwtSecret string
	store     db.Store
	codes     *auth.CodeStore
	sender    auth.Sender
}

func newAccountManager(secret string, store db.Store, codes *auth.CodeStore, sender auth.Sender) *AccountManager {
	return &AccountManager{jwtSecret: secret, store: store, codes: codes, sender: sender}
}

// POST /api/public/auth/request_code
func (a *AccountManager) requestCode(ctx *gin.Context) (any, *api.APIError) {
	var request packets.RequestCodeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	email := strings.ToLower(strings.TrimSpace(request.Email))

	code, err := a.codes.Issue(ctx.Request.Context(), email)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not issue code"}
	}
	if err := a.sender.SendCode(email, code); err != nil {
		log.Error().Err(err).Msg("failed to send login code")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not send code"}
	}

	// The response never says whether the email is known; accounts are
	// created lazily on first successful verification.
	return gin.H{"status": "code sent"}, nil
}

// POST /api/public/auth/verify_code
func (a *AccountManager) verifyCode(ctx *gin.Context) (any, *api.APIError) {
	var request packets.VerifyCodeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	email := strings.ToLower(strings.TrimSpace(request.Email))

	if err := a.codes.Verify(ctx.Request.Context(), email, request.Code); err != nil {
		if errors.Is(err, auth.ErrCodeMismatch) {
			return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "invalid or expired code"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not verify code"}
	}

	user, err := a.store.GetOrCreateUserByEmail(email)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load user"}
	}

	token, err := middleware.GenerateJWT(user.ID, a.jwtSecret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	return gin.H{"token": token}, nil
}

// GET /api/admin/auth/current_profile
func (a *AccountManager) getCurrentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return profileResponse(user), nil
}

// PUT /api/admin/auth/current_profile
func (a *AccountManager) updateCurrentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateCurrentProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := a.store.UpdateUserProfile(user.ID, request.Name); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update profile"}
	}

	updated, err := a.store.GetUserByID(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated profile"}
	}

	return profileResponse(updated), nil
}

func profileResponse(u *model.User) packets.ProfileResponse {
	return packets.ProfileResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}
