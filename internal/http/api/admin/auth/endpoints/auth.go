package endpoints

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/db"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api/admin/auth/packets"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/minaret/internal/model"
)

// AuthPublicModule mounts public auth endpoints (/auth/signup, /auth/login)
func AuthPublicModule(jwtSecret string, store db.Store) api.Module {
	ctl := newAccountManager(jwtSecret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/auth/signup", ctl.userSignup)
		c.PUBLIC_POST("/auth/login", ctl.userLogin)
	})
}

// AuthSessionModule mounts private session/profile endpoints (JWT required)
func AuthSessionModule(jwtSecret string, store db.Store) api.Module {
	ctl := newAccountManager(jwtSecret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/current_profile", ctl.getCurrentProfile)
		c.PUT("/auth/current_profile", ctl.updateCurrentProfile)
	})
}

type AccountManager struct {
	jwtSecret string
	store     db.Store
}

func newAccountManager(secret string, store db.Store) *AccountManager {
	return &AccountManager{jwtSecret: secret, store: store}
}

// POST /api/admin/auth/signup
func (a *AccountManager) userSignup(ctx *gin.Context) (any, *api.APIError) {
	var request packets.SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	email := strings.ToLower(strings.TrimSpace(request.Email))

	if existing, _ := a.store.GetUserByEmail(ctx.Request.Context(), email); existing != nil {
		log.Warn().Str("email", email).Msg("signup email already registered")
		return nil, &api.APIError{Code: http.StatusConflict, Message: "email already registered"}
	}

	hashed, err := middleware.HashPassword(request.Password)
	if err != nil {
		return nil, api.Internal("could not hash password")
	}

	userID, err := a.store.CreateUser(ctx.Request.Context(), email, hashed, request.Name)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to create user")
		return nil, api.Internal("could not create user")
	}

	token, err := middleware.GenerateJWT(userID, a.jwtSecret)
	if err != nil {
		return nil, api.Internal("could not generate token")
	}

	log.Info().Int("user_id", userID).Msg("admin account created")
	return packets.TokenResponse{Token: token}, nil
}

// POST /api/admin/auth/login
func (a *AccountManager) userLogin(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	email := strings.ToLower(strings.TrimSpace(request.Email))

	foundUser, err := a.store.GetUserByEmail(ctx.Request.Context(), email)
	if err != nil || foundUser == nil || !middleware.CheckPassword(foundUser.HashedPassword, request.Password) {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "invalid credentials"}
	}

	token, err := middleware.GenerateJWT(foundUser.ID, a.jwtSecret)
	if err != nil {
		return nil, api.Internal("could not generate token")
	}

	return packets.TokenResponse{Token: token}, nil
}

// GET /api/admin/auth/current_profile
func (a *AccountManager) getCurrentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return packets.NewProfileResponse(user), nil
}

// PUT /api/admin/auth/current_profile
func (a *AccountManager) updateCurrentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateCurrentProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	email := strings.ToLower(strings.TrimSpace(request.Email))

	if email != user.Email {
		if other, _ := a.store.GetUserByEmail(ctx.Request.Context(), email); other != nil {
			return nil, &api.APIError{Code: http.StatusConflict, Message: "email already in use"}
		}
	}

	if err := a.store.UpdateUserProfile(ctx.Request.Context(), user.ID, email, request.Name); err != nil {
		log.Error().Err(err).Int("user_id", user.ID).Msg("failed to update profile")
		return nil, api.Internal("could not update profile")
	}

	updated, err := a.store.GetUserByID(ctx.Request.Context(), user.ID)
	if err != nil {
		return nil, api.Internal("could not fetch updated profile")
	}

	return packets.NewProfileResponse(updated), nil
}
