package endpoints

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/db"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api/site/packets"
	"github.com/Nixie-Tech-LLC/minaret/internal/model"
	"github.com/Nixie-Tech-LLC/minaret/internal/redis"
)

// SubmittedMessage is shown to the visitor after a form is accepted.
const SubmittedMessage = "Form submitted successfully! We will contact you soon."

// FormModule mounts the application form endpoint (/forms/:kind)
func FormModule(store db.Store, limiter redis.Limiter) api.Module {
	if limiter == nil {
		limiter = redis.NoopLimiter{}
	}
	ctl := &FormController{store: store, limiter: limiter}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/forms/:kind", ctl.submit)
	})
}

type FormController struct {
	store   db.Store
	limiter redis.Limiter
}

// POST /api/site/forms/:kind
func (f *FormController) submit(ctx *gin.Context) (any, *api.APIError) {
	kind := ctx.Param("kind")
	if !model.IsApplicationKind(kind) {
		return nil, api.NotFound("unknown form " + kind)
	}

	var request packets.ApplicationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	clientIP := ctx.ClientIP()
	allowed, err := f.limiter.Allow(ctx.Request.Context(), clientIP)
	if err != nil {
		// a broken limiter must not take the forms down
		log.Warn().Err(err).Str("client_ip", clientIP).Msg("rate limiter unavailable")
		allowed = true
	}
	if !allowed {
		return nil, &api.APIError{Code: http.StatusTooManyRequests, Message: "too many submissions, please try again later"}
	}

	app, err := f.store.CreateApplication(ctx.Request.Context(), model.Application{
		Reference: uuid.NewString(),
		Kind:      kind,
		FullName:  strings.TrimSpace(request.FullName),
		Email:     strings.TrimSpace(request.Email),
		Phone:     strings.TrimSpace(request.Phone),
		Address:   request.Address,
		Fields:    model.Fields(request.Fields),
		ClientIP:  clientIP,
	})
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("failed to store application")
		return nil, api.Internal("could not submit form")
	}

	log.Info().Str("kind", kind).Str("reference", app.Reference).Msg("application received")
	return packets.ApplicationResponse{
		Reference: app.Reference,
		Kind:      app.Kind,
		Message:   SubmittedMessage,
	}, nil
}
