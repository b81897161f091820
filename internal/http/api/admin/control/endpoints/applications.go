package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/db"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api/admin/control/packets"
	"github.com/Nixie-Tech-LLC/minaret/internal/model"
)

// ApplicationModule mounts the submitted-forms listing
func ApplicationModule(store db.Store) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/applications", func(ctx *gin.Context, user *model.User) (any, *api.APIError) {
			var query packets.ApplicationQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
			}

			apps, err := store.ListApplications(ctx.Request.Context(), query.Kind)
			if err != nil {
				log.Error().Err(err).Str("kind", query.Kind).Msg("failed to list applications")
				return nil, api.Internal("could not list applications")
			}
			return apps, nil
		})
	})
}
