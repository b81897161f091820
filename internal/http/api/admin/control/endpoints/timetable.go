package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/db"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api/admin/control/packets"
	"github.com/Nixie-Tech-LLC/minaret/internal/model"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
)

// TimetableModule mounts the base-time table endpoints
func TimetableModule(store db.Store, provider *prayer.Provider) api.Module {
	ctl := &TimetableController{store: store, provider: provider}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/timetable", ctl.getTimetable)
		c.PUT("/timetable", ctl.updateTimetable)
	})
}

type TimetableController struct {
	store    db.Store
	provider *prayer.Provider
}

// GET /api/admin/timetable
func (t *TimetableController) getTimetable(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return packets.NewTimetableResponse(t.provider.Estimator().Table()), nil
}

// PUT /api/admin/timetable
func (t *TimetableController) updateTimetable(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.TimetableRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	table, err := request.Table()
	if err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if err := table.Validate(); err != nil {
		return nil, api.BadRequest(err.Error())
	}

	if err := t.store.SaveTimetable(ctx.Request.Context(), table, user.ID); err != nil {
		log.Error().Err(err).Int("user_id", user.ID).Msg("failed to save timetable")
		return nil, api.Internal("could not save timetable")
	}
	t.provider.SetTable(table)

	log.Info().
		Int("user_id", user.ID).
		Str("fajr", table.Fajr.String()).
		Str("isha", table.Isha.String()).
		Msg("timetable updated")
	return packets.NewTimetableResponse(table), nil
}
