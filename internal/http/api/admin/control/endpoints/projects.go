package endpoints

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/db"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api/admin/control/packets"
	"github.com/Nixie-Tech-LLC/minaret/internal/model"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
)

const defaultCurrency = "LKR"

// ProjectModule mounts project management
func ProjectModule(store db.Store) api.Module {
	ctl := &ProjectController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/projects", ctl.createProject)
		c.PUT("/projects/:id/progress", ctl.updateProgress)
		c.DELETE("/projects/:id", ctl.deleteProject)
	})
}

type ProjectController struct {
	store db.Store
}

// POST /api/admin/projects
func (p *ProjectController) createProject(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	start, err := time.Parse(prayer.DateLayout, request.StartDate)
	if err != nil {
		return nil, api.BadRequest("invalid start_date")
	}
	var end *time.Time
	if request.EndDate != nil {
		parsed, err := time.Parse(prayer.DateLayout, *request.EndDate)
		if err != nil {
			return nil, api.BadRequest("invalid end_date")
		}
		if parsed.Before(start) {
			return nil, api.BadRequest("end_date is before start_date")
		}
		end = &parsed
	}

	currency := request.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	project, err := p.store.CreateProject(ctx.Request.Context(), db.NewProject{
		Title:       request.Title,
		Category:    request.Category,
		Description: request.Description,
		Budget:      request.Budget,
		Currency:    currency,
		Progress:    request.Progress,
		StartDate:   start,
		EndDate:     end,
		ImageURL:    request.ImageURL,
		Volunteers:  request.Volunteers,
	}, user.ID)
	if err != nil {
		log.Error().Err(err).Int("user_id", user.ID).Msg("failed to create project")
		return nil, api.Internal("could not create project")
	}

	log.Info().Int("project_id", project.ID).Str("category", project.Category).Msg("project created")
	return project, nil
}

// PUT /api/admin/projects/:id/progress
func (p *ProjectController) updateProgress(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, api.BadRequest("invalid project id")
	}

	var request packets.UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	err = p.store.UpdateProjectProgress(ctx.Request.Context(), id, *request.Progress, *request.Volunteers)
	if errors.Is(err, db.ErrNotFound) {
		return nil, api.NotFound("project not found")
	}
	if err != nil {
		log.Error().Err(err).Int("project_id", id).Msg("failed to update project progress")
		return nil, api.Internal("could not update project")
	}

	project, err := p.store.GetProject(ctx.Request.Context(), id)
	if err != nil {
		return nil, api.Internal("could not fetch updated project")
	}
	return project, nil
}

// DELETE /api/admin/projects/:id
func (p *ProjectController) deleteProject(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, api.BadRequest("invalid project id")
	}

	err = p.store.DeleteProject(ctx.Request.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, api.NotFound("project not found")
	}
	if err != nil {
		log.Error().Err(err).Int("project_id", id).Msg("failed to delete project")
		return nil, api.Internal("could not delete project")
	}

	log.Info().Int("project_id", id).Int("user_id", user.ID).Msg("project deleted")
	return gin.H{"deleted": id}, nil
}
