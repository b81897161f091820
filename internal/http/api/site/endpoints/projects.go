package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/db"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api/site/packets"
)

// ProjectModule mounts the public project listing and the hero slides
func ProjectModule(store db.Store) api.Module {
	ctl := &ProjectController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/projects", ctl.listProjects)
		c.PUBLIC_GET("/projects/:id", ctl.getProject)
		c.PUBLIC_GET("/slides", ctl.listSlides)
	})
}

type ProjectController struct {
	store db.Store
}

// GET /api/site/projects?category=&search=&limit=&offset=
func (p *ProjectController) listProjects(ctx *gin.Context) (any, *api.APIError) {
	var query packets.ProjectQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if query.Limit == 0 {
		query.Limit = db.DefaultPageSize
	}

	projects, total, err := p.store.ListProjects(ctx.Request.Context(), db.ProjectFilter{
		Category: query.Category,
		Search:   query.Search,
		Limit:    query.Limit,
		Offset:   query.Offset,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list projects")
		return nil, api.Internal("could not list projects")
	}

	resp := packets.ProjectListResponse{
		Projects:   make([]packets.ProjectResponse, 0, len(projects)),
		Total:      total,
		NextOffset: query.Offset + len(projects),
	}
	for _, proj := range projects {
		resp.Projects = append(resp.Projects, packets.NewProjectResponse(proj))
	}
	resp.HasMore = resp.NextOffset < total
	return resp, nil
}

// GET /api/site/projects/:id
func (p *ProjectController) getProject(ctx *gin.Context) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, api.BadRequest("invalid project id")
	}

	proj, err := p.store.GetProject(ctx.Request.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, api.NotFound("project not found")
	}
	if err != nil {
		log.Error().Err(err).Int("project_id", id).Msg("failed to load project")
		return nil, api.Internal("could not load project")
	}
	return packets.NewProjectResponse(proj), nil
}

// GET /api/site/slides
func (p *ProjectController) listSlides(ctx *gin.Context) (any, *api.APIError) {
	slides, err := p.store.ListSlides(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list slides")
		return nil, api.Internal("could not list slides")
	}

	resp := make([]packets.SlideResponse, 0, len(slides))
	for _, s := range slides {
		resp = append(resp, packets.NewSlideResponse(s))
	}
	return resp, nil
}
