package endpoints

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/db"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/model"
	"github.com/Nixie-Tech-LLC/minaret/internal/storage"
)

// maxSlideSize caps a slider image upload.
const maxSlideSize = 10 << 20

// SlideModule mounts hero slider management
func SlideModule(store db.Store, storageSystem storage.Storage) api.Module {
	ctl := &SlideController{store: store, storage: storageSystem}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/slides", ctl.uploadSlide)
		c.DELETE("/slides/:id", ctl.deleteSlide)
	})
}

type SlideController struct {
	store   db.Store
	storage storage.Storage
}

// POST /api/admin/slides (multipart: image, title, caption)
func (s *SlideController) uploadSlide(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	title := strings.TrimSpace(ctx.PostForm("title"))
	if title == "" {
		return nil, api.BadRequest("title is required")
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return nil, api.BadRequest("image file is required")
	}
	if fileHeader.Size > maxSlideSize {
		return nil, &api.APIError{Code: http.StatusRequestEntityTooLarge, Message: "image is too large"}
	}

	url, err := s.storage.SaveFile(fileHeader, fileHeader.Filename)
	if errors.Is(err, storage.ErrUnsupportedType) {
		return nil, &api.APIError{Code: http.StatusUnsupportedMediaType, Message: err.Error()}
	}
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to store slide image")
		return nil, api.Internal("could not store image")
	}

	var caption *string
	if c := strings.TrimSpace(ctx.PostForm("caption")); c != "" {
		caption = &c
	}

	slide, err := s.store.CreateSlide(ctx.Request.Context(), title, caption, url, user.ID)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to create slide")
		return nil, api.Internal("could not create slide")
	}

	log.Info().Int("slide_id", slide.ID).Str("url", url).Msg("slide uploaded")
	return slide, nil
}

// DELETE /api/admin/slides/:id
func (s *SlideController) deleteSlide(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, api.BadRequest("invalid slide id")
	}

	err = s.store.DeleteSlide(ctx.Request.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, api.NotFound("slide not found")
	}
	if err != nil {
		log.Error().Err(err).Int("slide_id", id).Msg("failed to delete slide")
		return nil, api.Internal("could not delete slide")
	}
	return gin.H{"deleted": id}, nil
}
