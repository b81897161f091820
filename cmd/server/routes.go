package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/minaret/internal/config"
	"github.com/Nixie-Tech-LLC/minaret/internal/db"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	authapi "github.com/Nixie-Tech-LLC/minaret/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/Nixie-Tech-LLC/minaret/internal/http/api/admin/control/endpoints"
	siteapi "github.com/Nixie-Tech-LLC/minaret/internal/http/api/site/endpoints"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/templates"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
	"github.com/Nixie-Tech-LLC/minaret/internal/redis"
	"github.com/Nixie-Tech-LLC/minaret/internal/storage"
)

// Services are the dependencies the route modules are built from.
type Services struct {
	Store    db.Store
	Provider *prayer.Provider
	Limiter  redis.Limiter
	Storage  storage.Storage
}

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svc Services) {
	r.SetHTMLTemplate(templates.MustLoad())
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	loc := cfg.Location()

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/site",
	},
		siteapi.PrayerModule(svc.Provider, loc, cfg.City),
		siteapi.FormModule(svc.Store, svc.Limiter),
		siteapi.ProjectModule(svc.Store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/integrations",
	},
		siteapi.IntegrationsModule(svc.Provider, loc, cfg.City),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(cfg.SecretKey, svc.Store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: cfg.SecretKey,
		Store:     svc.Store,
	},
		// session endpoints that require auth
		authapi.AuthSessionModule(cfg.SecretKey, svc.Store),
		// control modules
		adminapi.TimetableModule(svc.Store, svc.Provider),
		adminapi.ApplicationModule(svc.Store),
		adminapi.ProjectModule(svc.Store),
		adminapi.SlideModule(svc.Store, svc.Storage),
	)

	// Static content
	if !cfg.UseSpaces {
		r.Static(uploadsPrefix, cfg.UploadDir)
	}
}
