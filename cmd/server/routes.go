package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Playtura-App/playtura/internal/auth"
	"github.com/Playtura-App/playtura/internal/db"
	"github.com/Playtura-App/playtura/internal/http/api"
	adminapi "github.com/Playtura-App/playtura/internal/http/api/admin/endpoints"
	authapi "github.com/Playtura-App/playtura/internal/http/api/auth/endpoints"
	publicapi "github.com/Playtura-App/playtura/internal/http/api/public/endpoints"
	"github.com/Playtura-App/playtura/internal/storage"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	env Environment,
	store db.Store,
	storageSystem storage.Storage,
	codes *auth.CodeStore,
	sender auth.Sender,
) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
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
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/public",
	},
		publicapi.SearchModule(store),
		authapi.AuthPublicModule(env.SecretKey, store, codes, sender),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		adminapi.OrganizationModule(store),
		adminapi.ActivityModule(store, storageSystem),
		adminapi.ScheduleModule(store),
		// session endpoints that require auth
		authapi.AuthSessionModule(env.SecretKey, store),
	)

	// Locally stored activity images
	if !env.UseObjectStorage {
		r.Static("/uploads", "./uploads")
	}
}
