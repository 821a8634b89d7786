package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"carsalesweblink/internal/config"
	"carsalesweblink/internal/middleware"
	"carsalesweblink/internal/modules/admin"
	"carsalesweblink/internal/modules/dealer"
	"carsalesweblink/internal/modules/storefront"
	"carsalesweblink/internal/modules/uploads"
	jwtsvc "carsalesweblink/internal/pkg/jwt"
	"carsalesweblink/internal/repository"
	"carsalesweblink/internal/sheets"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	ctx := context.Background()
	var opts []option.ClientOption
	if cfg.GoogleCredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.GoogleCredentialsJSON)))
	} else if cfg.GoogleCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleCredentialsFile))
	}
	store, err := sheets.NewGoogleStore(ctx, cfg.SpreadsheetID, opts...)
	if err != nil {
		log.Fatal(err)
	}

	tabs := repository.NewDealerTabs(store, cfg)
	dealerRepo := repository.NewDealerRepository(store, cfg)
	vehicleRepo := repository.NewVehicleRepository(store, tabs)
	leadRepo := repository.NewLeadRepository(store, tabs)
	settingsRepo := repository.NewSettingsRepository(store, cfg)

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	storefrontService := storefront.NewService(dealerRepo, vehicleRepo, leadRepo, settingsRepo)
	storefrontHandler := storefront.NewHandler(storefrontService)

	dealerService := dealer.NewService(dealerRepo, vehicleRepo, leadRepo, j)
	dealerHandler := dealer.NewHandler(dealerService)

	adminService := admin.NewService(dealerRepo, vehicleRepo, leadRepo, settingsRepo)
	adminHandler := admin.NewHandler(adminService)

	uploadsService := uploads.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	uploadsHandler := uploads.NewHandler(uploadsService)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	api := r.Group("/api")
	{
		storefrontHandler.RegisterRoutes(api.Group("/public"))

		portal := api.Group("/dealer")
		dealerHandler.RegisterPublicRoutes(portal)
		authed := portal.Group("/")
		authed.Use(middleware.DealerAuth(j))
		{
			dealerHandler.RegisterRoutes(authed)
			uploadsHandler.RegisterRoutes(authed)
		}

		console := api.Group("/admin")
		console.Use(middleware.AdminAuth(cfg.AdminToken))
		{
			adminHandler.RegisterRoutes(console)
		}
	}

	// The three static front-ends.
	r.Static("/store", "./public")
	r.Static("/portal", "./portal")
	r.Static("/console", "./admin")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
