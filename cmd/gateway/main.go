package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"suriname/internal/backend"
	"suriname/internal/config"
	"suriname/internal/middleware"
	"suriname/internal/modules/auth"
	"suriname/internal/modules/customer"
	"suriname/internal/modules/delivery"
	"suriname/internal/modules/export"
	"suriname/internal/modules/menu"
	"suriname/internal/modules/payment"
	"suriname/internal/modules/prediction"
	"suriname/internal/modules/product"
	"suriname/internal/modules/quote"
	"suriname/internal/modules/request"
	"suriname/internal/modules/staff"
	"suriname/internal/session"
	"suriname/internal/status"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store, err := session.OpenStore(cfg.StorePath)
	if err != nil {
		log.Fatal(err)
	}

	// The client's 401 hook tears down the session that issued the
	// failing call. The session service is built right after, so the
	// hook resolves it through this variable.
	var sessions *session.Service
	client := backend.New(cfg.APIBase,
		backend.WithTimeout(cfg.HTTPTimeout),
		backend.WithLogger(log.Printf),
		backend.WithUnauthorizedHook(func(ctx context.Context) {
			if sessions != nil {
				sessions.UnauthorizedHook()(ctx)
			}
		}),
	)
	sessions = session.NewService(store, client, cfg.SessionTTL, log.Printf)

	authHandler := auth.NewHandler(sessions, client, cfg.AppEnv != "local")
	menuHandler := menu.NewHandler()
	customerHandler := customer.NewHandler(client, cfg.Debounce)
	productHandler := product.NewHandler(client, sessions)
	requestHandler := request.NewHandler(request.NewService(client, sessions, log.Printf))
	paymentHandler := payment.NewHandler(client)
	quoteHandler := quote.NewHandler(client)
	deliveryHandler := delivery.NewHandler(client)
	staffHandler := staff.NewHandler(client)
	predictionHandler := prediction.NewHandler(client)
	exportHandler := export.NewHandler(client)

	if cfg.AppEnv != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	api := r.Group("/api")
	{
		authHandler.RegisterPublicRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.SessionAuth(sessions))
		{
			authHandler.RegisterRoutes(protected)
			menuHandler.RegisterRoutes(protected)
			requestHandler.RegisterRoutes(protected)
			predictionHandler.RegisterRoutes(protected)

			office := protected.Group("/")
			office.Use(middleware.StaffOrAdmin())
			{
				customerHandler.RegisterRoutes(office)
				productHandler.RegisterRoutes(office)
				paymentHandler.RegisterRoutes(office)
				quoteHandler.RegisterRoutes(office)
				deliveryHandler.RegisterRoutes(office)
				exportHandler.RegisterRoutes(office)
				staffHandler.RegisterEngineerRoutes(office)
			}

			admin := protected.Group("/")
			admin.Use(middleware.RequireRole(status.RoleAdmin))
			{
				staffHandler.RegisterRoutes(admin)
			}
		}
	}

	log.Printf("gateway listening on %s (backend %s)", cfg.ListenAddr, cfg.APIBase)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
