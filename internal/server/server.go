package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/auth"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/catalog"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/checkin"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/config"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/credential"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/membership"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/notify"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/order"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	notify *notify.Service
}

func New(db *sqlx.DB, cfg *config.Config, notifyService *notify.Service) *Server {
	SetupValidation()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst),
		corsMiddleware(),
	)

	userRepo := user.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	membershipRepo := membership.NewRepository(db)
	orderRepo := order.NewRepository(db, membershipRepo)
	credentialRepo := credential.NewRepository(db)
	checkinRepo := checkin.NewRepository(db)

	userHandler := user.NewHandler(user.NewService(userRepo, cfg.JWTSecret))
	catalogHandler := catalog.NewHandler(catalogRepo)
	membershipHandler := membership.NewHandler(membership.NewService(membershipRepo))
	orderHandler := order.NewHandler(order.NewService(orderRepo, catalogRepo, userRepo, notifyService))
	credentialHandler := credential.NewHandler(credential.NewService(credentialRepo, catalogRepo))
	checkinHandler := checkin.NewHandler(checkin.NewService(checkinRepo, credentialRepo, membershipRepo, catalogRepo))

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	router.GET("/gyms", catalogHandler.ListGyms)
	router.GET("/gyms/:gymID", catalogHandler.GetGym)
	router.GET("/gyms/:gymID/occupancy", checkinHandler.Occupancy)
	router.GET("/plans", catalogHandler.ListPlans)
	router.GET("/products", catalogHandler.ListProducts)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)

		protected.POST("/orders/supplements", orderHandler.CreateSupplementOrder)
		protected.POST("/orders/subscriptions", orderHandler.CreateSubscriptionOrder)
		protected.POST("/orders/:orderID/confirm", orderHandler.Confirm)
		protected.POST("/orders/:orderID/cancel", orderHandler.Cancel)
		protected.GET("/orders", orderHandler.ListMy)
		protected.GET("/orders/:orderID", orderHandler.Get)

		protected.GET("/memberships/me", membershipHandler.GetMine)
		protected.POST("/memberships/cancel", membershipHandler.Cancel)
		protected.DELETE("/memberships/:membershipID", membershipHandler.Delete)

		protected.POST("/checkins", checkinHandler.CheckIn)
		protected.POST("/checkins/:sessionID/checkout", checkinHandler.CheckOut)
		protected.GET("/checkins", checkinHandler.ListMy)
	}

	adminMiddleware := auth.RequireRole(user.RoleAdmin)
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/gyms/:gymID/qr/rotate", credentialHandler.Rotate)
		admin.GET("/gyms/:gymID/qr", credentialHandler.GetActive)
		admin.POST("/gyms/:gymID/qr/deactivate", credentialHandler.Deactivate)
		admin.GET("/test-notification", TestNotification(notifyService))
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		notify: notifyService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
