package server

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Mayank9336/TheVarches/internal/auth"
	"github.com/Mayank9336/TheVarches/internal/config"
	"github.com/Mayank9336/TheVarches/internal/database"
	"github.com/Mayank9336/TheVarches/internal/models"
	"github.com/Mayank9336/TheVarches/internal/orders"
	"github.com/Mayank9336/TheVarches/internal/store"
)

// Storage capabilities the handlers depend on, kept narrow so tests can
// substitute fakes for *store.Store.
type CatalogStore interface {
	ListSketches(ctx context.Context, f store.SketchFilter) ([]models.Sketch, int, error)
	GetSketch(ctx context.Context, id int64) (models.Sketch, error)
	CreateSketch(ctx context.Context, sk models.Sketch) (models.Sketch, error)
	UpdateSketch(ctx context.Context, sk models.Sketch) (models.Sketch, error)
	DeleteSketch(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type OrderStore interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id int64) (models.Order, error)
	GetOrderStatus(ctx context.Context, id int64) (string, error)
	UpdateOrderStatus(ctx context.Context, id int64, from, to string) error
}

type InquiryStore interface {
	CreateInquiry(ctx context.Context, in models.Inquiry) (int64, error)
	ListInquiries(ctx context.Context) ([]models.Inquiry, error)
}

type UserStore interface {
	AdminByEmail(ctx context.Context, email string) (models.User, error)
}

type StatsStore interface {
	Stats(ctx context.Context) (models.Stats, error)
}

// OrderPlacer is the order assembly entry point.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, in orders.CreateOrderInput) (orders.Confirmation, error)
}

type Server struct {
	router    *gin.Engine
	cfg       *config.Config
	db        *database.DB
	tokens    *auth.TokenIssuer
	catalog   CatalogStore
	orders    OrderStore
	inquiries InquiryStore
	users     UserStore
	stats     StatsStore
	placer    OrderPlacer
}

// NewServer creates a new server instance wired to the SQL store
func NewServer(cfg *config.Config, db *database.DB, st *store.Store, placer OrderPlacer) (*Server, error) {
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, err
	}

	server := &Server{
		router:    gin.Default(),
		cfg:       cfg,
		db:        db,
		tokens:    auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		catalog:   st,
		orders:    st,
		inquiries: st,
		users:     st,
		stats:     st,
		placer:    placer,
	}

	server.router.Use(corsMiddleware(cfg.CORS.Origins))
	server.setupRoutes()
	return server, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	return cors.New(corsCfg)
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Uploaded images are served statically
	s.router.Static("/uploads", s.cfg.Upload.Dir)

	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/sketches", s.listSketches)
		api.GET("/sketches/:id", s.getSketch)
		api.GET("/categories", s.listCategories)
		api.POST("/orders", s.createOrder)
		api.POST("/inquiries", s.createInquiry)
		api.POST("/admin/login", s.adminLogin)
	}

	admin := api.Group("", s.requireAdmin())
	{
		admin.POST("/sketches", s.createSketch)
		admin.PUT("/sketches/:id", s.updateSketch)
		admin.DELETE("/sketches/:id", s.deleteSketch)
		admin.GET("/orders", s.listOrders)
		admin.GET("/orders/:id", s.getOrder)
		admin.PUT("/orders/:id/status", s.updateOrderStatus)
		admin.GET("/inquiries", s.listInquiries)
		admin.GET("/admin/stats", s.adminStats)
		admin.POST("/upload/sketch", s.uploadSketchImage)
		admin.POST("/upload/multiple", s.uploadMultiple)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if err := s.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "The Varches API is running",
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
