package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookingcore/internal/handler/api"
	"bookingcore/internal/handler/middleware"
	"bookingcore/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Catalog      *api.CatalogHandler
	Entitlement  *api.EntitlementHandler
	WorkingHours *api.WorkingHoursHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Public booking surface: no auth, scoped by explicit business IDs.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.GetAvailability},
			{Method: http.MethodPost, Path: "/appointments", Handler: h.Booking.CreateAppointment},
			{Method: http.MethodGet, Path: "/businesses/:businessId/catalog", Handler: h.Catalog.GetCatalog},
			{Method: http.MethodGet, Path: "/businesses/:businessId/packages", Handler: h.Entitlement.GetPackages},
			{Method: http.MethodPost, Path: "/packages/reserve", Handler: h.Entitlement.ReservePackage},
			{Method: http.MethodGet, Path: "/customer/purchases", Handler: h.Entitlement.GetCustomerPurchases},
		})

		// Dashboard surface: scoped to the business in the bearer token.
		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireAuth())
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "/appointments", Handler: h.Booking.GetDayAppointments},
				{Method: http.MethodGet, Path: "/appointments/:id", Handler: h.Booking.GetAppointment},
				{Method: http.MethodPost, Path: "/appointments/:id/cancel", Handler: h.Booking.CancelAppointment},
				{Method: http.MethodPost, Path: "/appointments/:id/complete", Handler: h.Booking.CompleteAppointment},
				{Method: http.MethodPost, Path: "/appointments/:id/restore-session", Handler: h.Booking.RestoreSession},
				{Method: http.MethodPost, Path: "/purchases/:id/activate", Handler: h.Entitlement.ActivatePurchase},
				{Method: http.MethodPut, Path: "/working-hours", Handler: h.WorkingHours.UpsertBusinessHours},
				{Method: http.MethodPut, Path: "/staff/:staffId/working-hours", Handler: h.WorkingHours.UpsertStaffHours},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
