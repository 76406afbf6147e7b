package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkeaze/internal/handler/api"
	"parkeaze/internal/handler/dto/request"
	"parkeaze/internal/handler/middleware"
	"parkeaze/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	lotHandler *api.LotHandler,
	bookingHandler *api.BookingHandler,
	earningHandler *api.EarningHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	request.RegisterValidations()
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, lotHandler, bookingHandler, earningHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	lotHandler *api.LotHandler,
	bookingHandler *api.BookingHandler,
	earningHandler *api.EarningHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodPatch, Path: "/profile", Handler: authHandler.UpdateProfile},
				{Method: http.MethodPatch, Path: "/password", Handler: authHandler.ChangePassword},
			})
		}

		lots := apiGroup.Group("/lots")
		lots.Use(authMiddleware.RequireAuth())
		{
			addRoutes(lots, []route{
				{Method: http.MethodGet, Path: "", Handler: lotHandler.ListAll},
			})

			owner := lots.Group("")
			owner.Use(authMiddleware.RequireOwner())
			addRoutes(owner, []route{
				{Method: http.MethodPost, Path: "", Handler: lotHandler.SetupLocation},
				{Method: http.MethodPut, Path: "/pricing", Handler: lotHandler.ConfigurePricing},
				{Method: http.MethodPut, Path: "/documents", Handler: lotHandler.SubmitDocuments},
				{Method: http.MethodPut, Path: "/bank-details", Handler: lotHandler.SubmitBankDetails},
				{Method: http.MethodPatch, Path: "/status", Handler: lotHandler.SetStatus},
				{Method: http.MethodGet, Path: "/mine", Handler: lotHandler.Mine},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodPost, Path: "/entry", Handler: bookingHandler.RedeemEntry},
				{Method: http.MethodPost, Path: "/exit", Handler: bookingHandler.RedeemExit},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.Cancel},
			})
		}

		earnings := apiGroup.Group("/earnings")
		earnings.Use(authMiddleware.RequireAuth(), authMiddleware.RequireOwner())
		{
			addRoutes(earnings, []route{
				{Method: http.MethodGet, Path: "/today", Handler: earningHandler.Today},
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
