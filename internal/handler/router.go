package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vista-ecoupon/internal/handler/api"
	"vista-ecoupon/internal/handler/middleware"
	"vista-ecoupon/internal/pkg/config"
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
	sessionHandler *api.SessionHandler,
	promotionHandler *api.PromotionHandler,
	redemptionHandler *api.RedemptionHandler,
	branchHandler *api.BranchHandler,
	historyHandler *api.HistoryHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, sessionHandler, promotionHandler, redemptionHandler, branchHandler, historyHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	sessionHandler *api.SessionHandler,
	promotionHandler *api.PromotionHandler,
	redemptionHandler *api.RedemptionHandler,
	branchHandler *api.BranchHandler,
	historyHandler *api.HistoryHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/session/validate", Handler: sessionHandler.Validate},
			{Method: http.MethodPost, Path: "/session/guest", Handler: sessionHandler.StartGuest},
			{Method: http.MethodPost, Path: "/auth/login", Handler: adminHandler.Login},
		})

		sessionRequired := apiGroup.Group("")
		sessionRequired.Use(authMiddleware.RequireSession())
		{
			addRoutes(sessionRequired, []route{
				{Method: http.MethodGet, Path: "/promotions/current", Handler: promotionHandler.Current},
				{Method: http.MethodGet, Path: "/branches", Handler: branchHandler.List},
				{Method: http.MethodGet, Path: "/branches/nearest", Handler: branchHandler.Nearest},
				{Method: http.MethodPost, Path: "/redemptions", Handler: redemptionHandler.Generate},
				{Method: http.MethodPost, Path: "/redemptions/:value/confirm", Handler: redemptionHandler.Confirm},
				{Method: http.MethodDelete, Path: "/redemptions/:value", Handler: redemptionHandler.Discard},
				{Method: http.MethodGet, Path: "/history", Handler: historyHandler.Monthly},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/campaigns", Handler: adminHandler.ListCampaigns},
				{Method: http.MethodPost, Path: "/campaigns", Handler: adminHandler.CreateCampaign},
				{Method: http.MethodGet, Path: "/campaigns/:id", Handler: adminHandler.GetCampaign},
				{Method: http.MethodPut, Path: "/campaigns/:id", Handler: adminHandler.UpdateCampaign},
				{Method: http.MethodDelete, Path: "/campaigns/:id", Handler: adminHandler.DeleteCampaign},
				{Method: http.MethodGet, Path: "/usage-logs", Handler: adminHandler.ListUsageLogs},
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
