package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shiba-faucet/internal/handler/api"
	"shiba-faucet/internal/handler/middleware"
	"shiba-faucet/internal/pkg/config"
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
	claimHandler *api.ClaimHandler,
	assetHandler *api.AssetHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, claimHandler, assetHandler, adminHandler, authMiddleware, limiter)
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
	claimHandler *api.ClaimHandler,
	assetHandler *api.AssetHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		claims := apiGroup.Group("/claims")
		{
			addRoutes(claims, []route{
				{Method: http.MethodPost, Path: "", Handler: claimHandler.CreateClaim, Mw: []gin.HandlerFunc{limiter.PerIP()}},
				{Method: http.MethodGet, Path: "/:id", Handler: claimHandler.GetClaim},
			})
		}

		wallets := apiGroup.Group("/wallets")
		{
			addRoutes(wallets, []route{
				{Method: http.MethodGet, Path: "/:wallet/claims", Handler: claimHandler.GetWalletClaims},
				{Method: http.MethodGet, Path: "/:wallet/cooldowns", Handler: claimHandler.GetWalletCooldowns},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/assets", Handler: assetHandler.ListAssets},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPut, Path: "/assets", Handler: adminHandler.UpsertAsset},
				{Method: http.MethodDelete, Path: "/assets/:symbol", Handler: adminHandler.DeactivateAsset},
				{Method: http.MethodPost, Path: "/reconcile", Handler: adminHandler.Reconcile},
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
