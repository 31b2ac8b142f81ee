package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quizhub/quizhub-backend/internal/config"
	"github.com/quizhub/quizhub-backend/internal/handler"
	"github.com/quizhub/quizhub-backend/internal/middleware"
	"github.com/quizhub/quizhub-backend/internal/response"
	"github.com/quizhub/quizhub-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth        *handler.AuthHandler
	Quiz        *handler.QuizHandler
	Attempt     *handler.AttemptHandler
	Leaderboard *handler.LeaderboardHandler
	AdminUser   *handler.AdminUserHandler
	Dashboard   *handler.DashboardHandler
	WS          *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// CORS: restrict to the configured origin list, or allow all so dev
	// works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Auth (public, rate limited) ───────────────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)

		auth.POST("/logout", middleware.RequireJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireJWT(authService), handlers.Auth.Me)
	}

	// ─── Player routes (JWT + session) ─────────────────────────────────
	api := router.Group("/api/v1")
	api.Use(
		middleware.RequireJWT(authService),
		middleware.CheckSession(authService),
	)
	{
		api.GET("/quizzes", handlers.Quiz.ListCatalog)
		api.GET("/quizzes/categories", handlers.Quiz.Categories)
		api.GET("/quizzes/:quiz_id/paper", handlers.Quiz.GetPaper)
		api.POST("/quizzes/:quiz_id/attempts", handlers.Attempt.Submit)
		api.GET("/attempts", handlers.Attempt.History)
		api.GET("/leaderboard", handlers.Leaderboard.Top)
		api.GET("/leaderboard/me", handlers.Leaderboard.MyRank)

		// Authoring: any signed-in user can author quizzes they own.
		api.GET("/author/quizzes", handlers.Quiz.ListMine)
		api.POST("/author/quizzes", handlers.Quiz.Create)
		api.GET("/author/quizzes/:quiz_id", handlers.Quiz.Get)
		api.PUT("/author/quizzes/:quiz_id", handlers.Quiz.Update)
		api.DELETE("/author/quizzes/:quiz_id", handlers.Quiz.Delete)
		api.POST("/author/quizzes/:quiz_id/publish", handlers.Quiz.Publish)
		api.POST("/author/quizzes/:quiz_id/archive", handlers.Quiz.Archive)
	}

	// ─── WebSocket (query-token auth) ──────────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireWSAuth(authService))
	{
		ws.GET("/leaderboard/stream", handlers.WS.LeaderboardStream)
	}

	// ─── Admin panel (JWT + admin role) ────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(
		middleware.RequireJWT(authService),
		middleware.RequireAdmin(),
	)
	{
		adminAPI.GET("/dashboard", handlers.Dashboard.GetDashboardData)

		adminAPI.GET("/users", handlers.AdminUser.List)
		adminAPI.POST("/users", handlers.AdminUser.Create)
		adminAPI.PUT("/users/:id", handlers.AdminUser.Update)
		adminAPI.DELETE("/users/:id", handlers.AdminUser.Delete)
	}

	return router
}
