package handlers

import (
	"net/http"

	"quizforge/internal/logger"
	"quizforge/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Response status values; every JSON body carries one.
const (
	statusSuccess = "success"
	statusFail    = "fail"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Wide-open CORS; browser clients are served from anywhere.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	// Public endpoints
	router.POST("/signup", h.signUp)
	router.POST("/login", h.logIn)
	router.GET("/leaderboard", h.leaderboard)

	// Live leaderboard feed (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	// Token-protected endpoints
	authed := router.Group("/", h.identityMiddleware)
	{
		authed.POST("/generate_quiz", h.generateQuiz)
		authed.POST("/update_xp", h.updateXP)
		authed.GET("/me", h.profile)
		authed.GET("/history", h.history)
	}

	return router
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusSuccess})
}
