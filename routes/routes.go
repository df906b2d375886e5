package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vistari/config"
	"vistari/handlers"
)

// RegisterScheduleRoutes registers the schedule validation endpoints.
func RegisterScheduleRoutes(r *gin.Engine, sh *handlers.ScheduleHandler) {
	api := r.Group("/api/schedule")
	{
		api.POST("/regenerate-day", sh.RegenerateDayHandler)
		api.POST("/reconcile", sh.ReconcileHandler)
		api.POST("/plan", sh.PlanDayHandler)
	}
}

// SetupRouter configures CORS and wires all routes.
func SetupRouter(r *gin.Engine, sh *handlers.ScheduleHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     splitOrigins(config.AppConfig.CORSAllowOrigins),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterScheduleRoutes(r, sh)
}

func splitOrigins(raw string) []string {
	if raw == "" || raw == "*" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
