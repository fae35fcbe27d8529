// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/http/handlers"
	"wander/internal/http/middleware"
	"wander/internal/planner"
)

func NewRouter(plannerSvc *planner.Planner, debug bool) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())

	planHandler := handlers.NewPlanHandler(plannerSvc, debug)
	r.POST("/api/trips/plan", planHandler.Create)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
