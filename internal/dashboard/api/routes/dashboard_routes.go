package routes

import (
	"VCS_Image_Dashboard/internal/dashboard/api/handler"
	"VCS_Image_Dashboard/pkg/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetUpDashboardRoutes(r *gin.Engine, handler handler.DashboardHandler, m middleware.RequestMiddleware, metricsHandler gin.HandlerFunc) {
	r.Use(m.RequestID(), m.RecordMetrics())

	r.GET("/", handler.Dashboard())
	r.GET("/clear", handler.ClearFilters())

	apiRoutes := r.Group("/api")
	apiRoutes.GET("/version", handler.GetVersion())
	apiRoutes.GET("/servers", handler.ListServers())
	apiRoutes.GET("/servers/export", handler.ExportServers())
	apiRoutes.GET("/servers/:id", handler.GetServer())
	apiRoutes.GET("/servers/:id/status", handler.GetServerStatus())
	apiRoutes.GET("/servers/:id/detail", handler.GetServerDetail())

	r.GET("/metrics", metricsHandler)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
