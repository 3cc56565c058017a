package api

import (
	"net/http"

	"github.com/bmharper/quadtree-go/internal/handler"
	"github.com/bmharper/quadtree-go/internal/middleware"
	"github.com/bmharper/quadtree-go/internal/service"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the HTTP routes
func SetupRouter(clusters *service.ClusterService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Venue cluster API is running",
		})
	})

	h := handler.NewClusterHandler(clusters)

	api := r.Group("/api/v1")
	{
		api.GET("/clusters", h.GetClusters)

		venues := api.Group("/venues")
		{
			venues.GET("/stats", h.GetStats)
			venues.POST("/reload", h.Reload)
		}
	}

	return r
}
