package handler

import (
	"net/http"

	"github.com/bmharper/quadtree-go"
	"github.com/bmharper/quadtree-go/cluster"
	"github.com/bmharper/quadtree-go/internal/service"
	"github.com/bmharper/quadtree-go/internal/venue"
	"github.com/bmharper/quadtree-go/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ClusterQuery is the visible map area and zoom level of a cluster request
type ClusterQuery struct {
	MinLat *float64 `form:"min_lat" binding:"required,gte=-90,lte=90"`
	MinLon *float64 `form:"min_lon" binding:"required,gte=-180,lte=180"`
	MaxLat *float64 `form:"max_lat" binding:"required,gte=-90,lte=90"`
	MaxLon *float64 `form:"max_lon" binding:"required,gte=-180,lte=180"`
	Zoom   *float64 `form:"zoom" binding:"required,gte=0,lte=30"`
	Format string   `form:"format" binding:"omitempty,oneof=json geojson"`
}

// Bound returns the query area as an orb bound, longitude first
func (q ClusterQuery) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{*q.MinLon, *q.MinLat},
		Max: orb.Point{*q.MaxLon, *q.MaxLat},
	}
}

// BoxFromBound converts an orb bound to index coordinates, latitude on x and longitude on y
func BoxFromBound(b orb.Bound) quadtree.BoundingBox {
	return quadtree.NewBoundingBox(b.Min.Lat(), b.Min.Lon(), b.Max.Lat(), b.Max.Lon())
}

// AnnotationDTO is the JSON form of one annotation
type AnnotationDTO struct {
	Lat     float64      `json:"lat"`
	Lon     float64      `json:"lon"`
	Count   int          `json:"count"`
	Cluster bool         `json:"cluster"`
	Venue   *venue.Venue `json:"venue,omitempty"` // the single venue, or a representative of the cluster
}

// ClusterHandler handles HTTP requests for venue clusters
type ClusterHandler struct {
	service *service.ClusterService
}

// NewClusterHandler creates a new cluster handler
func NewClusterHandler(service *service.ClusterService) *ClusterHandler {
	return &ClusterHandler{service: service}
}

// GetClusters handles GET /api/v1/clusters
func (h *ClusterHandler) GetClusters(c *gin.Context) {
	var query ClusterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	bound := query.Bound()
	if bound.IsEmpty() {
		response.BadRequest(c, "min_lat and min_lon must not exceed max_lat and max_lon")
		return
	}

	annotations := h.service.Clusters(BoxFromBound(bound), *query.Zoom)

	if query.Format == "geojson" {
		c.JSON(http.StatusOK, toFeatureCollection(annotations))
		return
	}

	dtos := make([]AnnotationDTO, 0, len(annotations))
	for _, a := range annotations {
		dtos = append(dtos, AnnotationDTO{
			Lat:     a.X,
			Lon:     a.Y,
			Count:   a.Count,
			Cluster: a.IsCluster(),
			Venue:   a.Payload,
		})
	}
	response.Success(c, gin.H{
		"annotations": dtos,
		"count":       len(dtos),
		"zoom":        *query.Zoom,
	})
}

func toFeatureCollection(annotations []cluster.Annotation[*venue.Venue]) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, a := range annotations {
		f := geojson.NewFeature(orb.Point{a.Y, a.X})
		f.Properties["cluster"] = a.IsCluster()
		f.Properties["point_count"] = a.Count
		if !a.IsCluster() && a.Payload != nil {
			f.Properties["id"] = a.Payload.ID
			f.Properties["name"] = a.Payload.Name
			f.Properties["phone"] = a.Payload.Phone
		}
		fc.Append(f)
	}
	return fc
}

// GetStats handles GET /api/v1/venues/stats
func (h *ClusterHandler) GetStats(c *gin.Context) {
	response.Success(c, h.service.Stats())
}

// Reload handles POST /api/v1/venues/reload
func (h *ClusterHandler) Reload(c *gin.Context) {
	stats, err := h.service.Reload(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to reload venues", err)
		return
	}
	response.Success(c, stats)
}
