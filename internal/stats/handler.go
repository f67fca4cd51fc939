package stats

import (
	"net/http"
	"strconv"

	httperr "github.com/dab97/stats-rgsu/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// CacheControl mirrors FreshnessWindow for shared caches in front of the API.
const CacheControl = "public, max-age=120, s-maxage=120"

// RegisterRoutes registers the stats endpoint on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/notion-stats", s.HandleGetStats)
}

// HandleGetStats handles GET /api/notion-stats
// Query parameters: refresh (bool, bypasses the cache)
func (s *Service) HandleGetStats(c *gin.Context) {
	force, _ := strconv.ParseBool(c.Query("refresh"))

	snap, err := s.Current(c.Request.Context(), force)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			Error:   httperr.MsgFetchFailed,
			Details: err.Error(),
		})
		return
	}

	etag := snap.ETag()
	c.Header("Cache-Control", CacheControl)
	c.Header("ETag", etag)

	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", snap.Body)
}
