package views

import (
	"context"
	"net/http"

	httperr "github.com/dab97/stats-rgsu/internal/core/errors"
	"github.com/dab97/stats-rgsu/internal/stats"
	"github.com/gin-gonic/gin"
)

// SnapshotProvider is the subset of the stats cache gate the views need.
type SnapshotProvider interface {
	Current(ctx context.Context, force bool) (*stats.Snapshot, error)
}

// Handler serves derived views over the cached aggregation.
type Handler struct {
	snapshots SnapshotProvider
	builder   *Builder
}

func NewHandler(snapshots SnapshotProvider, builder *Builder) *Handler {
	return &Handler{snapshots: snapshots, builder: builder}
}

// RegisterRoutes registers the views endpoint on the given router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/notion-stats/views", h.HandleGetViews)
}

// HandleGetViews handles GET /api/notion-stats/views
func (h *Handler) HandleGetViews(c *gin.Context) {
	snap, err := h.snapshots.Current(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			Error:   httperr.MsgViewsFailed,
			Details: err.Error(),
		})
		return
	}

	c.Header("Cache-Control", stats.CacheControl)
	c.Header("ETag", snap.ETag())
	c.JSON(http.StatusOK, h.builder.Build(snap.Stats))
}
