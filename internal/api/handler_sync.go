package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studio-inventory-backend/internal/catalog"
	"studio-inventory-backend/internal/inventory"
	"studio-inventory-backend/internal/model"
	"studio-inventory-backend/internal/mw"
	"studio-inventory-backend/internal/store"
)

type syncRequest struct {
	Confirm bool `json:"confirm"`
}

// SyncStudios handles the POST /api/sync request: regenerate every studio's
// catalog and merge it with the stored operational state. This rewrites
// every studio document, so the caller must opt in explicitly. The shared
// pool is never merged; its fresh catalog replaces the stored one outright.
//
// Per-studio write failures are aggregated into a single error response.
// The operation is idempotent, so re-running after a partial failure is
// the expected recovery path.
func (h *Handler) SyncStudios(c *gin.Context) {
	var req syncRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "sync must be explicitly confirmed"})
		return
	}

	ctx := c.Request.Context()
	merged := make([]model.Studio, 0, len(catalog.Seeds()))
	for _, seed := range catalog.Seeds() {
		studio := seed.Studio()
		if !seed.IsPool() {
			snap, err := h.store.GetStudio(ctx, seed.ID)
			switch {
			case err == nil:
				studio.Equipment = inventory.Reconcile(studio.Equipment, snap.Studio.Equipment)
			case errors.Is(err, store.ErrStudioNotFound):
				// Missing document: adopt the fresh catalog as seeded.
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to read studio " + seed.ID})
				return
			}
		}
		merged = append(merged, studio)
	}

	if err := h.store.ReplaceStudios(ctx, merged, time.Now().UTC()); err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if h.cache != nil {
		mw.Flush(h.cache)
	}
	c.JSON(http.StatusOK, gin.H{"synced": len(merged)})
}
