package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studio-inventory-backend/internal/model"
	"studio-inventory-backend/internal/store"
)

// StudioSummary is the dashboard view of one studio: identity plus
// aggregate unit counts by condition.
type StudioSummary struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Icon          string     `json:"icon,omitempty"`
	ThemeColor    string     `json:"themeColor,omitempty"`
	TotalUnits    int        `json:"totalUnits"`
	Normal        int        `json:"normal"`
	Damaged       int        `json:"damaged"`
	Missing       int        `json:"missing"`
	OutForShoot   int        `json:"outForShooting"`
	NeedsRelabel  int        `json:"labelReplacement"`
	Unlabeled     int        `json:"unlabeled"`
	LastSyncedAt  *time.Time `json:"lastSyncedAt,omitempty"`
}

// GetStudios handles the GET /api/studios request.
func (h *Handler) GetStudios(c *gin.Context) {
	snapshots, err := h.store.ListStudios(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve studios"})
		return
	}

	responses := make([]StudioSummary, 0, len(snapshots))
	for _, snap := range snapshots {
		responses = append(responses, summarize(snap))
	}
	c.JSON(http.StatusOK, responses)
}

func summarize(snap store.StudioSnapshot) StudioSummary {
	s := StudioSummary{
		ID:           snap.Studio.ID,
		Name:         snap.Studio.Name,
		Description:  snap.Studio.Description,
		Icon:         snap.Studio.Icon,
		ThemeColor:   snap.Studio.ThemeColor,
		LastSyncedAt: snap.SyncedAt,
	}
	for _, eq := range snap.Studio.Equipment {
		for _, u := range eq.Units {
			s.TotalUnits++
			switch u.Status {
			case model.StatusNormal:
				s.Normal++
			case model.StatusDamaged:
				s.Damaged++
			case model.StatusMissing:
				s.Missing++
			case model.StatusOutForShooting:
				s.OutForShoot++
			case model.StatusLabelReplacement:
				s.NeedsRelabel++
			}
			if u.LabelStatus == model.Unlabeled {
				s.Unlabeled++
			}
		}
	}
	return s
}

// studioResponse is the detail view: the full document plus sync metadata.
type studioResponse struct {
	model.Studio
	LastSyncedAt *time.Time `json:"lastSyncedAt,omitempty"`
}

// GetStudio handles the GET /api/studios/{studio_id} request.
func (h *Handler) GetStudio(c *gin.Context) {
	snap, err := h.store.GetStudio(c.Request.Context(), c.Param("studio_id"))
	if err != nil {
		if errors.Is(err, store.ErrStudioNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "studio not found"})
		} else {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve studio"})
		}
		return
	}
	c.JSON(http.StatusOK, studioResponse{Studio: snap.Studio, LastSyncedAt: snap.SyncedAt})
}
