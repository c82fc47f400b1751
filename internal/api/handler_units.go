package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"studio-inventory-backend/internal/inventory"
	"studio-inventory-backend/internal/model"
	"studio-inventory-backend/internal/mw"
	"studio-inventory-backend/internal/notification"
	"studio-inventory-backend/internal/store"
)

type updateUnitRequest struct {
	Status      *model.Status      `json:"status"`
	LabelStatus *model.LabelStatus `json:"labelStatus"`
	Remark      *string            `json:"remark"`
	Location    *string            `json:"location"`
	Actor       string             `json:"actor"`
}

type updateUnitResponse struct {
	Studio  model.Studio         `json:"studio"`
	History *model.HistoryRecord `json:"history,omitempty"`
}

// UpdateUnit handles
// PATCH /api/studios/{studio_id}/equipment/{equipment_id}/units/{unit_index}.
//
// The studio document and the history record are two independent writes;
// a history append failure after a successful document write is reported
// as an error even though the document change already stuck.
func (h *Handler) UpdateUnit(c *gin.Context) {
	unitIndex, err := strconv.Atoi(c.Param("unit_index"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid unit index"})
		return
	}

	var req updateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}
	if req.LabelStatus != nil && !req.LabelStatus.Valid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid label status value"})
		return
	}

	ctx := c.Request.Context()
	snap, err := h.store.GetStudio(ctx, c.Param("studio_id"))
	if err != nil {
		if errors.Is(err, store.ErrStudioNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "studio not found"})
		} else {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve studio"})
		}
		return
	}

	upd := model.UnitUpdate{
		Status:      req.Status,
		LabelStatus: req.LabelStatus,
		Remark:      req.Remark,
		Location:    req.Location,
	}
	updated, rec := inventory.ApplyUnitUpdate(snap.Studio, c.Param("equipment_id"), unitIndex, upd, req.Actor, time.Now().UTC())

	if err := h.store.SaveStudio(ctx, updated); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to save studio"})
		return
	}

	if rec != nil {
		if err := h.store.AppendHistory(ctx, *rec); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Studio saved but history append failed"})
			return
		}
	}

	if h.cache != nil {
		mw.Flush(h.cache)
	}

	if h.pool != nil && req.Status != nil && req.Status.NeedsAttention() {
		h.pool.Dispatch(notification.DefectEvent{
			StudioID:      updated.ID,
			StudioName:    updated.Name,
			EquipmentName: equipmentName(updated, c.Param("equipment_id")),
			UnitLabel:     unitLabel(updated, c.Param("equipment_id"), unitIndex),
			UnitIndex:     unitIndex,
			Status:        *req.Status,
		})
	}

	c.JSON(http.StatusOK, updateUnitResponse{Studio: updated, History: rec})
}

func equipmentName(studio model.Studio, equipmentID string) string {
	for _, eq := range studio.Equipment {
		if eq.ID == equipmentID {
			return eq.Name
		}
	}
	return equipmentID
}

func unitLabel(studio model.Studio, equipmentID string, unitIndex int) string {
	for _, eq := range studio.Equipment {
		if eq.ID != equipmentID {
			continue
		}
		for _, u := range eq.Units {
			if u.UnitIndex == unitIndex {
				return u.UnitLabel
			}
		}
	}
	return ""
}
