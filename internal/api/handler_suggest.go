package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-inventory-backend/internal/model"
	"studio-inventory-backend/internal/suggest"
)

type suggestRemarkRequest struct {
	EquipmentName string       `json:"equipmentName" binding:"required"`
	UnitLabel     string       `json:"unitLabel"`
	Status        model.Status `json:"status" binding:"required"`
	Hint          string       `json:"hint"`
}

// SuggestRemark handles the POST /api/remark-suggestions request, proxying
// the external text-generation service. Unavailable when unconfigured.
func (h *Handler) SuggestRemark(c *gin.Context) {
	if h.suggest == nil || !h.suggest.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "remark suggestions are not configured"})
		return
	}

	var req suggestRemarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Status.Valid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	text, err := h.suggest.Suggest(c.Request.Context(), suggest.Request{
		EquipmentName: req.EquipmentName,
		UnitLabel:     req.UnitLabel,
		Status:        req.Status,
		Hint:          req.Hint,
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestion": text})
}
