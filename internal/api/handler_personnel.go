package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type addPersonnelRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetPersonnel handles the GET /api/personnel request.
func (h *Handler) GetPersonnel(c *gin.Context) {
	names, err := h.store.ListPersonnel(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve personnel"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"personnel": names})
}

// AddPersonnel handles the POST /api/personnel request. Adding an existing
// name is a no-op (set semantics).
func (h *Handler) AddPersonnel(c *gin.Context) {
	var req addPersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "name must not be blank"})
		return
	}

	if err := h.store.AddPersonnel(c.Request.Context(), name); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to add personnel"})
		return
	}
	c.Status(http.StatusCreated)
}

// RemovePersonnel handles the DELETE /api/personnel/{name} request.
func (h *Handler) RemovePersonnel(c *gin.Context) {
	if err := h.store.RemovePersonnel(c.Request.Context(), c.Param("name")); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove personnel"})
		return
	}
	c.Status(http.StatusNoContent)
}
