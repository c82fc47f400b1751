package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DefectiveUnit is one row of the cross-studio defective-items view.
type DefectiveUnit struct {
	StudioID      string     `json:"studioId"`
	StudioName    string     `json:"studioName"`
	StudioIcon    string     `json:"studioIcon,omitempty"`
	EquipmentID   string     `json:"equipmentId"`
	EquipmentName string     `json:"equipmentName"`
	Category      string     `json:"category"`
	UnitIndex     int        `json:"unitIndex"`
	UnitLabel     string     `json:"unitLabel,omitempty"`
	Status        string     `json:"status"`
	Remark        string     `json:"remark,omitempty"`
	Location      string     `json:"location,omitempty"`
	LastChecked   *time.Time `json:"lastChecked,omitempty"`
	LastCheckedBy string     `json:"lastCheckedBy,omitempty"`
}

// GetDefects handles the GET /api/defects request: every unit whose status
// is anything other than normal, across all studios, in document order.
func (h *Handler) GetDefects(c *gin.Context) {
	snapshots, err := h.store.ListStudios(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve studios"})
		return
	}

	defects := make([]DefectiveUnit, 0)
	for _, snap := range snapshots {
		for _, eq := range snap.Studio.Equipment {
			for _, u := range eq.Units {
				if !u.Status.NeedsAttention() {
					continue
				}
				defects = append(defects, DefectiveUnit{
					StudioID:      snap.Studio.ID,
					StudioName:    snap.Studio.Name,
					StudioIcon:    snap.Studio.Icon,
					EquipmentID:   eq.ID,
					EquipmentName: eq.Name,
					Category:      string(eq.Category),
					UnitIndex:     u.UnitIndex,
					UnitLabel:     u.UnitLabel,
					Status:        string(u.Status),
					Remark:        u.Remark,
					Location:      u.Location,
					LastChecked:   u.LastChecked,
					LastCheckedBy: u.LastCheckedBy,
				})
			}
		}
	}
	c.JSON(http.StatusOK, defects)
}
