package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-inventory-backend/internal/model"
)

func TestGetStudios_Summaries(t *testing.T) {
	router, s := setupTestAPI(t)

	// Mark one unit damaged directly in the store so the dashboard has
	// something to count.
	snap, err := s.GetStudio(context.Background(), "studio-1")
	require.NoError(t, err)
	snap.Studio.Equipment[0].Units[0].Status = model.StatusDamaged
	require.NoError(t, s.SaveStudio(context.Background(), snap.Studio))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/studios", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var summaries []StudioSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Len(t, summaries, 7)

	assert.Equal(t, "studio-1", summaries[0].ID)
	assert.Equal(t, 1, summaries[0].Damaged)
	assert.Equal(t, summaries[0].TotalUnits-1, summaries[0].Normal)
	assert.Positive(t, summaries[0].TotalUnits)

	// Untouched studios report all units normal.
	assert.Equal(t, summaries[1].TotalUnits, summaries[1].Normal)
	assert.Zero(t, summaries[1].Damaged)
}

func TestGetStudio_Detail(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/studios/studio-2", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp studioResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Studio 2", resp.Name)
	assert.NotEmpty(t, resp.Equipment)
}

func TestGetStudio_NotFound(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/studios/studio-404", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
