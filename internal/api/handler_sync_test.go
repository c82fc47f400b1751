package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-inventory-backend/internal/model"
)

func postSync(router http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/sync", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSyncStudios_RequiresConfirmation(t *testing.T) {
	router, _ := setupTestAPI(t)

	assert.Equal(t, http.StatusBadRequest, postSync(router, `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, postSync(router, `{"confirm":false}`).Code)
	assert.Equal(t, http.StatusBadRequest, postSync(router, ``).Code)
}

func TestSyncStudios_PreservesOperationalState(t *testing.T) {
	router, s := setupTestAPI(t)
	ctx := context.Background()

	snap, err := s.GetStudio(ctx, "studio-1")
	require.NoError(t, err)
	snap.Studio.Equipment[0].Units[0].Status = model.StatusDamaged
	snap.Studio.Equipment[0].Units[0].Remark = "shutter stuck"
	require.NoError(t, s.SaveStudio(ctx, snap.Studio))

	w := postSync(router, `{"confirm":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp["synced"])

	after, err := s.GetStudio(ctx, "studio-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusDamaged, after.Studio.Equipment[0].Units[0].Status)
	assert.Equal(t, "shutter stuck", after.Studio.Equipment[0].Units[0].Remark)
	require.NotNil(t, after.SyncedAt)
}

func TestSyncStudios_Idempotent(t *testing.T) {
	router, s := setupTestAPI(t)
	ctx := context.Background()

	snap, err := s.GetStudio(ctx, "studio-2")
	require.NoError(t, err)
	snap.Studio.Equipment[0].Units[0].Status = model.StatusMissing
	require.NoError(t, s.SaveStudio(ctx, snap.Studio))

	require.Equal(t, http.StatusOK, postSync(router, `{"confirm":true}`).Code)
	first, err := s.GetStudio(ctx, "studio-2")
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, postSync(router, `{"confirm":true}`).Code)
	second, err := s.GetStudio(ctx, "studio-2")
	require.NoError(t, err)

	assert.Equal(t, first.Studio, second.Studio)
}

func TestSyncStudios_PoolIsFullyReplaced(t *testing.T) {
	router, s := setupTestAPI(t)
	ctx := context.Background()

	snap, err := s.GetStudio(ctx, "studio-pool")
	require.NoError(t, err)
	snap.Studio.Equipment[0].Units[0].Status = model.StatusDamaged
	snap.Studio.Equipment[0].Units[0].Remark = "gimbal motor whine"
	require.NoError(t, s.SaveStudio(ctx, snap.Studio))

	require.Equal(t, http.StatusOK, postSync(router, `{"confirm":true}`).Code)

	after, err := s.GetStudio(ctx, "studio-pool")
	require.NoError(t, err)
	assert.Equal(t, model.StatusNormal, after.Studio.Equipment[0].Units[0].Status)
	assert.Empty(t, after.Studio.Equipment[0].Units[0].Remark)
}
