package api

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studio-inventory-backend/config"
	"studio-inventory-backend/internal/catalog"
	"studio-inventory-backend/internal/model"
	"studio-inventory-backend/internal/store"
	"studio-inventory-backend/internal/suggest"
)

// setupTestAPI builds a router over a seeded in-memory database. Rate
// limits are opened wide so rapid test requests never trip them.
func setupTestAPI(t *testing.T) (*gin.Engine, store.Store) {
	return setupTestAPIWithSuggest(t, suggest.NewClient(config.SuggestConfig{}))
}

func setupTestAPIWithSuggest(t *testing.T, suggestClient *suggest.Client) (*gin.Engine, store.Store) {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.StudioDocument{},
		&model.HistoryRecord{},
		&model.Personnel{},
		&model.PushSubscription{},
	))

	s := store.NewGormStore(db)
	require.NoError(t, s.SeedStudios(context.Background(), catalog.Studios()))

	cfg := config.ServerConfig{
		Port:            8080,
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTLSeconds: 1,
	}
	router := NewRouter(s, nil, nil, suggestClient, cfg)
	return router, s
}
