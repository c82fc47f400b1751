package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"studio-inventory-backend/config"
	"studio-inventory-backend/internal/mw"
	"studio-inventory-backend/internal/notification"
	"studio-inventory-backend/internal/store"
	"studio-inventory-backend/internal/suggest"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, webpushOptions *webpush.Options, pool *notification.WorkerPool, suggestClient *suggest.Client, cfg config.ServerConfig) *gin.Engine {
	r := gin.Default()

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := gocache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	handler := NewHandler(s, webpushOptions, pool, suggestClient, cacheStore)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/studios", caching, handler.GetStudios)
		api.GET("/studios/:studio_id", handler.GetStudio)
		api.PATCH("/studios/:studio_id/equipment/:equipment_id/units/:unit_index", handler.UpdateUnit)

		api.GET("/defects", caching, handler.GetDefects)
		api.GET("/history", caching, handler.GetHistory)

		api.GET("/personnel", handler.GetPersonnel)
		api.POST("/personnel", handler.AddPersonnel)
		api.DELETE("/personnel/:name", handler.RemovePersonnel)

		api.POST("/sync", handler.SyncStudios)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)

		api.POST("/remark-suggestions", handler.SuggestRemark)
	}

	return r
}
