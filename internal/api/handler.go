package api

import (
	"github.com/SherClockHolmes/webpush-go"
	gocache "github.com/patrickmn/go-cache"

	"studio-inventory-backend/internal/notification"
	"studio-inventory-backend/internal/store"
	"studio-inventory-backend/internal/suggest"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store   store.Store
	webpush *webpush.Options
	pool    *notification.WorkerPool
	suggest *suggest.Client
	cache   *gocache.Cache
}

// NewHandler creates a new API handler. pool and suggestClient may be nil
// when the corresponding feature is not configured.
func NewHandler(s store.Store, webpushOptions *webpush.Options, pool *notification.WorkerPool, suggestClient *suggest.Client, responseCache *gocache.Cache) *Handler {
	return &Handler{
		store:   s,
		webpush: webpushOptions,
		pool:    pool,
		suggest: suggestClient,
		cache:   responseCache,
	}
}
