package notification

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"

	"studio-inventory-backend/internal/model"
)

// DefectEvent describes a unit that was just reported defective. Display
// fields are carried in the event so workers don't re-read the studio
// document that produced it.
type DefectEvent struct {
	StudioID      string
	StudioName    string
	EquipmentName string
	UnitLabel     string
	UnitIndex     int
	Status        model.Status
}

// NotificationSender defines the interface for sending a web push notification.
type NotificationSender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is a real implementation of NotificationSender using the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool manages a pool of workers for sending defect notifications.
type WorkerPool struct {
	size    int
	jobs    chan DefectEvent
	db      *gorm.DB
	webpush *webpush.Options
	sender  NotificationSender
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, db *gorm.DB, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan DefectEvent, size), // Buffered channel
		db:      db,
		webpush: webpushOptions,
		sender:  &WebPushSender{}, // Use the real sender by default
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

// worker is the actual worker goroutine.
func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Worker %d started", id)
	for {
		select {
		case ev := <-wp.jobs:
			log.Printf("Worker %d processing defect in studio %s", id, ev.StudioID)
			wp.sendNotificationsForStudio(ctx, ev)
		case <-ctx.Done():
			log.Printf("Worker %d shutting down", id)
			return
		}
	}
}

// Dispatch sends a job to the worker pool.
func (wp *WorkerPool) Dispatch(ev DefectEvent) {
	wp.jobs <- ev
}

// sendNotificationsForStudio fetches the studio's subscriptions and pushes
// the defect message to each.
func (wp *WorkerPool) sendNotificationsForStudio(ctx context.Context, ev DefectEvent) {
	var subscriptions []model.PushSubscription
	err := wp.db.WithContext(ctx).
		Joins("JOIN subscription_studio_mapping ssm ON ssm.push_subscription_endpoint = push_subscriptions.endpoint").
		Where("ssm.studio_document_id = ?", ev.StudioID).
		Find(&subscriptions).Error
	if err != nil {
		log.Printf("Error fetching subscriptions for studio %s: %v", ev.StudioID, err)
		return
	}

	if len(subscriptions) == 0 {
		return
	}

	log.Printf("Sending %d notifications for studio %s", len(subscriptions), ev.StudioID)

	unitLabel := ev.UnitLabel
	if unitLabel == "" {
		unitLabel = fmt.Sprintf("unit %d", ev.UnitIndex)
	}

	message := fmt.Sprintf("%s (%s) in %s was reported %s", ev.EquipmentName, unitLabel, ev.StudioName, statusText(ev.Status))
	for _, sub := range subscriptions {
		wp.sendNotification(ctx, sub, []byte(message))
	}
}

func statusText(s model.Status) string {
	switch s {
	case model.StatusDamaged:
		return "damaged"
	case model.StatusMissing:
		return "missing"
	case model.StatusOutForShooting:
		return "out for shooting"
	case model.StatusLabelReplacement:
		return "needing a new label"
	default:
		return string(s)
	}
}

// sendNotification sends a single web push notification.
func (wp *WorkerPool) sendNotification(ctx context.Context, sub model.PushSubscription, payload []byte) {
	// Manually construct the webpush.Subscription object
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("Error sending notification to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	// Handle expired subscriptions
	if resp.StatusCode == 410 {
		log.Printf("Subscription for endpoint %s is expired. Deleting.", sub.Endpoint)
		if err := wp.db.WithContext(ctx).Delete(&sub).Error; err != nil {
			log.Printf("Failed to delete expired subscription %s: %v", sub.Endpoint, err)
		}
	}
}
