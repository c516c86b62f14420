package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/klauspost/compress/s2"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	notificationStreamKey  = "garden-planner:notifications"
	notificationSendTimeout = 2 * time.Second
)

// notificationPayload is the wire shape pushed onto the Redis stream.
type notificationPayload struct {
	CorrelationID string                 `json:"correlationId"`
	UserID        string                 `json:"userId"`
	Title         string                 `json:"title"`
	Body          string                 `json:"body"`
	Data          map[string]interface{} `json:"data"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// NotificationSink is a Redis-backed, fire-and-forget implementation of the
// orchestrator's NotificationSink port. Send is synchronous: each call
// waits at most notificationSendTimeout, and once the circuit breaker
// trips on repeated failures, calls fail fast without contacting Redis.
type NotificationSink struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker
	log     *zap.Logger
}

// NewNotificationSink builds a sink backed by an established Redis client.
func NewNotificationSink(client *redis.Client, log *zap.Logger) *NotificationSink {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "notification-sink",
		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
	})
	return &NotificationSink{client: client, breaker: breaker, log: log}
}

// Send publishes a notification onto the Redis stream. Failures are logged
// and swallowed; they never propagate to the caller, per spec §6/§7.
func (s *NotificationSink) Send(ctx context.Context, userID, title, body string, data map[string]interface{}) {
	payload := notificationPayload{
		CorrelationID: uuid.New().String(),
		UserID:        userID,
		Title:         title,
		Body:          body,
		Data:          data,
		CreatedAt:     time.Now().UTC(),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		s.logFailure("failed to marshal notification payload", err)
		return
	}
	compressed := s2.Encode(nil, raw)

	ctx, cancel := context.WithTimeout(ctx, notificationSendTimeout)
	defer cancel()

	_, err = s.breaker.Execute(func() (interface{}, error) {
		return s.client.XAdd(ctx, &redis.XAddArgs{
			Stream: notificationStreamKey,
			Values: map[string]interface{}{
				"correlationId": payload.CorrelationID,
				"payload":       compressed,
			},
		}).Result()
	})
	if err != nil {
		s.logFailure("failed to publish notification", err)
	}
}

func (s *NotificationSink) logFailure(msg string, err error) {
	if s.log == nil {
		return
	}
	s.log.Warn(msg, zap.Error(err))
}
