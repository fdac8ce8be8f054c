// Package dispatch implements the DriverAssigner port over a Redis list.
// Assignment requests are pushed onto a queue consumed by the external driver
// assignment service; delivery of the request is best effort and the consumer
// owns retry semantics.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resto/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// assignmentRequest is the JSON envelope pushed onto the queue.
type assignmentRequest struct {
	OrderID     string    `json:"order_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// RedisDispatcher requests driver assignment by pushing an order reference
// onto a Redis list. One push per call; deduplication is the caller's
// responsibility via the unset-driver guard on the order itself.
type RedisDispatcher struct {
	client   *redis.Client
	queueKey string
	now      func() time.Time
}

// NewRedisDispatcher creates a dispatcher publishing to the given queue key.
func NewRedisDispatcher(client *redis.Client, queueKey string) *RedisDispatcher {
	return &RedisDispatcher{
		client:   client,
		queueKey: queueKey,
		now:      time.Now,
	}
}

// RequestAssignment pushes an assignment request for the order onto the queue.
func (d *RedisDispatcher) RequestAssignment(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(assignmentRequest{
		OrderID:     orderID.String(),
		RequestedAt: d.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal assignment request: %w", err)
	}

	if err := d.client.LPush(ctx, d.queueKey, payload).Err(); err != nil {
		return fmt.Errorf("enqueue assignment request: %w", err)
	}

	return nil
}
