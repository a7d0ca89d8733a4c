// README: Assignment log backed by Redis; records who got each order and when.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rashmitha1620/admin-sub000/internal/types"
)

const (
	assignedAtKeyPrefix = "dispatch:order:%s:assigned_at"
	trackingKeyPrefix   = "dispatch:order:%s:tracking"
	candidateKeyPrefix  = "dispatch:candidate:%s:orders"
	// TTL for assignment keys (orders resolve well within 7 days).
	keyTTL = 7 * 24 * time.Hour
)

type Log struct {
	redis *redis.Client
}

func NewLog(redis *redis.Client) *Log {
	return &Log{redis: redis}
}

// RecordAssignment stores the assignment timestamp, tracking id, and
// the candidate's order set in one pipeline.
func (l *Log) RecordAssignment(ctx context.Context, orderID, candidateID types.ID, trackingID string) error {
	pipe := l.redis.Pipeline()
	pipe.Set(ctx, assignedAtKey(orderID), time.Now().UTC().Format(time.RFC3339), keyTTL)
	pipe.Set(ctx, trackingKey(orderID), trackingID, keyTTL)
	candKey := fmt.Sprintf(candidateKeyPrefix, string(candidateID))
	pipe.SAdd(ctx, candKey, string(orderID))
	pipe.Expire(ctx, candKey, keyTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// AssignedAt returns when the order was assigned, and whether it has been.
func (l *Log) AssignedAt(ctx context.Context, orderID types.ID) (time.Time, bool, error) {
	val, err := l.redis.Get(ctx, assignedAtKey(orderID)).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// TrackingID returns the tracking id issued for an order, if any.
func (l *Log) TrackingID(ctx context.Context, orderID types.ID) (string, bool, error) {
	val, err := l.redis.Get(ctx, trackingKey(orderID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func assignedAtKey(orderID types.ID) string {
	return fmt.Sprintf(assignedAtKeyPrefix, string(orderID))
}

func trackingKey(orderID types.ID) string {
	return fmt.Sprintf(trackingKeyPrefix, string(orderID))
}
