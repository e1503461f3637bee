package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"studiobooking/internal/entities"
)

const bookingSnapshotPrefix = "slots:bookings:"

// SnapshotCache keeps short-lived per-(room, date) copies of the backend's
// booking list in Redis so repeated availability queries for the same day do
// not hammer the backend. Any write path invalidates the affected key.
type SnapshotCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &SnapshotCache{Client: client, TTL: ttl}
}

func bookingsKey(roomID int64, date string) string {
	return fmt.Sprintf("%s%d:%s", bookingSnapshotPrefix, roomID, date)
}

func (c *SnapshotCache) Get(ctx context.Context, roomID int64, date string) ([]entities.Booking, bool, error) {
	data, err := c.Client.Get(ctx, bookingsKey(roomID, date)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading booking snapshot: %w", err)
	}

	var bookings []entities.Booking
	if err := json.Unmarshal([]byte(data), &bookings); err != nil {
		return nil, false, fmt.Errorf("unmarshalling booking snapshot: %w", err)
	}
	return bookings, true, nil
}

func (c *SnapshotCache) Set(ctx context.Context, roomID int64, date string, bookings []entities.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("marshalling booking snapshot: %w", err)
	}
	if err := c.Client.Set(ctx, bookingsKey(roomID, date), data, c.TTL).Err(); err != nil {
		return fmt.Errorf("writing booking snapshot: %w", err)
	}
	return nil
}

func (c *SnapshotCache) Invalidate(ctx context.Context, roomID int64, date string) error {
	return c.Client.Del(ctx, bookingsKey(roomID, date)).Err()
}
