package redisadapter

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// currentDayKey is written by the external time-advancement service.
const currentDayKey = "current_day"

// DayProvider reads the current simulated day from Redis. It implements
// port.DayProvider. The day defaults to 1 when the key has never been set.
type DayProvider struct {
	client *redis.Client
}

// NewDayProvider returns a provider backed by the given Redis client.
func NewDayProvider(client *redis.Client) *DayProvider {
	return &DayProvider{client: client}
}

// CurrentDay returns the simulated day, or 1 when no day has been set yet.
func (p *DayProvider) CurrentDay(ctx context.Context) (int64, error) {
	day, err := p.client.Get(ctx, currentDayKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return day, nil
}
