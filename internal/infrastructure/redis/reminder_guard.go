package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReminderGuard deduplicates streak-risk scans within a calendar day. The
// notifier itself emits reminders on every invocation; the scheduler claims
// the day through the guard first, so repeated evening runs do not spam users
// with duplicate reminders.
type ReminderGuard struct {
	client *redis.Client
}

// NewReminderGuard creates a new reminder guard
func NewReminderGuard(client *redis.Client) *ReminderGuard {
	return &ReminderGuard{client: client}
}

// scanKey generates the Redis key for a given day's risk scan
func (g *ReminderGuard) scanKey(day time.Time) string {
	return fmt.Sprintf("streak-risk-scan:%s", day.Format("2006-01-02"))
}

// ClaimScan attempts to claim today's risk scan. Returns true when this call
// claimed it, false when a scan already ran today. The claim expires at the
// next midnight, when the risk window resets.
func (g *ReminderGuard) ClaimScan(ctx context.Context, now time.Time) (bool, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	ttl := midnight.Sub(now)
	if ttl <= 0 {
		ttl = time.Minute
	}

	claimed, err := g.client.SetNX(ctx, g.scanKey(now), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim risk scan: %w", err)
	}

	return claimed, nil
}

// ReleaseScan gives the claim back so a later run can retry, used when the
// scan failed after claiming
func (g *ReminderGuard) ReleaseScan(ctx context.Context, now time.Time) error {
	if err := g.client.Del(ctx, g.scanKey(now)).Err(); err != nil {
		return fmt.Errorf("failed to release risk scan: %w", err)
	}
	return nil
}
