package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// overlayTTL bounds how long an edit can shadow the database if its flush and rollback both get lost.
const overlayTTL = 10 * time.Minute

// PriorityOverlay stores admin priority edits that have not been written to Postgres yet.
type PriorityOverlay struct {
	client *redis.Client
}

func NewPriorityOverlay(client *redis.Client) *PriorityOverlay {
	return &PriorityOverlay{client: client}
}

func priorityKey(id uuid.UUID) string { return "provider:" + id.String() + ":priority" }

// clearIfEqual deletes KEYS[1] only while it holds ARGV[1].
var clearIfEqual = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (o *PriorityOverlay) SetPriority(ctx context.Context, providerID uuid.UUID, priority int) error {
	if err := o.client.Set(ctx, priorityKey(providerID), priority, overlayTTL).Err(); err != nil {
		return errs.Wrap(err, "failed to set priority overlay")
	}
	return nil
}

// ClearPriority drops the overlay if it still holds priority. A newer edit written in the
// meantime is left in place.
func (o *PriorityOverlay) ClearPriority(ctx context.Context, providerID uuid.UUID, priority int) error {
	err := clearIfEqual.Run(ctx, o.client, []string{priorityKey(providerID)}, strconv.Itoa(priority)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return errs.Wrap(err, "failed to clear priority overlay")
	}
	return nil
}

// Priorities returns the pending priority of every id that has one.
func (o *PriorityOverlay) Priorities(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int)
	if len(ids) == 0 {
		return out, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = priorityKey(id)
	}
	values, err := o.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errs.Wrap(err, "failed to read priority overlay")
	}
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		out[ids[i]] = n
	}
	return out, nil
}
