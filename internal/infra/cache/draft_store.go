package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DraftStore keeps booking drafts in redis. Every write refreshes the TTL, so a draft
// expires after ttl of inactivity.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewDraftStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *DraftStore {
	return &DraftStore{client: client, ttl: ttl, logger: logger}
}

func draftKey(id uuid.UUID) string { return "draft:" + id.String() }
func linkKey(id uuid.UUID) string  { return "draft:" + id.String() + ":booking" }

// reverse of linkKey, read once the booking is paid
func bookingDraftKey(id uuid.UUID) string { return "booking:" + id.String() + ":draft" }

func (s *DraftStore) Save(ctx context.Context, snap booking.DraftSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errs.Wrap(err, "failed to encode draft")
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, draftKey(snap.ID), data, s.ttl)
	pipe.Expire(ctx, linkKey(snap.ID), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Error("failed to save draft", "draft_id", snap.ID, "error", err.Error())
		return errs.Wrap(err, "failed to save draft")
	}
	return nil
}

func (s *DraftStore) Load(ctx context.Context, id uuid.UUID) (booking.DraftSnapshot, error) {
	data, err := s.client.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return booking.DraftSnapshot{}, commands.ErrDraftNotFound
		}
		return booking.DraftSnapshot{}, errs.Wrap(err, "failed to load draft")
	}
	var snap booking.DraftSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return booking.DraftSnapshot{}, errs.Wrap(err, "failed to decode draft")
	}
	return snap, nil
}

func (s *DraftStore) Delete(ctx context.Context, id uuid.UUID) error {
	keys := []string{draftKey(id), linkKey(id)}
	// an unreadable link only leaves the reverse key to its ttl
	if bookingID, ok, err := s.LinkedBooking(ctx, id); err == nil && ok {
		keys = append(keys, bookingDraftKey(bookingID))
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "failed to delete draft")
	}
	return nil
}

func (s *DraftStore) LinkBooking(ctx context.Context, draftID, bookingID uuid.UUID) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, linkKey(draftID), bookingID.String(), s.ttl)
	pipe.Set(ctx, bookingDraftKey(bookingID), draftID.String(), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return errs.Wrap(err, "failed to link booking to draft")
	}
	return nil
}

func (s *DraftStore) LinkedDraft(ctx context.Context, bookingID uuid.UUID) (uuid.UUID, bool, error) {
	return s.readLink(ctx, bookingDraftKey(bookingID))
}

func (s *DraftStore) LinkedBooking(ctx context.Context, draftID uuid.UUID) (uuid.UUID, bool, error) {
	return s.readLink(ctx, linkKey(draftID))
}

func (s *DraftStore) readLink(ctx context.Context, key string) (uuid.UUID, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, errs.Wrap(err, "failed to read draft booking link")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, false, errs.Wrapf(err, "corrupt draft booking link %s", key)
	}
	return id, true, nil
}
