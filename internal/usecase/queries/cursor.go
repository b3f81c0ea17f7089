package queries

import (
	"encoding/base64"
	"encoding/binary"
	"time"

	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultReviewPageSize = 20
	MaxReviewPageSize     = 100

	// micros since epoch followed by the review ID
	reviewCursorLen = 8 + 16
)

// Cursor is the opaque continuation token of the public review feed.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeReviewCursor marks the position after the review (createdAt, id). Microseconds match
// the timestamptz precision the keyset query compares against.
func EncodeReviewCursor(createdAt time.Time, id uuid.UUID) string {
	buf := make([]byte, reviewCursorLen)
	binary.BigEndian.PutUint64(buf, uint64(createdAt.UnixMicro()))
	copy(buf[8:], id[:])
	return base64.RawURLEncoding.EncodeToString(buf)
}

// DecodeReviewCursor fails with ErrInvalidCursor for anything EncodeReviewCursor did not produce.
func DecodeReviewCursor(token string) (time.Time, uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "decode review cursor"), ErrInvalidCursor)
	}
	if len(raw) != reviewCursorLen {
		return time.Time{}, uuid.Nil, errs.Wrapf(ErrInvalidCursor, "cursor of %d bytes", len(raw))
	}
	id, err := uuid.FromBytes(raw[8:])
	if err != nil || id == uuid.Nil {
		return time.Time{}, uuid.Nil, errs.Wrap(ErrInvalidCursor, "cursor without review id")
	}
	micros := int64(binary.BigEndian.Uint64(raw[:8]))
	return time.UnixMicro(micros).UTC(), id, nil
}

func reviewPageSize(limit int) int {
	switch {
	case limit <= 0:
		return DefaultReviewPageSize
	case limit > MaxReviewPageSize:
		return MaxReviewPageSize
	default:
		return limit
	}
}
