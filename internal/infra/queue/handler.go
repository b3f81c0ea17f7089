package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// ReceiptArchiver is satisfied by the payment commands.
type ReceiptArchiver interface {
	ArchiveReceipt(ctx context.Context, bookingID uuid.UUID) error
}

// HoldExpirer releases the slot of a booking that was never paid.
type HoldExpirer interface {
	ExpireHold(ctx context.Context, bookingID uuid.UUID) error
}

type Processor interface {
	ReceiptArchiver
	HoldExpirer
}

func NewServeMux(p Processor, logger *slog.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingConfirmed, HandleBookingConfirmed(p, logger))
	mux.HandleFunc(TypeBookingExpire, HandleBookingExpire(p, logger))
	return mux
}

func HandleBookingConfirmed(archiver ReceiptArchiver, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p BookingConfirmedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid booking confirmed payload", "error", err.Error())
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		if err := archiver.ArchiveReceipt(ctx, p.BookingID); err != nil {
			logger.Warn("failed to archive receipt", "booking_id", p.BookingID, "order_id", p.OrderID, "error", err.Error())
			return err
		}
		logger.Info("receipt archived", "booking_id", p.BookingID, "order_id", p.OrderID)
		return nil
	}
}

func HandleBookingExpire(expirer HoldExpirer, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p BookingExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid booking expire payload", "error", err.Error())
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		if err := expirer.ExpireHold(ctx, p.BookingID); err != nil {
			logger.Warn("failed to expire booking hold", "booking_id", p.BookingID, "error", err.Error())
			return err
		}
		return nil
	}
}
