package queue

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TypeBookingConfirmed = "booking:confirmed"
	TypeBookingExpire    = "booking:expire"
)

type BookingConfirmedPayload struct {
	BookingID uuid.UUID `json:"booking_id"`
	OrderID   string    `json:"order_id"`
}

func NewBookingConfirmedTask(bookingID uuid.UUID, orderID string) (*asynq.Task, error) {
	b, err := json.Marshal(BookingConfirmedPayload{BookingID: bookingID, OrderID: orderID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmed, b, asynq.MaxRetry(5)), nil
}

type BookingExpirePayload struct {
	BookingID uuid.UUID `json:"booking_id"`
}

func NewBookingExpireTask(bookingID uuid.UUID) (*asynq.Task, error) {
	b, err := json.Marshal(BookingExpirePayload{BookingID: bookingID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingExpire, b, asynq.MaxRetry(10)), nil
}
