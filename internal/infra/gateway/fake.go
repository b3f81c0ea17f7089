package gateway

import (
	"context"
	"sync"

	"salon-booking/internal/domain/payment"
	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// Fake is an in-memory gateway for local runs without a Stripe key. Orders report
// PENDING on the first verification and PAID afterwards.
type Fake struct {
	mu     sync.Mutex
	orders map[string]*fakeOrder
}

type fakeOrder struct {
	record   payment.Record
	verified int
}

func NewFake() *Fake {
	return &Fake{orders: map[string]*fakeOrder{}}
}

func (f *Fake) CreateOrder(_ context.Context, req commands.OrderRequest) (payment.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := "fake_" + uuid.NewString()
	f.orders[id] = &fakeOrder{record: payment.Record{OrderID: id, Status: payment.StatusPending, Amount: req.Amount}}
	return payment.Order{OrderID: id, ClientSecret: id + "_secret", Amount: req.Amount}, nil
}

func (f *Fake) Verify(_ context.Context, orderID string) (payment.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return payment.Record{OrderID: orderID, Status: payment.StatusFailed, FailureReason: "unknown order"}, nil
	}
	o.verified++
	if o.verified > 1 && o.record.Status == payment.StatusPending {
		o.record.Status = payment.StatusPaid
		o.record.TransactionID = "txn_" + orderID
	}
	return o.record, nil
}

// CancelOrder fails a pending order. Paid orders cannot be cancelled.
func (f *Fake) CancelOrder(_ context.Context, orderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return nil
	}
	switch o.record.Status {
	case payment.StatusPaid:
		return payment.ErrOrderNotCancellable
	case payment.StatusPending:
		o.record.Status = payment.StatusFailed
		o.record.FailureReason = "abandoned"
	}
	return nil
}
