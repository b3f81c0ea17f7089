package payment

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// Receipt is the data printed on a paid booking's receipt.
type Receipt struct {
	BookingID    string
	ProviderName string
	CustomerName string
	EmployeeName string
	Date         time.Time
	TimeSlot     string
	Services     []ReceiptLine
	Record       Record
	IssuedAt     time.Time
}

type ReceiptLine struct {
	Name            string
	DurationMinutes int
	Price           string
}

var ErrReceiptNotPaid = fmt.Errorf("receipt is only available for %s payments", StatusPaid)

// WriteReceipt renders a plain-text receipt.
func WriteReceipt(w io.Writer, r Receipt) error {
	if r.Record.Status != StatusPaid {
		return ErrReceiptNotPaid
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rule := strings.Repeat("-", 44)

	lines := []string{
		"PAYMENT RECEIPT",
		rule,
		"Booking\t" + r.BookingID,
		"Provider\t" + r.ProviderName,
		"Customer\t" + r.CustomerName,
	}
	if r.EmployeeName != "" {
		lines = append(lines, "Stylist\t"+r.EmployeeName)
	}
	lines = append(lines,
		"Date\t"+r.Date.Format("Mon, 02 Jan 2006"),
		"Time\t"+r.TimeSlot,
		rule,
	)
	for _, s := range r.Services {
		lines = append(lines, fmt.Sprintf("%s (%d min)\t%s", s.Name, s.DurationMinutes, s.Price))
	}
	lines = append(lines,
		rule,
		"Total paid\t"+r.Record.Amount.String(),
		"Order\t"+r.Record.OrderID,
		"Transaction\t"+r.Record.TransactionID,
		"Issued\t"+r.IssuedAt.Format(time.RFC3339),
	)

	for _, l := range lines {
		if _, err := fmt.Fprintln(tw, l); err != nil {
			return err
		}
	}
	return tw.Flush()
}
