package money

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrInvalidCurrency  = errors.New("currency must be a 3-letter ISO code")
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Money is an amount in minor units (paise, cents) of a single currency.
type Money struct {
	amount   int64
	currency string
}

func New(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if len(cur) != 3 {
		return Money{}, ErrInvalidCurrency
	}
	for _, r := range cur {
		if r < 'A' || r > 'Z' {
			return Money{}, ErrInvalidCurrency
		}
	}
	return Money{amount: amount, currency: cur}, nil
}

// Zero is an empty amount in currency; currency is assumed valid.
func Zero(currency string) Money {
	return Money{currency: strings.ToUpper(currency)}
}

func (m Money) Amount() int64    { return m.amount }
func (m Money) Currency() string { return m.currency }
func (m Money) IsPositive() bool { return m.amount > 0 }
func (m Money) IsZero() bool     { return m.amount == 0 }

func (m Money) Add(o Money) (Money, error) {
	if m.currency != o.currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount + o.amount, currency: m.currency}, nil
}

func (m Money) Sub(o Money) (Money, error) {
	if m.currency != o.currency {
		return Money{}, ErrCurrencyMismatch
	}
	if o.amount > m.amount {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: m.amount - o.amount, currency: m.currency}, nil
}

// String renders major.minor units, e.g. "INR 1250.00".
func (m Money) String() string {
	return fmt.Sprintf("%s %d.%02d", m.currency, m.amount/100, m.amount%100)
}
