package queries

import (
	"context"
	"strings"
	"time"
)

const (
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// ListParams carries the shared filter and pagination inputs of list screens.
// From and To are inclusive calendar dates.
type ListParams struct {
	Query    string
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

func (p ListParams) Normalize() ListParams {
	p.Query = strings.TrimSpace(p.Query)
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ToExclusive returns the instant just past the To date, for timestamp columns.
func (p ListParams) ToExclusive() *time.Time {
	if p.To == nil {
		return nil
	}
	t := p.To.AddDate(0, 0, 1)
	return &t
}

func (p ListParams) ValidRange() bool {
	return p.From == nil || p.To == nil || !p.To.Before(*p.From)
}

type Page[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

func (p Page[T]) TotalPages() int {
	return LastPage(p.Total, p.PageSize)
}

// LastPage is never below 1, so an empty result still reports page 1.
func LastPage(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

type fetchFunc[T any] func(ctx context.Context, p ListParams) ([]T, int, error)

// paginate normalizes p and fetches one page. A page past the end is clamped to the last page.
func paginate[T any](ctx context.Context, p ListParams, fetch fetchFunc[T]) (Page[T], error) {
	if !p.ValidRange() {
		return Page[T]{}, ErrInvalidDateRange
	}
	p = p.Normalize()

	items, total, err := fetch(ctx, p)
	if err != nil {
		return Page[T]{}, err
	}
	if last := LastPage(total, p.PageSize); p.Page > last {
		p.Page = last
		items, total, err = fetch(ctx, p)
		if err != nil {
			return Page[T]{}, err
		}
	}
	if items == nil {
		items = []T{}
	}

	return Page[T]{Items: items, Page: p.Page, PageSize: p.PageSize, Total: total}, nil
}
