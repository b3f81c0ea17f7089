package response

import (
	"salon-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PageResponse[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// FromPage copies view rows into response rows field by field.
func FromPage[R, V any](p queries.Page[V]) (PageResponse[R], error) {
	items := make([]R, 0, len(p.Items))
	if err := copier.Copy(&items, p.Items); err != nil {
		return PageResponse[R]{}, err
	}
	return PageResponse[R]{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages(),
	}, nil
}

// From copies a single view into its response shape.
func From[R any](v any) (*R, error) {
	var out R
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}
