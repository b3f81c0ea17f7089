package request

import (
	"strings"
	"time"

	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errs.New("dates must be formatted as YYYY-MM-DD")

// ListQuery is bound from the query string of every paged list.
type ListQuery struct {
	Q        string `form:"q"`
	From     string `form:"from"`
	To       string `form:"to"`
	Status   string `form:"status"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

// ToParams interprets from/to as calendar dates in loc.
func (q *ListQuery) ToParams(loc *time.Location) (queries.ListParams, error) {
	from, err := ParseDate(q.From, loc)
	if err != nil {
		return queries.ListParams{}, err
	}
	to, err := ParseDate(q.To, loc)
	if err != nil {
		return queries.ListParams{}, err
	}
	return queries.ListParams{
		Query:    q.Q,
		From:     from,
		To:       to,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

// ParseDate returns nil for a blank value.
func ParseDate(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}
	return &t, nil
}

type CursorQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q *CursorQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

type AvailabilityQuery struct {
	Date     string `form:"date" binding:"required,datetime=2006-01-02"`
	Employee string `form:"employee"`
	Duration int    `form:"duration" binding:"required,min=1,max=480"`
}
