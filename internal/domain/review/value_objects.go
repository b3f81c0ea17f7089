package review

import (
	"strings"
	"unicode/utf8"
)

// MaxCommentLength counts characters, not bytes; comments are often written in Indic scripts.
const MaxCommentLength = 1000

// Rating is a star score from MinRating to MaxRating.
type Rating int

const (
	MinRating Rating = 1
	MaxRating Rating = 5
)

func NewRating(stars int) (Rating, error) {
	r := Rating(stars)
	if r < MinRating || r > MaxRating {
		return 0, ErrInvalidRating
	}
	return r, nil
}

func (r Rating) Value() int { return int(r) }

type Comment string

func NewComment(raw string) (Comment, error) {
	text := strings.TrimSpace(raw)
	switch {
	case text == "":
		return "", ErrEmptyComment
	case utf8.RuneCountInString(text) > MaxCommentLength:
		return "", ErrCommentTooLong
	}
	return Comment(text), nil
}

func (c Comment) String() string { return string(c) }
