package review

import "errors"

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrEmptyComment    = errors.New("comment cannot be empty")
	ErrCommentTooLong  = errors.New("comment exceeds maximum length")
	ErrNotEligible     = errors.New("booking is not eligible for review")
	ErrAlreadyReviewed = errors.New("review already exists for this booking")
	ErrNotAuthor       = errors.New("only the author can change this review")
)
