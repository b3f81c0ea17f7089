package api

import (
	"errors"
	"log/slog"
	"net/http"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/enquiry"
	"salon-booking/internal/domain/payment"
	"salon-booking/internal/domain/provider"
	"salon-booking/internal/domain/review"
	"salon-booking/internal/domain/terms"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/dto/request"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type errorRule struct {
	target error
	status int
	// message overrides the sentinel text when set.
	message string
}

// errorRules is checked in order; the first matching target decides the response.
var errorRules = []errorRule{
	// authentication
	{target: commands.ErrInvalidCredentials, status: http.StatusUnauthorized, message: "Invalid email or password"},
	{target: commands.ErrAuthenticationFailed, status: http.StatusUnauthorized, message: "Invalid email or password"},
	{target: commands.ErrTokenValidation, status: http.StatusUnauthorized, message: "Invalid or expired token"},
	{target: commands.ErrUserInactive, status: http.StatusForbidden, message: "Account is inactive"},
	{target: commands.ErrRoleNotAllowed, status: http.StatusForbidden},

	// not found
	{target: commands.ErrUserNotFound, status: http.StatusNotFound, message: "User not found"},
	{target: queries.ErrUserNotFound, status: http.StatusNotFound, message: "User not found"},
	{target: commands.ErrProviderNotFound, status: http.StatusNotFound},
	{target: queries.ErrProviderNotFound, status: http.StatusNotFound},
	{target: commands.ErrNoProviderProfile, status: http.StatusNotFound},
	{target: queries.ErrNoProviderProfile, status: http.StatusNotFound},
	{target: commands.ErrServiceNotFound, status: http.StatusNotFound},
	{target: commands.ErrEmployeeNotFound, status: http.StatusNotFound},
	{target: queries.ErrEmployeeNotFound, status: http.StatusNotFound},
	{target: commands.ErrBookingNotFound, status: http.StatusNotFound},
	{target: queries.ErrBookingNotFound, status: http.StatusNotFound},
	{target: commands.ErrReviewNotFound, status: http.StatusNotFound},
	{target: commands.ErrEnquiryNotFound, status: http.StatusNotFound},
	{target: commands.ErrDraftNotFound, status: http.StatusNotFound},
	{target: commands.ErrTermsNotPublished, status: http.StatusNotFound},
	{target: queries.ErrTermsNotFound, status: http.StatusNotFound},

	// ownership
	{target: commands.ErrBookingAccess, status: http.StatusForbidden},
	{target: queries.ErrBookingAccess, status: http.StatusForbidden},
	{target: commands.ErrReviewNotOwned, status: http.StatusForbidden},
	{target: review.ErrNotAuthor, status: http.StatusForbidden},
	{target: enquiry.ErrNotParticipant, status: http.StatusForbidden},

	// conflicts
	{target: commands.ErrEmailTaken, status: http.StatusConflict},
	{target: commands.ErrSlotTaken, status: http.StatusConflict},
	{target: booking.ErrSlotOverlap, status: http.StatusConflict},
	{target: commands.ErrDraftAlreadyPaid, status: http.StatusConflict},
	{target: commands.ErrPaymentProcessing, status: http.StatusConflict},
	{target: commands.ErrProviderExists, status: http.StatusConflict},
	{target: commands.ErrEmployeeExists, status: http.StatusConflict},
	{target: commands.ErrDuplicateReview, status: http.StatusConflict},
	{target: review.ErrAlreadyReviewed, status: http.StatusConflict},
	{target: commands.ErrTermsVersionExists, status: http.StatusConflict},
	{target: commands.ErrTermsOutdated, status: http.StatusConflict},
	{target: commands.ErrProviderNotBookable, status: http.StatusConflict},
	{target: queries.ErrProviderNotBookable, status: http.StatusConflict},
	{target: provider.ErrAlreadyDecided, status: http.StatusConflict},
	{target: provider.ErrNotApproved, status: http.StatusConflict},
	{target: enquiry.ErrEnquiryClosed, status: http.StatusConflict},
	{target: booking.ErrInvalidStatusTransition, status: http.StatusConflict},

	// form rejections that leave the draft unchanged
	{target: commands.ErrDateRequired, status: http.StatusUnprocessableEntity},
	{target: commands.ErrDateInPast, status: http.StatusUnprocessableEntity},
	{target: queries.ErrDateInPast, status: http.StatusUnprocessableEntity},
	{target: commands.ErrSlotNotOffered, status: http.StatusUnprocessableEntity},
	{target: booking.ErrSlotUnavailable, status: http.StatusUnprocessableEntity},
	{target: booking.ErrAddOnDoesNotFit, status: http.StatusUnprocessableEntity},
	{target: booking.ErrServiceNotFit, status: http.StatusUnprocessableEntity},
	{target: booking.ErrAddOnIsPrimary, status: http.StatusUnprocessableEntity},
	{target: booking.ErrNoPrimaryService, status: http.StatusUnprocessableEntity},
	{target: booking.ErrDraftNotReady, status: http.StatusUnprocessableEntity},
	{target: review.ErrNotEligible, status: http.StatusUnprocessableEntity},

	// malformed input
	{target: request.ErrInvalidDate, status: http.StatusBadRequest},
	{target: queries.ErrInvalidCursor, status: http.StatusBadRequest},
	{target: queries.ErrInvalidDateRange, status: http.StatusBadRequest},
	{target: queries.ErrInvalidStatusFilter, status: http.StatusBadRequest},
	{target: queries.ErrInvalidDuration, status: http.StatusBadRequest},
	{target: payment.ErrNoOrderID, status: http.StatusBadRequest},
	{target: payment.ErrReceiptNotPaid, status: http.StatusConflict},

	// upstream
	{target: commands.ErrGatewayUnavailable, status: http.StatusBadGateway, message: "Payment gateway unavailable, please retry"},
}

// inputErrors are domain constructor rejections of client input.
var inputErrors = []error{
	user.ErrInvalidEmail, user.ErrInvalidRole, user.ErrPasswordTooWeak, user.ErrEmptyName, user.ErrNameTooLong,
	provider.ErrInvalidKind, provider.ErrInvalidStatus, provider.ErrEmptyName, provider.ErrNameTooLong,
	provider.ErrEmptyAddress, provider.ErrInvalidHours, provider.ErrInvalidPriority,
	provider.ErrEmptyEmployeeName, provider.ErrEmployeeNameTooLong,
	catalog.ErrEmptyServiceName, catalog.ErrServiceNameTooLong, catalog.ErrStyleTooLong,
	catalog.ErrInvalidDuration, catalog.ErrInvalidPrice,
	review.ErrInvalidRating, review.ErrEmptyComment, review.ErrCommentTooLong,
	enquiry.ErrEmptySubject, enquiry.ErrSubjectTooLong, enquiry.ErrEmptyMessage, enquiry.ErrMessageTooLong,
	enquiry.ErrInvalidStatus, booking.ErrInvalidStatus, booking.ErrEmptyCustomerName, booking.ErrEmptyEmployee,
	booking.ErrEmptyTermsVersion, terms.ErrEmptyVersion, terms.ErrEmptyBody,
}

// respondError writes the JSON error for err. Unmapped errors become a 500 and are logged
// with their stack; the cause never reaches the client.
func respondError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	if errors.As(err, &verr) {
		httperr.Abort(c, err, httperr.New(http.StatusUnprocessableEntity, verr.Reason).
			WithDetail(httperr.FieldDetail(string(verr.Field))))
		return
	}

	for _, rule := range errorRules {
		if errs.Is(err, rule.target) {
			msg := rule.message
			if msg == "" {
				msg = rule.target.Error()
			}
			httperr.Abort(c, err, httperr.New(rule.status, msg))
			return
		}
	}

	for _, target := range inputErrors {
		if errors.Is(err, target) {
			httperr.Abort(c, err, httperr.New(http.StatusBadRequest, target.Error()))
			return
		}
	}

	slog.Error("unhandled error",
		"path", c.FullPath(),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 8))
	httperr.Abort(c, err, httperr.Internal())
}

func badRequest(c *gin.Context, err error) {
	httperr.Abort(c, err, httperr.New(http.StatusBadRequest, "Invalid request").WithDetail(err.Error()))
}

// session reads the caller placed in the context by the auth middleware. A missing session
// means the route was registered without RequireAuth.
func session(c *gin.Context) (usecase.Session, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.Abort(c, errors.New("session missing"), httperr.Internal())
	}
	return s, ok
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.Abort(c, err, httperr.New(http.StatusBadRequest, "Invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}
