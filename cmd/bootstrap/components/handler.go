package components

import (
	"salon-booking/internal/handler"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProviderHandler,
		api.NewDraftHandler,
		api.NewPaymentHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewEnquiryHandler,
		api.NewTermsHandler,
		newProviderQueries,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func newProviderQueries(
	providers queries.ProviderQueries,
	catalog queries.CatalogQueries,
	availability queries.AvailabilityQueries,
	bookings queries.BookingQueries,
	enquiries queries.EnquiryQueries,
) api.ProviderQueries {
	return api.ProviderQueries{
		Providers:    providers,
		Catalog:      catalog,
		Availability: availability,
		Bookings:     bookings,
		Enquiries:    enquiries,
	}
}
