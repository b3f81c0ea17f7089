package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/infra/metrics"
	"salon-booking/internal/pkg/config"

	"log/slog"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine   *gin.Engine
	Config   config.Config
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	Auth     *api.AuthHandler
	Provider *api.ProviderHandler
	Draft    *api.DraftHandler
	Payment  *api.PaymentHandler
	Booking  *api.BookingHandler
	Review   *api.ReviewHandler
	Enquiry  *api.EnquiryHandler
	Terms    *api.TermsHandler

	AuthMiddleware *middleware.AuthMiddleware
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	p.Engine.Use(middleware.Recovery(p.Logger))
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS, p.Logger))
	p.Engine.Use(middleware.RequestLogger(p.Logger))
	p.Engine.Use(p.Metrics.Middleware())
	p.Engine.Use(middleware.NewRateLimiter(p.Config.RateLimit).Middleware())
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	authMw := p.AuthMiddleware

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	customerOnly := authMw.RequireRole(user.RoleCustomer)
	providerOnly := authMw.RequireRole(user.RoleProvider)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: p.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me},
			})
		}

		providers := apiGroup.Group("/providers")
		addRoutes(providers, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Provider.List},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Provider.Detail},
			{Method: http.MethodGet, Path: "/:id/services", Handler: p.Provider.Services},
			{Method: http.MethodGet, Path: "/:id/employees", Handler: p.Provider.Employees},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: p.Provider.Availability},
			{Method: http.MethodGet, Path: "/:id/reviews", Handler: p.Review.ListForProvider},
		})

		apiGroup.GET("/terms/current", p.Terms.Current)

		signedIn := apiGroup.Group("")
		signedIn.Use(authMw.RequireAuth())
		{
			addRoutes(signedIn.Group("/drafts"), []route{
				{Method: http.MethodPost, Path: "", Handler: p.Draft.Create, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Draft.Get},
				{Method: http.MethodPut, Path: "/:id/customer", Handler: p.Draft.SetCustomer},
				{Method: http.MethodPut, Path: "/:id/service", Handler: p.Draft.SelectService},
				{Method: http.MethodPut, Path: "/:id/date", Handler: p.Draft.SelectDate},
				{Method: http.MethodPut, Path: "/:id/employee", Handler: p.Draft.SelectEmployee},
				{Method: http.MethodPut, Path: "/:id/time", Handler: p.Draft.SelectTime},
				{Method: http.MethodPut, Path: "/:id/terms", Handler: p.Draft.AcceptTerms},
				{Method: http.MethodPost, Path: "/:id/addons", Handler: p.Draft.ToggleAddOn},
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: p.Draft.Checkout},
			})

			addRoutes(signedIn.Group("/payments/:orderId"), []route{
				{Method: http.MethodPost, Path: "/verify", Handler: p.Payment.Verify},
				{Method: http.MethodGet, Path: "/status", Handler: p.Payment.Status},
				{Method: http.MethodGet, Path: "/receipt", Handler: p.Payment.Receipt},
			})

			addRoutes(signedIn.Group("/bookings"), []route{
				{Method: http.MethodGet, Path: "", Handler: p.Booking.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Booking.Get},
			})

			addRoutes(signedIn.Group("/reviews"), []route{
				{Method: http.MethodPost, Path: "", Handler: p.Review.Create, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodPatch, Path: "/:id", Handler: p.Review.Update, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Review.Delete},
			})

			addRoutes(signedIn.Group("/enquiries"), []route{
				{Method: http.MethodPost, Path: "", Handler: p.Enquiry.Open, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodGet, Path: "", Handler: p.Enquiry.ListMine, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodPost, Path: "/:id/answer", Handler: p.Enquiry.Answer, Mw: []gin.HandlerFunc{providerOnly}},
				{Method: http.MethodPost, Path: "/:id/close", Handler: p.Enquiry.Close},
			})
		}

		provider := apiGroup.Group("/provider")
		provider.Use(authMw.RequireAuth(), providerOnly)
		addRoutes(provider, []route{
			{Method: http.MethodPost, Path: "/profile", Handler: p.Provider.RegisterProfile},
			{Method: http.MethodGet, Path: "/profile", Handler: p.Provider.MyProfile},
			{Method: http.MethodPatch, Path: "/profile", Handler: p.Provider.UpdateProfile},
			{Method: http.MethodGet, Path: "/employees", Handler: p.Provider.MyEmployees},
			{Method: http.MethodPost, Path: "/employees", Handler: p.Provider.AddEmployee},
			{Method: http.MethodDelete, Path: "/employees/:employeeId", Handler: p.Provider.RemoveEmployee},
			{Method: http.MethodGet, Path: "/services", Handler: p.Provider.MyServices},
			{Method: http.MethodPost, Path: "/services", Handler: p.Provider.AddService},
			{Method: http.MethodDelete, Path: "/services/:serviceId", Handler: p.Provider.RemoveService},
			{Method: http.MethodGet, Path: "/bookings", Handler: p.Provider.MyBookings},
			{Method: http.MethodGet, Path: "/enquiries", Handler: p.Provider.MyEnquiries},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMw.RequireAuth(), authMw.RequireRole(user.RoleAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/providers", Handler: p.Provider.AdminList},
			{Method: http.MethodPost, Path: "/providers/:id/approve", Handler: p.Provider.Approve},
			{Method: http.MethodPost, Path: "/providers/:id/reject", Handler: p.Provider.Reject},
			{Method: http.MethodDelete, Path: "/providers/:id", Handler: p.Provider.Delete},
			{Method: http.MethodPut, Path: "/providers/:id/priority", Handler: p.Provider.SetPriority},
			{Method: http.MethodGet, Path: "/bookings", Handler: p.Booking.AdminList},
			{Method: http.MethodGet, Path: "/revenue", Handler: p.Booking.Revenue},
			{Method: http.MethodGet, Path: "/reviews", Handler: p.Review.AdminList},
			{Method: http.MethodPut, Path: "/reviews/:id/hidden", Handler: p.Review.SetHidden},
			{Method: http.MethodDelete, Path: "/reviews/:id", Handler: p.Review.Delete},
			{Method: http.MethodPut, Path: "/terms", Handler: p.Terms.Publish},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
