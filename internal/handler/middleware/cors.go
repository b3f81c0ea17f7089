package middleware

import (
	"log/slog"
	"slices"

	"salon-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the booking frontend call the API with its session cookies.
// X-Request-ID is always exposed so the frontend can quote it in support enquiries.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	expose := cfg.ExposeHeaders
	if !slices.Contains(expose, requestIDHeader) {
		expose = append(slices.Clone(expose), requestIDHeader)
	}
	logger.Info("cors enabled", "origins", cfg.AllowOrigins, "credentials", cfg.AllowCredentials)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     append(slices.Clone(cfg.AllowHeaders), requestIDHeader),
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
