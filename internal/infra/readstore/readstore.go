package readstore

import (
	"context"
	"log/slog"
	"strings"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
)

// count runs a COUNT(*) statement sharing the list query's filter arguments.
func count(ctx context.Context, dbtx db.DBTX, logger *slog.Logger, sql string, args ...any) (int, error) {
	var n int
	if err := dbtx.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, infra.WrapPgErr(logger, "failed to count rows", err)
	}
	return n, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns free text into an ILIKE pattern that matches it literally anywhere.
// Empty text stays empty so the filter is skipped.
func containsPattern(q string) string {
	if q == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(q) + "%"
}
