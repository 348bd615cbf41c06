package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/alphadash/dashboard/internal/apperrors"
)

// instantLayout serializes instants with millisecond precision and an
// explicit zone designator, e.g. "2023-01-01T00:00:00.000Z".
const instantLayout = "2006-01-02T15:04:05.000Z07:00"

// ParsePurchaseDate parses a calendar date in YYYY-MM-DD form into the
// UTC-midnight instant of that date.
//
// The date is anchored to UTC explicitly, never to the process-local
// zone: a user east of UTC picking "2023-01-01" must not end up with a
// stored instant whose UTC calendar date is 2022-12-31.
func ParsePurchaseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, s)
	}
	return t, nil
}

// FormatInstant serializes t as an ISO-8601 instant in UTC, the wire
// form the backend expects for purchase dates.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(instantLayout)
}
