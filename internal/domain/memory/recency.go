package memory

import (
	"fmt"
	"time"

	"github.com/recollect-ai/recollect/internal/domain"
)

// dateCutoff is the age past which TimeAgo switches from week buckets to an
// absolute date. Inferred from observed behavior, not an upstream contract.
const dateCutoff = 30 * 24 * time.Hour

// ParseTimestamp parses an RFC 3339 memory timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrBadTimestamp, s)
	}
	return t, nil
}

// TimeAgo renders ts as a short relative label against now ("just now",
// "5 minutes ago", "2 weeks ago"), falling back to an absolute date with the
// year once the age exceeds dateCutoff.
func TimeAgo(ts, now time.Time) string {
	age := now.Sub(ts)

	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return pluralAgo(int(age/time.Minute), "minute")
	case age < 24*time.Hour:
		return pluralAgo(int(age/time.Hour), "hour")
	case age < 7*24*time.Hour:
		return pluralAgo(int(age/(24*time.Hour)), "day")
	case age < dateCutoff:
		return pluralAgo(int(age/(7*24*time.Hour)), "week")
	default:
		return ts.Format("Jan 2, 2006")
	}
}

func pluralAgo(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
