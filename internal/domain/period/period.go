// Package period resolves named or custom period descriptors to inclusive calendar date ranges.
package period

import (
	"strings"
	"time"

	"nutriledger/internal/errors"

	"cloud.google.com/go/civil"
)

// Token names a period relative to a reference date.
type Token string

const (
	TokenToday     Token = "today"
	TokenYesterday Token = "yesterday"
	TokenThisWeek  Token = "this_week"
	TokenLastWeek  Token = "last_week"
	TokenThisMonth Token = "this_month"
	TokenLastMonth Token = "last_month"
	TokenCustom    Token = "custom"
)

// MaxDays bounds a custom range. Two years keeps year-over-year comparisons possible.
const MaxDays = 731

var (
	// ErrInvalidRange is returned for malformed custom bounds or an end before the start.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrUnknownToken is returned for an unrecognized period name.
	ErrUnknownToken = errors.New("unknown period token")
)

// Descriptor is either a named token or a custom range with explicit bounds.
type Descriptor struct {
	Token Token
	Start civil.Date // custom only
	End   civil.Date // custom only
}

// Named builds a descriptor for a named token.
func Named(token Token) Descriptor {
	return Descriptor{Token: token}
}

// Custom builds a descriptor for explicit bounds.
func Custom(start, end civil.Date) Descriptor {
	return Descriptor{Token: TokenCustom, Start: start, End: end}
}

// ParseDescriptor reads a descriptor from boundary strings in YYYY-MM-DD form.
// An empty token means custom when both dates are given, and today otherwise.
func ParseDescriptor(token, start, end string) (Descriptor, error) {
	t := Token(strings.ToLower(strings.TrimSpace(token)))
	if t == "" {
		if start == "" && end == "" {
			return Named(TokenToday), nil
		}
		t = TokenCustom
	}

	if t != TokenCustom {
		return Named(t), nil
	}

	s, err := civil.ParseDate(strings.TrimSpace(start))
	if err != nil {
		return Descriptor{}, errors.Wrapf(ErrInvalidRange, "start date %q", start)
	}
	e, err := civil.ParseDate(strings.TrimSpace(end))
	if err != nil {
		return Descriptor{}, errors.Wrapf(ErrInvalidRange, "end date %q", end)
	}

	return Custom(s, e), nil
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start civil.Date `json:"start"`
	End   civil.Date `json:"end"`
}

// Single is the range covering exactly one day.
func Single(d civil.Date) DateRange {
	return DateRange{Start: d, End: d}
}

// Days is the inclusive number of days in the range.
func (r DateRange) Days() int {
	return r.End.DaysSince(r.Start) + 1
}

// Contains reports whether d falls inside the range, bounds included.
func (r DateRange) Contains(d civil.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Dates lists every day of the range in order.
func (r DateRange) Dates() []civil.Date {
	n := r.Days()
	if n <= 0 {
		return nil
	}

	out := make([]civil.Date, 0, n)
	for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
		out = append(out, d)
	}

	return out
}

// Resolve converts a descriptor to concrete bounds anchored on ref.
// Weeks start on Sunday. this_week and this_month end at ref; last_week and last_month are full periods.
func Resolve(desc Descriptor, ref civil.Date) (DateRange, error) {
	switch desc.Token {
	case TokenToday:
		return Single(ref), nil
	case TokenYesterday:
		return Single(ref.AddDays(-1)), nil
	case TokenThisWeek:
		return DateRange{Start: ref.AddDays(-weekdayIndex(ref)), End: ref}, nil
	case TokenLastWeek:
		start := ref.AddDays(-(7 + weekdayIndex(ref)))
		return DateRange{Start: start, End: start.AddDays(6)}, nil
	case TokenThisMonth:
		return DateRange{Start: firstOfMonth(ref), End: ref}, nil
	case TokenLastMonth:
		first := firstOfMonth(ref)
		prev := first.AddDays(-1)
		return DateRange{Start: firstOfMonth(prev), End: prev}, nil
	case TokenCustom:
		if !desc.Start.IsValid() || !desc.End.IsValid() {
			return DateRange{}, errors.Wrap(ErrInvalidRange, "custom range requires start and end dates")
		}
		if desc.End.Before(desc.Start) {
			return DateRange{}, errors.Wrapf(ErrInvalidRange, "end %s precedes start %s", desc.End, desc.Start)
		}
		rng := DateRange{Start: desc.Start, End: desc.End}
		if days := rng.Days(); days > MaxDays {
			return DateRange{}, errors.Wrapf(ErrInvalidRange, "range spans %d days, at most %d allowed", days, MaxDays)
		}
		return rng, nil
	default:
		return DateRange{}, errors.Wrapf(ErrUnknownToken, "%q", desc.Token)
	}
}

// Today is the calendar date of now in loc.
func Today(now time.Time, loc *time.Location) civil.Date {
	return DateOf(now, loc)
}

// DateOf buckets an instant to its calendar date in loc. A nil loc means UTC.
func DateOf(t time.Time, loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.UTC
	}

	return civil.DateOf(t.In(loc))
}

// Bounds returns the half-open instant interval [from, to) covering the range in loc.
func (r DateRange) Bounds(loc *time.Location) (from, to time.Time) {
	if loc == nil {
		loc = time.UTC
	}

	return r.Start.In(loc), r.End.AddDays(1).In(loc)
}

func weekdayIndex(d civil.Date) int {
	return int(d.In(time.UTC).Weekday())
}

func firstOfMonth(d civil.Date) civil.Date {
	return civil.Date{Year: d.Year, Month: d.Month, Day: 1}
}
