package period

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestResolve_NamedTokens(t *testing.T) {
	t.Parallel()

	friday := date(2024, 3, 15)
	sunday := date(2024, 3, 17)

	tests := []struct {
		name     string
		token    Token
		ref      civil.Date
		expected DateRange
	}{
		{name: "today", token: TokenToday, ref: friday, expected: DateRange{date(2024, 3, 15), date(2024, 3, 15)}},
		{name: "yesterday", token: TokenYesterday, ref: friday, expected: DateRange{date(2024, 3, 14), date(2024, 3, 14)}},
		{name: "yesterday across month", token: TokenYesterday, ref: date(2024, 3, 1), expected: DateRange{date(2024, 2, 29), date(2024, 2, 29)}},
		{name: "this week so far", token: TokenThisWeek, ref: friday, expected: DateRange{date(2024, 3, 10), date(2024, 3, 15)}},
		{name: "this week on sunday", token: TokenThisWeek, ref: sunday, expected: DateRange{date(2024, 3, 17), date(2024, 3, 17)}},
		{name: "last week", token: TokenLastWeek, ref: friday, expected: DateRange{date(2024, 3, 3), date(2024, 3, 9)}},
		{name: "last week from sunday", token: TokenLastWeek, ref: sunday, expected: DateRange{date(2024, 3, 10), date(2024, 3, 16)}},
		{name: "this month so far", token: TokenThisMonth, ref: friday, expected: DateRange{date(2024, 3, 1), date(2024, 3, 15)}},
		{name: "last month leap february", token: TokenLastMonth, ref: friday, expected: DateRange{date(2024, 2, 1), date(2024, 2, 29)}},
		{name: "last month non-leap february", token: TokenLastMonth, ref: date(2023, 3, 31), expected: DateRange{date(2023, 2, 1), date(2023, 2, 28)}},
		{name: "last month across year", token: TokenLastMonth, ref: date(2024, 1, 10), expected: DateRange{date(2023, 12, 1), date(2023, 12, 31)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(Named(tt.token), tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolve_LastWeekIsAlwaysSevenDaysSundayToSaturday(t *testing.T) {
	t.Parallel()

	for ref := date(2024, 2, 20); !ref.After(date(2024, 3, 20)); ref = ref.AddDays(1) {
		got, err := Resolve(Named(TokenLastWeek), ref)
		require.NoError(t, err)
		assert.Equal(t, 7, got.Days(), "ref=%s", ref)
		assert.Equal(t, time.Sunday, got.Start.In(time.UTC).Weekday(), "ref=%s", ref)
		assert.True(t, got.End.Before(ref), "ref=%s", ref)
	}
}

func TestResolve_Custom(t *testing.T) {
	t.Parallel()

	got, err := Resolve(Custom(date(2024, 1, 5), date(2024, 1, 9)), date(2024, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, DateRange{date(2024, 1, 5), date(2024, 1, 9)}, got)

	got, err = Resolve(Custom(date(2024, 1, 5), date(2024, 1, 5)), date(2024, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Days())

	_, err = Resolve(Custom(date(2024, 1, 9), date(2024, 1, 5)), date(2024, 3, 15))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Resolve(Descriptor{Token: TokenCustom}, date(2024, 3, 15))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestResolve_CustomLengthLimit(t *testing.T) {
	t.Parallel()

	ref := date(2024, 3, 15)
	start := date(2022, 1, 1)

	got, err := Resolve(Custom(start, start.AddDays(MaxDays-1)), ref)
	require.NoError(t, err)
	assert.Equal(t, MaxDays, got.Days())

	_, err = Resolve(Custom(start, start.AddDays(MaxDays)), ref)
	assert.ErrorIs(t, err, ErrInvalidRange)

	desc, err := ParseDescriptor("custom", "0001-01-01", "9999-12-31")
	require.NoError(t, err)
	_, err = Resolve(desc, ref)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestResolve_UnknownToken(t *testing.T) {
	t.Parallel()

	_, err := Resolve(Named("next_decade"), date(2024, 3, 15))
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestParseDescriptor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		token      string
		start, end string
		expected   Descriptor
		err        error
	}{
		{name: "empty defaults to today", expected: Named(TokenToday)},
		{name: "named token", token: "Last_Month", expected: Named(TokenLastMonth)},
		{name: "unknown token passes through", token: "fortnight", expected: Named("fortnight")},
		{name: "explicit custom", token: "custom", start: "2024-01-05", end: "2024-01-09", expected: Custom(date(2024, 1, 5), date(2024, 1, 9))},
		{name: "implicit custom", start: "2024-01-05", end: "2024-01-09", expected: Custom(date(2024, 1, 5), date(2024, 1, 9))},
		{name: "bad start", token: "custom", start: "05/01/2024", end: "2024-01-09", err: ErrInvalidRange},
		{name: "missing end", token: "custom", start: "2024-01-05", err: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDescriptor(tt.token, tt.start, tt.end)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDateRange_Helpers(t *testing.T) {
	t.Parallel()

	r := DateRange{Start: date(2024, 2, 27), End: date(2024, 3, 2)}

	assert.Equal(t, 5, r.Days())
	assert.Equal(t, []civil.Date{
		date(2024, 2, 27), date(2024, 2, 28), date(2024, 2, 29), date(2024, 3, 1), date(2024, 3, 2),
	}, r.Dates())
	assert.True(t, r.Contains(date(2024, 2, 27)))
	assert.True(t, r.Contains(date(2024, 3, 2)))
	assert.False(t, r.Contains(date(2024, 3, 3)))
	assert.False(t, r.Contains(date(2024, 2, 26)))
}

func TestDateOfAndBounds(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC-6", -6*60*60)
	instant := time.Date(2024, 3, 16, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, date(2024, 3, 16), DateOf(instant, nil))
	assert.Equal(t, date(2024, 3, 15), DateOf(instant, loc))
	assert.Equal(t, date(2024, 3, 15), Today(instant, loc))

	from, to := Single(date(2024, 3, 15)).Bounds(loc)
	assert.True(t, from.Equal(time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC)))
	assert.True(t, to.Equal(time.Date(2024, 3, 16, 6, 0, 0, 0, time.UTC)))
}
