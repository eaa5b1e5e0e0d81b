package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRangeClosed(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "plain range",
			raw:       "January 2015 - December 2020",
			wantStart: time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2020, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "same month",
			raw:       "March 2019 - March 2019",
			wantStart: time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "lowercase month names",
			raw:       "january 2015 - december 2020",
			wantStart: time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2020, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := ParseRange(tt.raw)
			require.NoError(t, err)
			assert.False(t, rng.Ongoing)
			assert.True(t, rng.Start.Equal(tt.wantStart), "start = %v", rng.Start)
			assert.True(t, rng.End.Equal(tt.wantEnd), "end = %v", rng.End)
		})
	}
}

func TestParseRangeOngoing(t *testing.T) {
	for _, raw := range []string{
		"January 2015 - Present",
		"January 2015 - present",
		"January 2015 - PRESENT",
		"January 2015 - Current",
		"January 2015 - current",
	} {
		t.Run(raw, func(t *testing.T) {
			rng, err := ParseRange(raw)
			require.NoError(t, err)
			assert.True(t, rng.Ongoing)

			now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
			assert.True(t, rng.EndAt(now).Equal(now))
		})
	}
}

func TestParseRangeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"no separator", "January 2015 to December 2020"},
		{"abbreviated months", "Jan 2015 - Dec 2020"},
		{"numeric dates", "01/2015 - 12/2020"},
		{"missing end", "January 2015 - "},
		{"missing start", " - December 2020"},
		{"extra separator", "January 2015 - June 2017 - December 2020"},
		{"garbage", "not a date range"},
		{"year only", "2015 - 2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRange(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestYearsMatchesCalendarArithmetic(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		raw  string
		want float64
	}{
		{"January 2015 - January 2017", 2.0},
		{"January 2015 - January 2015", 0.0},
		{"January 2015 - July 2015", 0.5},
		{"January 2015 - April 2015", 0.25},
		{"December 2019 - February 2020", 2.0 / 12},
		{"January 2015 - December 2020", 5 + 11.0/12},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			rng, err := ParseRange(tt.raw)
			require.NoError(t, err)

			years, err := rng.Years(now)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, years, 1e-9)
			assert.GreaterOrEqual(t, years, 0.0)
		})
	}
}

func TestYearsOngoingResolvesAgainstClock(t *testing.T) {
	rng, err := ParseRange("January 2020 - Present")
	require.NoError(t, err)

	now := time.Date(2023, time.July, 3, 9, 30, 0, 0, time.UTC)
	years, err := rng.Years(now)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, years, 1e-9)
}

func TestYearsRejectsInvertedRange(t *testing.T) {
	rng, err := ParseRange("December 2020 - January 2015")
	require.NoError(t, err)

	_, err = rng.Years(time.Now())
	assert.Error(t, err)
}
