package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2026-06-10")
	assert.NoError(t, err)
	assert.Equal(t, "2026-06-10", day)

	day, err = ParseDay("2026-06-10T18:30:00+05:30")
	assert.NoError(t, err)
	assert.Equal(t, "2026-06-10", day, "timestamps truncate to the UTC day")

	_, err = ParseDay("10/06/2026")
	assert.Error(t, err)

	_, err = ParseDay("")
	assert.Error(t, err)
}

func TestNormalizeDays(t *testing.T) {
	days, err := NormalizeDays([]string{"2026-06-12", "2026-06-10", "2026-06-10", "2026-06-11"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"2026-06-10", "2026-06-11", "2026-06-12"}, days)

	_, err = NormalizeDays([]string{"2026-06-10", "bad"})
	assert.Error(t, err)
}

func TestMissingDays(t *testing.T) {
	have := []string{"2026-06-10", "2026-06-11"}
	assert.Nil(t, MissingDays([]string{"2026-06-10"}, have))
	assert.Equal(t, []string{"2026-06-12"}, MissingDays([]string{"2026-06-11", "2026-06-12"}, have))
}

func TestDayReached(t *testing.T) {
	now := time.Date(2026, 5, 1, 23, 59, 0, 0, time.UTC)
	assert.True(t, DayReached("2026-04-30", now))
	assert.True(t, DayReached("2026-05-01", now), "the day itself counts as reached")
	assert.False(t, DayReached("2026-05-02", now))
	assert.True(t, DayReached("garbage", now))
}

func TestBookingRemainingAmount(t *testing.T) {
	b := Booking{TotalAmount: 500, AmountPaid: 200}
	assert.Equal(t, int64(300), b.RemainingAmount())

	b.AmountPaid = 600
	assert.Equal(t, int64(0), b.RemainingAmount())
}
