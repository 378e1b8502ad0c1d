package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tollbook/internal/common"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month int
		want  int
	}{
		{2025, 1, 31},
		{2025, 2, 28},
		{2024, 2, 29},
		{2000, 2, 29},
		{1900, 2, 28},
		{2025, 4, 30},
		{2025, 12, 31},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month), "%d-%02d", tt.year, tt.month)
	}
}

func TestRouteConfigValidate(t *testing.T) {
	valid := RouteConfig{From: "大分米良", To: "日田", Fare: 1340, Allowance: 112560}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, RouteConfig{To: "日田"}.Validate(), common.ErrMissingRoute)
	assert.ErrorIs(t, RouteConfig{From: "大分米良"}.Validate(), common.ErrMissingRoute)
	assert.ErrorIs(t, RouteConfig{From: "a", To: "b", Fare: -1}.Validate(), common.ErrInvalidFare)
	assert.ErrorIs(t, RouteConfig{From: "a", To: "b", Allowance: -1}.Validate(), common.ErrInvalidFare)
	assert.ErrorIs(t, RouteConfig{From: "a", To: "b", Mode: "loose"}.Validate(), common.ErrInvalidConfig)

	assert.NoError(t, RouteConfig{From: "a", To: "b", Mode: MatchExact}.Validate())
}

func TestRouteConfigExpectedTrips(t *testing.T) {
	trips, err := RouteConfig{From: "a", To: "b", Fare: 2680, Allowance: 112560}.ExpectedTrips()
	require.NoError(t, err)
	assert.Equal(t, 42, trips)

	_, err = RouteConfig{From: "a", To: "b", Fare: 0, Allowance: 112560}.ExpectedTrips()
	assert.ErrorIs(t, err, common.ErrInvalidFare)
}

func TestDayBucketSlot(t *testing.T) {
	var bucket DayBucket
	bucket.Slot(Morning).Amount = 100
	bucket.Slot(Afternoon).Amount = 200

	assert.Equal(t, 100, bucket.Outbound.Amount)
	assert.Equal(t, 200, bucket.Return.Amount)
	assert.False(t, bucket.Empty())
	assert.True(t, DayBucket{}.Empty())
}

func TestMarkGlyph(t *testing.T) {
	assert.Equal(t, "○", MarkConfirmed.Glyph())
	assert.Equal(t, "△", MarkAnomaly.Glyph())
	assert.Equal(t, "", MarkNone.Glyph())
}

func TestRouteRelation(t *testing.T) {
	assert.True(t, Outbound.Counts())
	assert.True(t, Adjacent.Counts())
	assert.True(t, RouteAnomaly.Counts())
	assert.False(t, Unrelated.Counts())

	assert.True(t, Outbound.Certified())
	assert.True(t, Return.Certified())
	assert.False(t, Adjacent.Certified())
	assert.False(t, RouteAnomaly.Certified())

	assert.Equal(t, "往路", Outbound.Label())
	assert.Equal(t, "復路", Return.Label())
	assert.Equal(t, "対象外", Unrelated.Label())
}
