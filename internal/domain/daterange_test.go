package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDateRangeFromMode(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	dateRange, err := NewDateRangeFromMode("last3days", now)

	assert.NoError(t, err)
	assert.Equal(t, "2026-08-27_to_2026-08-30", dateRange.Label())
	assert.Len(t, dateRange.Days(), 4)
}

func TestNewDateRangeFromMode_Invalid(t *testing.T) {
	_, err := NewDateRangeFromMode("fortnight", time.Now())
	assert.Error(t, err)
}

func TestParseLayer(t *testing.T) {
	layer, err := ParseLayer("campaign")
	assert.NoError(t, err)
	assert.Equal(t, LayerCampaign, layer)
	assert.Equal(t, "AUCTION_CAMPAIGN", layer.DataLevel())
	assert.Equal(t, "campaign_id", layer.IDDimension())

	layer, err = ParseLayer("ad")
	assert.NoError(t, err)
	assert.Equal(t, LayerAd, layer)
	assert.Equal(t, "AUCTION_AD", layer.DataLevel())
	assert.Equal(t, "ad_id", layer.IDDimension())

	_, err = ParseLayer("adgroup")
	assert.Error(t, err)
}
