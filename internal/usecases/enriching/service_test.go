package enriching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
)

func TestParseCampaignName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		valid    bool
		expected domain.Enrichment
	}{
		{
			name:  "Name following the convention",
			input: "video_north_BC1_BC2_fashion_Hà_free_summer_sale",
			valid: true,
			expected: domain.Enrichment{
				Format:            "video",
				Region:            "north",
				BudgetCodeL1:      "BC1",
				BudgetCodeL2:      "BC2",
				Category:          "fashion",
				Owner:             "Ha",
				Program:           "summer",
				Content:           "sale",
				ValidCampaignName: true,
			},
		},
		{
			name:  "Each field comes from its own segment",
			input: "P0_P1_P2_P3_P4_P5_P6_P7_P8",
			valid: true,
			expected: domain.Enrichment{
				Format:            "P0",
				Region:            "P1",
				BudgetCodeL1:      "P2",
				BudgetCodeL2:      "P3",
				Category:          "P4",
				Owner:             "P5",
				Program:           "P7",
				Content:           "P8",
				ValidCampaignName: true,
			},
		},
		{
			name:  "Trailing parts beyond content are dropped",
			input: "image_south_B1_B2_beauty_Lan_x_holiday_c1_c2_c3",
			valid: true,
			expected: domain.Enrichment{
				Format:            "image",
				Region:            "south",
				BudgetCodeL1:      "B1",
				BudgetCodeL2:      "B2",
				Category:          "beauty",
				Owner:             "Lan",
				Program:           "holiday",
				Content:           "c1",
				ValidCampaignName: true,
			},
		},
		{
			name:  "Too few parts fills what exists and flags invalid",
			input: "video_north_BC1",
			valid: false,
			expected: domain.Enrichment{
				Format:       "video",
				Region:       "north",
				BudgetCodeL1: "BC1",
			},
		},
		{
			name:  "Empty name is flagged invalid",
			input: "",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enrichment, valid := ParseCampaignName(tt.input)

			assert.Equal(t, tt.valid, valid)
			assert.Equal(t, tt.expected, enrichment)
		})
	}
}

func TestParseAdgroupName(t *testing.T) {
	placement, audience, format, valid := ParseAdgroupName("feed_lookalike_video")
	assert.True(t, valid)
	assert.Equal(t, "feed", placement)
	assert.Equal(t, "lookalike", audience)
	assert.Equal(t, "video", format)

	placement, audience, _, valid = ParseAdgroupName("feed_lookalike")
	assert.False(t, valid)
	assert.Equal(t, "feed", placement)
	assert.Equal(t, "lookalike", audience)
}

func TestEnrichCampaignRow(t *testing.T) {
	service := NewService()

	row := &domain.StagingCampaignRow{
		CampaignName: "video_north_BC1_BC2_fashion_owner_free_program_content",
		DateStart:    time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	service.EnrichCampaignRow(row)

	assert.True(t, row.Enrichment.ValidCampaignName)
	assert.Equal(t, "video", row.Enrichment.Format)
	assert.Equal(t, "owner", row.Enrichment.Owner)
	assert.Equal(t, "program", row.Enrichment.Program)
	assert.Equal(t, "2026-03", row.Enrichment.Month)
}

func TestEnrichCampaignRow_InvalidNameKeepsRow(t *testing.T) {
	service := NewService()

	row := &domain.StagingCampaignRow{
		CampaignName: "untagged campaign",
		DateStart:    time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	service.EnrichCampaignRow(row)

	assert.False(t, row.Enrichment.ValidCampaignName)
	assert.Equal(t, "untagged campaign", row.Enrichment.Format)
	assert.Empty(t, row.Enrichment.Region)
	assert.Empty(t, row.Enrichment.Owner)
	assert.Equal(t, "2026-01", row.Enrichment.Month)
}

func TestEnrichAdRow(t *testing.T) {
	service := NewService()

	row := &domain.StagingAdRow{
		CampaignName: "video_north_BC1_BC2_fashion_owner_free_program_content",
		AdgroupName:  "feed_broad_image",
		DateStart:    time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC),
	}

	service.EnrichAdRow(row)

	assert.True(t, row.Enrichment.ValidCampaignName)
	assert.True(t, row.Enrichment.ValidAdgroupName)
	assert.Equal(t, "feed", row.Enrichment.Placement)
	assert.Equal(t, "broad", row.Enrichment.Audience)
	assert.Equal(t, "image", row.Enrichment.AdFormat)
	assert.Equal(t, "owner", row.Enrichment.Owner)
	assert.Equal(t, "2026-12", row.Enrichment.Month)
}
