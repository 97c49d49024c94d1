package enriching

import (
	"fmt"
	"strings"

	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/pkg/utils"
)

// The naming convention the media team follows:
//
//	campaign: <format>_<region>_<budget1>_<budget2>_<category>_<owner>_<free>_<program>_<content>
//	adgroup:  <placement>_<audience>_<format>
//
// Segment 6 of a campaign name is free-form and not mapped to a column.
// Names with fewer segments are flagged invalid but still parsed as far as
// they go, so the dashboards can list them for cleanup.
const (
	minCampaignNameParts = 9
	minAdgroupNameParts  = 3
)

// Enricher fills the convention fields of staging rows.
type Enricher interface {
	EnrichCampaignRow(row *domain.StagingCampaignRow)
	EnrichAdRow(row *domain.StagingAdRow)
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// ParseCampaignName splits a campaign name into its convention fields,
// filling whatever segments exist. The second return reports whether the
// name follows the convention.
func ParseCampaignName(name string) (domain.Enrichment, bool) {
	var enrichment domain.Enrichment

	parts := strings.Split(name, "_")

	enrichment.Format = segment(parts, 0)
	enrichment.Region = segment(parts, 1)
	enrichment.BudgetCodeL1 = segment(parts, 2)
	enrichment.BudgetCodeL2 = segment(parts, 3)
	enrichment.Category = segment(parts, 4)
	enrichment.Owner = utils.RemoveAccents(segment(parts, 5))
	enrichment.Program = segment(parts, 7)
	enrichment.Content = segment(parts, 8)
	enrichment.ValidCampaignName = len(parts) >= minCampaignNameParts

	return enrichment, enrichment.ValidCampaignName
}

// ParseAdgroupName splits an adgroup name into placement, audience and
// format, filling whatever segments exist.
func ParseAdgroupName(name string) (placement, audience, format string, valid bool) {
	parts := strings.Split(name, "_")
	return segment(parts, 0), segment(parts, 1), segment(parts, 2),
		len(parts) >= minAdgroupNameParts
}

func segment(parts []string, idx int) string {
	if idx < len(parts) {
		return parts[idx]
	}
	return ""
}

func (s *Service) EnrichCampaignRow(row *domain.StagingCampaignRow) {
	enrichment, _ := ParseCampaignName(row.CampaignName)
	enrichment.Month = monthOf(row.DateStart.Year(), int(row.DateStart.Month()))
	row.Enrichment = enrichment
}

func (s *Service) EnrichAdRow(row *domain.StagingAdRow) {
	enrichment, _ := ParseCampaignName(row.CampaignName)

	placement, audience, format, valid := ParseAdgroupName(row.AdgroupName)
	enrichment.Placement = placement
	enrichment.Audience = audience
	enrichment.AdFormat = format
	enrichment.ValidAdgroupName = valid

	enrichment.Month = monthOf(row.DateStart.Year(), int(row.DateStart.Month()))
	row.Enrichment = enrichment
}

func monthOf(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
