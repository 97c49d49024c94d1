package domain

import "fmt"

// Layer selects which entity level a run processes.
type Layer string

const (
	LayerCampaign Layer = "campaign"
	LayerAd       Layer = "ad"
)

func ParseLayer(s string) (Layer, error) {
	switch Layer(s) {
	case LayerCampaign, LayerAd:
		return Layer(s), nil
	default:
		return "", fmt.Errorf("domain: unknown layer %q", s)
	}
}

// DataLevel is the report aggregation level the ads API expects for the layer.
func (l Layer) DataLevel() string {
	if l == LayerAd {
		return "AUCTION_AD"
	}
	return "AUCTION_CAMPAIGN"
}

// IDDimension is the report dimension carrying the entity ID for the layer.
func (l Layer) IDDimension() string {
	if l == LayerAd {
		return "ad_id"
	}
	return "campaign_id"
}

func (l Layer) String() string {
	return string(l)
}
