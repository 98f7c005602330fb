package normalize

import "github.com/paisatrack/paisatrack/internal/model"

// Enrichment bundles everything this package derives from raw text. It
// is the shape handed to manual-entry and statement-import callers that
// already know the amount and direction.
type Enrichment struct {
	Merchant    string
	Description string
	Channel     model.Channel
	Tags        []model.Tag
}

// Enrich normalizes a merchant/description pair in one pass.
func Enrich(merchant, description string) Enrichment {
	canonical := NormalizeMerchant(merchant)
	if canonical == UnknownMerchant && description != "" {
		canonical = NormalizeMerchant(description)
	}
	combined := merchant + " " + description
	return Enrichment{
		Merchant:    canonical,
		Description: CleanDescription(description),
		Channel:     DetectChannel(combined),
		Tags:        GenerateTags(canonical, description),
	}
}
