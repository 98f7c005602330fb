package normalize

import (
	"strings"

	"github.com/paisatrack/paisatrack/internal/model"
)

// tagGroup contributes its tag when any keyword appears in the combined
// merchant+description text. Groups are independent: a transaction can
// carry several tags at once.
type tagGroup struct {
	tag      model.Tag
	keywords []string
}

var tagGroups = []tagGroup{
	{model.TagFood, []string{"SWIGGY", "ZOMATO", "RESTAURANT", "CAFE", "PIZZA", "BURGER", "FOOD"}},
	{model.TagGroceries, []string{"BLINKIT", "ZEPTO", "BIGBASKET", "JIOMART", "DMART", "GROCERY", "SUPERMARKET"}},
	{model.TagSubscription, []string{"NETFLIX", "SPOTIFY", "HOTSTAR", "SONYLIV", "PRIME", "SUBSCRIPTION", "MEMBERSHIP"}},
	{model.TagRecharge, []string{"RECHARGE", "AIRTEL", "JIO", "VODAFONE", "BSNL", "DTH", "PREPAID"}},
	{model.TagTravel, []string{"UBER", "OLA", "RAPIDO", "IRCTC", "FLIGHT", "HOTEL", "TRAIN", "BUS"}},
}

// GenerateTags derives semantic tags from the merchant and description.
// Each group appends its tag at most once, in group declaration order.
func GenerateTags(merchant, description string) []model.Tag {
	combined := strings.ToUpper(merchant + " " + description)

	var tags []model.Tag
	for _, group := range tagGroups {
		for _, kw := range group.keywords {
			if strings.Contains(combined, kw) {
				tags = append(tags, group.tag)
				break
			}
		}
	}
	return tags
}
