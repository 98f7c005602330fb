// Package categorize assigns a single spending or income category to a
// transaction using tiered table lookups: curated merchant identity
// first, generic keyword heuristics last.
package categorize

import (
	"strings"

	"github.com/paisatrack/paisatrack/internal/model"
)

// merchantCategory pairs a canonical merchant key with its category.
// Declaration order is load-bearing for the substring tier: more specific
// keys must precede the generic ones they contain (JIOMART before JIO).
type merchantCategory struct {
	merchant string
	category model.Category
}

var merchantCategories = []merchantCategory{
	{"SWIGGY", model.CategoryFood},
	{"ZOMATO", model.CategoryFood},
	{"DOMINOS", model.CategoryFood},
	{"MCDONALDS", model.CategoryFood},
	{"PIZZA HUT", model.CategoryFood},
	{"KFC", model.CategoryFood},
	{"DUNZO", model.CategoryFood},
	{"BLINKIT", model.CategoryFood},
	{"ZEPTO", model.CategoryFood},
	{"BIGBASKET", model.CategoryFood},
	{"JIOMART", model.CategoryFood},
	{"DMART", model.CategoryFood},

	{"UBER", model.CategoryTravel},
	{"OLA", model.CategoryTravel},
	{"RAPIDO", model.CategoryTravel},
	{"IRCTC", model.CategoryTravel},
	{"MAKEMYTRIP", model.CategoryTravel},
	{"GOIBIBO", model.CategoryTravel},
	{"REDBUS", model.CategoryTravel},
	{"INDIGO", model.CategoryTravel},

	{"AMAZON", model.CategoryShopping},
	{"FLIPKART", model.CategoryShopping},
	{"MYNTRA", model.CategoryShopping},
	{"AJIO", model.CategoryShopping},
	{"NYKAA", model.CategoryShopping},
	{"MEESHO", model.CategoryShopping},

	{"NETFLIX", model.CategoryEntertainment},
	{"SPOTIFY", model.CategoryEntertainment},
	{"HOTSTAR", model.CategoryEntertainment},
	{"SONYLIV", model.CategoryEntertainment},
	{"BOOKMYSHOW", model.CategoryEntertainment},
	{"PVR", model.CategoryEntertainment},

	{"AIRTEL", model.CategoryBills},
	{"JIO", model.CategoryBills},
	{"VODAFONE", model.CategoryBills},
	{"BSNL", model.CategoryBills},
	{"TATA POWER", model.CategoryBills},
	{"BESCOM", model.CategoryBills},

	{"APOLLO", model.CategoryHealth},
	{"PHARMEASY", model.CategoryHealth},
	{"NETMEDS", model.CategoryHealth},
	{"1MG", model.CategoryHealth},
	{"MEDPLUS", model.CategoryHealth},
	{"PRACTO", model.CategoryHealth},

	{"BYJUS", model.CategoryEducation},
	{"UNACADEMY", model.CategoryEducation},
	{"UDEMY", model.CategoryEducation},
	{"COURSERA", model.CategoryEducation},

	{"ZERODHA", model.CategoryInvestment},
	{"GROWW", model.CategoryInvestment},
	{"UPSTOX", model.CategoryInvestment},
}

// exactMerchants is the same table keyed for O(1) exact lookup.
var exactMerchants = func() map[string]model.Category {
	m := make(map[string]model.Category, len(merchantCategories))
	for _, mc := range merchantCategories {
		m[mc.merchant] = mc.category
	}
	return m
}()

// keywordGroup maps a keyword list to a category for the fallback tier.
type keywordGroup struct {
	category model.Category
	keywords []string
}

var keywordGroups = []keywordGroup{
	{model.CategoryRent, []string{"RENT", "LANDLORD", "LEASE"}},
	{model.CategoryFood, []string{"RESTAURANT", "CAFE", "EATERY", "DHABA", "BIRYANI", "PIZZA", "BURGER", "GROCERY", "SUPERMARKET", "KIRANA", "FOOD"}},
	{model.CategoryTravel, []string{"FLIGHT", "AIRLINE", "HOTEL", "TRAIN", "METRO", "BUS", "CAB", "TAXI", "TOLL", "FUEL", "PETROL", "DIESEL"}},
	{model.CategoryBills, []string{"RECHARGE", "DTH", "BROADBAND", "POSTPAID", "PREPAID", "ELECTRICITY", "WATER", "GAS", "BILL"}},
	{model.CategoryEntertainment, []string{"MOVIE", "CINEMA", "THEATRE", "CONCERT", "GAMING"}},
	{model.CategoryHealth, []string{"PHARMACY", "HOSPITAL", "CLINIC", "DOCTOR", "DIAGNOSTIC", "MEDICAL"}},
	{model.CategoryEducation, []string{"SCHOOL", "COLLEGE", "UNIVERSITY", "TUITION", "COURSE", "EXAM"}},
	{model.CategoryInvestment, []string{"MUTUAL FUND", "SIP", "STOCK", "DEMAT", "FIXED DEPOSIT", "NPS", "PPF"}},
	{model.CategoryTransfer, []string{"NEFT", "RTGS", "IMPS", "TRANSFER"}},
	{model.CategoryShopping, []string{"SHOPPING", "MALL", "STORE", "RETAIL", "MART"}},
}

// salaryKeywords trigger the income short-circuit for credits.
var salaryKeywords = []string{"SALARY", "STIPEND", "WAGE"}

// Categorize resolves a category for a transaction. Resolution order:
// salary short-circuit for credits, exact merchant lookup, merchant-table
// substring scan over merchant and combined text, keyword groups, Other.
func Categorize(merchant, description string, dir model.Direction) model.Category {
	upperMerchant := strings.ToUpper(merchant)
	combined := upperMerchant + " " + strings.ToUpper(description)

	if dir == model.DirectionCredit {
		for _, kw := range salaryKeywords {
			if strings.Contains(combined, kw) {
				return model.CategorySalary
			}
		}
	}

	if cat, ok := exactMerchants[upperMerchant]; ok {
		return cat
	}

	for _, mc := range merchantCategories {
		if strings.Contains(upperMerchant, mc.merchant) || strings.Contains(combined, mc.merchant) {
			return mc.category
		}
	}

	for _, group := range keywordGroups {
		for _, kw := range group.keywords {
			if strings.Contains(combined, kw) {
				return group.category
			}
		}
	}

	return model.CategoryOther
}
