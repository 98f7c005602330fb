// Package normalize turns raw bank transaction text into canonical
// merchant names, payment channels and tags.
package normalize

import (
	"regexp"
	"strings"
)

// UnknownMerchant is returned when nothing recognizable survives cleaning.
const UnknownMerchant = "UNKNOWN"

// merchantMapping pairs a substring pattern with the canonical merchant
// name it collapses to. The table is scanned in declaration order and the
// first match wins, so more specific patterns must precede the generic
// ones they overlap with (JIOMART before JIO).
type merchantMapping struct {
	pattern   string
	canonical string
}

var merchantTable = []merchantMapping{
	// Food delivery and restaurants
	{"SWIGGY", "SWIGGY"},
	{"ZOMATO", "ZOMATO"},
	{"DOMINO", "DOMINOS"},
	{"MCDONALD", "MCDONALDS"},
	{"PIZZA HUT", "PIZZA HUT"},
	{"KFC", "KFC"},
	{"DUNZO", "DUNZO"},

	// Groceries
	{"BLINKIT", "BLINKIT"},
	{"ZEPTO", "ZEPTO"},
	{"BIGBASKET", "BIGBASKET"},
	{"JIOMART", "JIOMART"},
	{"DMART", "DMART"},

	// Shopping
	{"AMAZON", "AMAZON"},
	{"FLIPKART", "FLIPKART"},
	{"MYNTRA", "MYNTRA"},
	{"AJIO", "AJIO"},
	{"NYKAA", "NYKAA"},
	{"MEESHO", "MEESHO"},

	// Entertainment
	{"NETFLIX", "NETFLIX"},
	{"SPOTIFY", "SPOTIFY"},
	{"HOTSTAR", "HOTSTAR"},
	{"SONYLIV", "SONYLIV"},
	{"BOOKMYSHOW", "BOOKMYSHOW"},
	{"PVR", "PVR"},

	// Travel
	{"UBER", "UBER"},
	{"OLACABS", "OLA"},
	{"OLA", "OLA"},
	{"RAPIDO", "RAPIDO"},
	{"IRCTC", "IRCTC"},
	{"MAKEMYTRIP", "MAKEMYTRIP"},
	{"GOIBIBO", "GOIBIBO"},
	{"REDBUS", "REDBUS"},
	{"INDIGO", "INDIGO"},

	// Telecom and utilities
	{"AIRTEL", "AIRTEL"},
	{"JIO", "JIO"},
	{"VODAFONE", "VODAFONE"},
	{"BSNL", "BSNL"},
	{"TATA POWER", "TATA POWER"},
	{"BESCOM", "BESCOM"},

	// Health
	{"APOLLO", "APOLLO"},
	{"PHARMEASY", "PHARMEASY"},
	{"NETMEDS", "NETMEDS"},
	{"1MG", "1MG"},
	{"MEDPLUS", "MEDPLUS"},
	{"PRACTO", "PRACTO"},

	// Education
	{"BYJU", "BYJUS"},
	{"UNACADEMY", "UNACADEMY"},
	{"UDEMY", "UDEMY"},
	{"COURSERA", "COURSERA"},

	// Investment
	{"ZERODHA", "ZERODHA"},
	{"GROWW", "GROWW"},
	{"UPSTOX", "UPSTOX"},

	// Wallets
	{"PAYTM", "PAYTM"},
	{"PHONEPE", "PHONEPE"},
	{"GOOGLE PAY", "GOOGLE PAY"},
	{"GPAY", "GOOGLE PAY"},
}

// noiseWords is banking boilerplate stripped before merchant cleanup.
var noiseWords = []string{
	"POS", "UPI", "NEFT", "RTGS", "IMPS", "ATM", "VPA",
	"RS", "INR",
	"DEBIT", "CREDIT", "DEBITED", "CREDITED", "WITHDRAWN", "DEPOSITED",
	"AMOUNT",
	"CARD", "TXN", "TRANSACTION", "PAYMENT", "PURCHASE",
	"REF", "REF NO", "INFO", "AVL", "BAL", "BALANCE",
	"A/C", "AC", "ACCT", "ACCOUNT", "BANK", "NO",
	"PVT", "LTD", "PRIVATE", "LIMITED", "INDIA", "IND",
	"TO", "FROM", "AT", "ON", "FOR", "VIA", "THE", "YOUR", "WITH",
}

var (
	noisePattern      *regexp.Regexp
	punctPattern      = regexp.MustCompile(`[^A-Za-z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	// Runs of 12+ alphanumerics are almost always transaction references.
	referencePattern = regexp.MustCompile(`[A-Za-z0-9]{12,}`)
)

func init() {
	escaped := make([]string, len(noiseWords))
	for i, w := range noiseWords {
		escaped[i] = regexp.QuoteMeta(w)
	}
	noisePattern = regexp.MustCompile(`(?i)\b(?:` + strings.Join(escaped, "|") + `)\b`)
}

// NormalizeMerchant maps raw transaction text to a canonical merchant
// name. Known merchants are resolved by an ordered substring table; for
// everything else banking noise is stripped and the residue upper-cased.
// Returns UnknownMerchant when nothing survives.
func NormalizeMerchant(raw string) string {
	upper := strings.ToUpper(raw)
	for _, m := range merchantTable {
		if strings.Contains(upper, m.pattern) {
			return m.canonical
		}
	}

	cleaned := noisePattern.ReplaceAllString(raw, "")
	cleaned = punctPattern.ReplaceAllString(cleaned, " ")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.ToUpper(strings.TrimSpace(cleaned))
	if cleaned == "" {
		return UnknownMerchant
	}
	return cleaned
}

// CleanDescription strips banking noise and transaction references from
// raw text, keeping it human readable. Unlike NormalizeMerchant it never
// canonicalizes and preserves the original casing.
func CleanDescription(raw string) string {
	cleaned := noisePattern.ReplaceAllString(raw, " ")
	cleaned = referencePattern.ReplaceAllString(cleaned, " ")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
