package sms

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/paisatrack/paisatrack/internal/model"
)

// extracted holds the raw fields a template pulls out of a message
// before enrichment.
type extracted struct {
	amount   float64
	dir      model.Direction
	account  string
	merchant string
	dateStr  string
}

// template pairs a message pattern with its capture semantics. Templates
// are tried in declaration order and the first regex match wins, so the
// specific bank formats are declared before the generic catch-alls.
// Re-deriving a "better" order would silently change classification of
// messages that match more than one pattern.
type template struct {
	name    string
	re      *regexp.Regexp
	extract func(m map[string]string) (extracted, bool)
}

const (
	amountExpr = `(?P<amount>[\d,]+(?:\.\d{1,2})?)`
	dateExpr   = `(?P<date>\d{1,2}[-/]\d{1,2}[-/](?:\d{4}|\d{2}))`
	// Merchant fragments run up to a sentence boundary; VPA handles and
	// joined names like SWIGGY*FOOD are kept intact.
	merchantExpr = `(?P<merchant>[a-z0-9@][a-z0-9@ .&*_\-]*?)`
)

var templates = []template{
	{
		name: "debit_from_account_at_merchant",
		re: regexp.MustCompile(`(?i)(?:rs\.?|inr)\s*` + amountExpr +
			`\s+(?:has\s+been\s+)?(?P<dir>debited|credited)\s+(?:from|to)\s+(?:your\s+)?a/?c\s+(?:no\.?\s*)?[x*]*(?P<account>\d{4})` +
			`\s+(?:at|for|to)\s+` + merchantExpr +
			`(?:\s+on\s+` + dateExpr + `)?(?:[.,]|\s*$)`),
		extract: func(m map[string]string) (extracted, bool) {
			amount, ok := parseAmount(m["amount"])
			if !ok {
				return extracted{}, false
			}
			return extracted{
				amount:   amount,
				dir:      directionFromVerb(m["dir"]),
				account:  m["account"],
				merchant: m["merchant"],
				dateStr:  m["date"],
			}, true
		},
	},
	{
		name: "debit_from_bank_account",
		re: regexp.MustCompile(`(?i)(?:rs\.?|inr)\s*` + amountExpr +
			`\s+(?:has\s+been\s+)?(?P<dir>debited|credited)\s+(?:from|to)\s+(?:[a-z]+\s+)*?a/?c\s+(?:no\.?\s*)?[x*]*(?P<account>\d{4})`),
		extract: func(m map[string]string) (extracted, bool) {
			amount, ok := parseAmount(m["amount"])
			if !ok {
				return extracted{}, false
			}
			return extracted{
				amount:  amount,
				dir:     directionFromVerb(m["dir"]),
				account: m["account"],
			}, true
		},
	},
	{
		name: "upi_payment",
		re: regexp.MustCompile(`(?i)upi(?:\s+payment|\s+txn|\s+transfer)?\s+of\s+(?:rs\.?|inr)\s*` + amountExpr +
			`\s+(?P<dir>to|from)\s+` + merchantExpr +
			`(?:\s+(?:is\s+|was\s+)?(?:successful|completed))?(?:[.,]|\s*$)`),
		extract: func(m map[string]string) (extracted, bool) {
			amount, ok := parseAmount(m["amount"])
			if !ok {
				return extracted{}, false
			}
			dir := model.DirectionDebit
			if strings.EqualFold(m["dir"], "from") {
				dir = model.DirectionCredit
			}
			return extracted{
				amount:   amount,
				dir:      dir,
				merchant: m["merchant"],
			}, true
		},
	},
	{
		name: "account_credited_with",
		re: regexp.MustCompile(`(?i)your\s+(?:[a-z]+\s+)*?a/?c\s+(?:no\.?\s*)?[x*]*(?P<account>\d{4})` +
			`\s+(?:has\s+been\s+|is\s+)?(?P<dir>credited|debited)\s+(?:with|by|for)\s+(?:rs\.?|inr)\s*` + amountExpr),
		extract: func(m map[string]string) (extracted, bool) {
			amount, ok := parseAmount(m["amount"])
			if !ok {
				return extracted{}, false
			}
			return extracted{
				amount:  amount,
				dir:     directionFromVerb(m["dir"]),
				account: m["account"],
			}, true
		},
	},
	{
		name: "generic_amount",
		re: regexp.MustCompile(`(?i)amount\s+(?:of\s+)?(?:rs\.?|inr)\s*` + amountExpr +
			`\s+(?:has\s+been\s+)?(?P<dir>debited|credited|withdrawn|deposited)`),
		extract: func(m map[string]string) (extracted, bool) {
			amount, ok := parseAmount(m["amount"])
			if !ok {
				return extracted{}, false
			}
			dir := model.DirectionDebit
			switch strings.ToLower(m["dir"]) {
			case "credited", "deposited":
				dir = model.DirectionCredit
			}
			return extracted{amount: amount, dir: dir}, true
		},
	},
	{
		name: "transaction_at_merchant",
		re: regexp.MustCompile(`(?i)(?:transaction|txn|payment)\s+of\s+(?:rs\.?|inr)\s*` + amountExpr +
			`\s+(?:made\s+)?(?P<prep>at|to|from)\s+` + merchantExpr +
			`(?:\s+on\s+` + dateExpr + `)?(?:[.,]|\s*$)`),
		extract: func(m map[string]string) (extracted, bool) {
			amount, ok := parseAmount(m["amount"])
			if !ok {
				return extracted{}, false
			}
			dir := model.DirectionDebit
			if strings.EqualFold(m["prep"], "from") {
				dir = model.DirectionCredit
			}
			return extracted{
				amount:   amount,
				dir:      dir,
				merchant: m["merchant"],
				dateStr:  m["date"],
			}, true
		},
	},
}

// balancePattern finds the advertised post-transaction balance. It is
// scanned against the original message, independent of which template
// matched.
var balancePattern = regexp.MustCompile(`(?i)(?:available|avl\.?|bal\.?|balance)\s*(?:bal(?:ance)?\.?\s*)?[:\-]?\s*(?:rs\.?|inr)\s*(?P<balance>[\d,]+(?:\.\d{1,2})?)`)

func parseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

func directionFromVerb(verb string) model.Direction {
	if strings.EqualFold(verb, "credited") {
		return model.DirectionCredit
	}
	return model.DirectionDebit
}

// captures maps named groups of a match to their values.
func captures(re *regexp.Regexp, match []string) map[string]string {
	out := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(match) {
			out[name] = match[i]
		}
	}
	return out
}
