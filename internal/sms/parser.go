// Package sms extracts structured transactions from free-form bank SMS
// text using an ordered list of regex templates.
package sms

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/paisatrack/paisatrack/internal/categorize"
	"github.com/paisatrack/paisatrack/internal/model"
	"github.com/paisatrack/paisatrack/internal/normalize"
)

// DefaultMaxAmount rejects amounts that are almost certainly regex
// misfires swallowing unrelated digits. Product-tuned, not structural.
const DefaultMaxAmount = 10_000_000

// Parser turns raw SMS text into enriched transactions. The zero
// value is not usable; construct with NewParser.
type Parser struct {
	now       func() time.Time
	MaxAmount float64
}

// NewParser returns a parser with the default amount bound.
func NewParser() *Parser {
	return &Parser{
		MaxAmount: DefaultMaxAmount,
		now:       time.Now,
	}
}

// Parse extracts a single transaction from one SMS message. It reports
// false when no template matches or every matching template yields an
// out-of-bounds amount. It never panics on malformed input.
func (p *Parser) Parse(text string) (*model.ParsedTransaction, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}

	for _, tpl := range templates {
		match := tpl.re.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}

		fields, ok := tpl.extract(captures(tpl.re, match))
		if !ok {
			continue
		}
		if fields.amount <= 0 || fields.amount > p.maxAmount() {
			continue
		}

		return p.assemble(trimmed, fields), true
	}

	return nil, false
}

// ParseBatch splits a blob of pasted messages on blank lines and parses
// each one independently. Unparseable messages are dropped, never
// aborting the batch; output order follows input order.
func (p *Parser) ParseBatch(text string) []model.ParsedTransaction {
	var results []model.ParsedTransaction
	fragments := SplitMessages(text)
	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		if txn, ok := p.Parse(fragment); ok {
			results = append(results, *txn)
		}
	}
	return results
}

// assemble enriches the extracted fields into a full transaction record.
func (p *Parser) assemble(text string, fields extracted) *model.ParsedTransaction {
	merchantSource := fields.merchant
	if strings.TrimSpace(merchantSource) == "" {
		merchantSource = text
	}
	merchant := normalize.NormalizeMerchant(merchantSource)

	txn := &model.ParsedTransaction{
		ID:            model.NewID(),
		Amount:        fields.amount,
		Direction:     fields.dir,
		Merchant:      merchant,
		AccountNumber: fields.account,
		Description:   text,
		Date:          p.resolveDate(fields.dateStr, text),
		Channel:       normalize.DetectChannel(text),
		Category:      categorize.Categorize(merchant, text, fields.dir),
		Tags:          normalize.GenerateTags(merchant, text),
		Balance:       extractBalance(text),
	}
	txn.Hash = txn.GenerateHash()
	return txn
}

// batchSeparator matches one or more blank lines, LF or CRLF.
var batchSeparator = regexp.MustCompile(`\r?\n(?:[ \t]*\r?\n)+`)

// SplitMessages splits a pasted blob into individual messages on
// blank-line boundaries. Empty fragments are kept for the caller to
// skip, preserving positional counts.
func SplitMessages(text string) []string {
	return batchSeparator.Split(text, -1)
}

// dateToken matches DD-MM-YYYY style dates with - or / separators and
// exactly two- or four-digit years.
var dateToken = regexp.MustCompile(`\b(\d{1,2})[-/](\d{1,2})[-/](\d{4}|\d{2})\b`)

// resolveDate prefers the template's capture, then a best-effort scan of
// the whole message, then the current time.
func (p *Parser) resolveDate(captured, fullText string) time.Time {
	if captured != "" {
		if date, ok := parseDateToken(captured); ok {
			return date
		}
	}
	if match := dateToken.FindString(fullText); match != "" {
		if date, ok := parseDateToken(match); ok {
			return date
		}
	}
	return p.now()
}

// parseDateToken parses a DD-MM-YYYY or DD/MM/YY token. Two-digit years
// below 50 resolve to the 2000s, the rest to the 1900s.
func parseDateToken(s string) (time.Time, bool) {
	match := dateToken.FindStringSubmatch(s)
	if match == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])

	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}

func extractBalance(text string) *float64 {
	match := balancePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	balance, ok := parseAmount(captures(balancePattern, match)["balance"])
	if !ok || balance <= 0 {
		return nil
	}
	return &balance
}

func (p *Parser) maxAmount() float64 {
	if p.MaxAmount > 0 {
		return p.MaxAmount
	}
	return DefaultMaxAmount
}
