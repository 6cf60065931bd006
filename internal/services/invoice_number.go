package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultInvoicePrefix = "INV"

var anyDigitsPattern = regexp.MustCompile(`\d+`)

type InvoiceNumberRepository interface {
	FindLatestNumber(ctx context.Context, userID string) (string, bool, error)
}

type InvoiceNumberGenerator struct {
	invoices InvoiceNumberRepository
	prefix   string
	now      func() time.Time
}

func NewInvoiceNumberGenerator(invoices InvoiceNumberRepository, prefix string) *InvoiceNumberGenerator {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultInvoicePrefix
	}
	return &InvoiceNumberGenerator{invoices: invoices, prefix: prefix, now: time.Now}
}

func (generator *InvoiceNumberGenerator) Prefix() string {
	return generator.prefix
}

func (generator *InvoiceNumberGenerator) Next(ctx context.Context, owner string) (string, error) {
	latest, _, err := generator.invoices.FindLatestNumber(ctx, owner)
	if err != nil {
		return "", persistenceError("generate invoice number", err)
	}
	return NextInvoiceNumber(generator.prefix, latest, generator.now()), nil
}

func NextInvoiceNumber(prefix string, latest string, now time.Time) string {
	if latest == "" {
		return formatInvoiceNumber(prefix, "1")
	}
	if digits, ok := invoiceDigits(prefix, latest); ok {
		next := decimal.RequireFromString(digits).Add(decimal.NewFromInt(1))
		return formatInvoiceNumber(prefix, next.String())
	}
	return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
}

func formatInvoiceNumber(prefix string, sequence string) string {
	if len(sequence) < 3 {
		sequence = strings.Repeat("0", 3-len(sequence)) + sequence
	}
	return prefix + "-" + sequence
}

func invoiceDigits(prefix string, number string) (string, bool) {
	prefixed := regexp.MustCompile(regexp.QuoteMeta(prefix) + `-(\d+)`)
	if match := prefixed.FindStringSubmatch(number); match != nil {
		return match[1], true
	}
	if digits := anyDigitsPattern.FindString(number); digits != "" {
		return digits, true
	}
	return "", false
}

// invoiceSequence is the ranking key stored in number_seq. Suffixes beyond
// int64 saturate, and ties are broken by number length.
func invoiceSequence(prefix string, number string) (int64, bool) {
	digits, ok := invoiceDigits(prefix, number)
	if !ok {
		return 0, false
	}
	sequence, err := strconv.ParseInt(digits, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt64, true
	}
	if err != nil {
		return 0, false
	}
	return sequence, true
}
