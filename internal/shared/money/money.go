// Package money holds the decimal helpers used for every monetary amount and rate.
// Amounts are shopspring decimals serialized as bare JSON numbers.
package money

import (
	"sort"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Scale is the number of fractional digits kept for stored amounts.
const Scale = 2

func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// OrZero treats an absent value as zero.
func OrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// OrDefault returns def when d is absent or zero.
func OrDefault(d *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if d == nil || d.IsZero() {
		return def
	}
	return *d
}

func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// FirstNegative returns the name of the first negative field, ordered by name, so error
// messages are deterministic.
func FirstNegative(fields map[string]decimal.Decimal) (string, bool) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if fields[name].IsNegative() {
			return name, true
		}
	}
	return "", false
}
