// Package amount implements minor-unit integer arithmetic for monetary
// values (spec C2). Every amount that crosses a connector boundary is an
// i64 count of a currency's smallest unit; float64 never appears on this
// path, so shopspring/decimal does the only unit conversion the engine
// ever needs (major-unit string <-> minor-unit integer).
package amount

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Minor is a monetary amount expressed in a currency's smallest unit
// (cents, paise, fils, ...). Always non-negative for the flows this engine
// issues.
type Minor int64

// fractionDigits is the ISO-4217 exponent table for currencies this engine
// is expected to see (spec §3 amount handling). Currencies not listed
// default to 2, the overwhelmingly common case.
var fractionDigits = map[string]int32{
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"CLP": 0,
	"BHD": 3,
	"KWD": 3,
	"JOD": 3,
	"OMR": 3,
	"TND": 3,
}

// Digits returns the number of fractional digits for a currency code.
func Digits(currencyCode string) int32 {
	if d, ok := fractionDigits[currencyCode]; ok {
		return d
	}
	return 2
}

// FromMajorUnitString parses a decimal major-unit string ("19.99") into a
// Minor for the given currency, rounding to the currency's exponent using
// banker's-rounding-free half-up semantics (decimal's default).
func FromMajorUnitString(major string, currencyCode string) (Minor, error) {
	d, err := decimal.NewFromString(major)
	if err != nil {
		return 0, fmt.Errorf("amount: parse major unit %q: %w", major, err)
	}
	scale := Digits(currencyCode)
	scaled := d.Shift(scale).Round(0)
	return Minor(scaled.IntPart()), nil
}

// ToMajorUnitString renders a Minor amount back to a decimal major-unit
// string, e.g. Minor(1999) for USD -> "19.99".
func ToMajorUnitString(m Minor, currencyCode string) string {
	scale := Digits(currencyCode)
	d := decimal.NewFromInt(int64(m)).Shift(-scale)
	return d.StringFixed(scale)
}

// ToMinorUnitI64 exposes the raw integer minor-unit value, the shape most
// gateway wire formats (Adyen, Razorpay) expect for an "amount" field.
func (m Minor) ToMinorUnitI64() int64 { return int64(m) }

// ToMinorUnitString renders the raw integer minor-unit value as a string,
// the shape gateways that serialize minor-unit amounts as strings expect.
func (m Minor) ToMinorUnitString() string { return fmt.Sprintf("%d", int64(m)) }
