// Package service implements the business rules that keep reservation
// status, room occupancy, invoice balances and stock levels mutually
// consistent.  Each service owns one slice of the operation surface and
// performs every mutation through store.Update, so an operation either
// settles completely or leaves the state untouched.
package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrValidation is returned when an operation is called with input
// that must not reach the store (malformed preferences, unknown status
// value, empty sale).  Handlers translate it into an HTTP 400 response.
var ErrValidation = errors.New("validation failed")

// dateLayout is the plain calendar-date format used everywhere in the
// dashboard.  Dates compare lexically in this form.
const dateLayout = "2006-01-02"

// dec converts a stored float amount into a decimal for arithmetic.
func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// round2 rounds a monetary amount to two decimal places and returns it
// in the float form the models store.  Every aggregation step goes
// through this to keep float drift out of balances.
func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// nightsBetween computes the number of nights between two calendar
// dates.  Unparseable input or a check-out on or before the check-in
// yields the one-night minimum.
func nightsBetween(checkIn, checkOut string) int {
	in, err1 := time.Parse(dateLayout, checkIn)
	out, err2 := time.Parse(dateLayout, checkOut)
	if err1 != nil || err2 != nil {
		return 1
	}
	n := int(out.Sub(in).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}
