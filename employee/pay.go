package employee

import "github.com/shopspring/decimal"

var (
	weeksPerYear = decimal.NewFromInt(52)
	hoursPerWeek = decimal.NewFromInt(40)
)

// CalcPay returns the weekly pay for the record, dispatched over the
// category tag: salaried categories earn yearly/52, hourly categories earn
// hourly*40. No rounding is applied here; presentation rounds for display.
func (e *Employee) CalcPay() Money {
	switch {
	case e.category.IsSalaried():
		return e.yearly.Div(weeksPerYear)
	case e.category.IsHourly():
		return e.hourly.Mul(hoursPerWeek)
	default:
		return Money{}
	}
}
