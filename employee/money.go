package employee

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Dollar amount with exact decimal arithmetic
// =============================================================================

// Money is a dollar amount. It wraps decimal.Decimal so wage-bound checks
// compare exactly (99.99 is inside the hourly range, 100.00 is not) and so
// 52000 / 52 is exactly 1000, with no float drift in either direction.
type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func NewMoneyFromInt(value int) Money {
	return Money{Value: decimal.NewFromInt(int64(value))}
}

// ParseMoney parses a decimal string such as "52000" or "15.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Value: d}, nil
}

func (m Money) Add(o Money) Money            { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) Mul(s decimal.Decimal) Money  { return Money{Value: m.Value.Mul(s)} }
func (m Money) Div(s decimal.Decimal) Money  { return Money{Value: m.Value.Div(s)} }
func (m Money) Equal(o Money) bool           { return m.Value.Equal(o.Value) }
func (m Money) LessThan(o Money) bool        { return m.Value.LessThan(o.Value) }
func (m Money) GreaterThan(o Money) bool     { return m.Value.GreaterThan(o.Value) }
func (m Money) IsZero() bool                 { return m.Value.IsZero() }

// String returns the plain decimal text, e.g. "52000" or "15.5".
// Formatting may drop trailing zeros; ParseMoney recovers the same value.
func (m Money) String() string { return m.Value.String() }
