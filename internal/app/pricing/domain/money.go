package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with precise decimal arithmetic.
// Money is immutable - all operations return new instances.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a new Money instance from numerator and denominator.
// For example: NewMoney(1999, 100) represents 19.99
func NewMoney(numerator, denominator int64) *Money {
	if denominator == 0 {
		panic("money: denominator cannot be zero")
	}
	return &Money{
		amount: decimal.NewFromInt(numerator).Div(decimal.NewFromInt(denominator)),
	}
}

// NewMoneyFromDecimal creates Money from a decimal string.
// For example: "19.99", "100.00", "0.01"
func NewMoneyFromDecimal(s string) (*Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal format: %s", s)
	}
	return &Money{amount: d}, nil
}

// Zero returns a Money instance representing zero.
func Zero() *Money {
	return &Money{amount: decimal.Zero}
}

// Max returns whichever of m and other is greater. Ties return m.
func (m *Money) Max(other *Money) *Money {
	if other.GreaterThan(m) {
		return other
	}
	return m
}

func (m *Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// GreaterThan returns true if m is greater than other.
func (m *Money) GreaterThan(other *Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// LessThan returns true if m is less than other.
func (m *Money) LessThan(other *Money) bool {
	return m.amount.LessThan(other.amount)
}

// Equals compares numerically, so "150" equals "150.00".
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Equal(other.amount)
}

// Numerator returns the numerator of the exact rational value.
// Used for database persistence.
func (m *Money) Numerator() int64 {
	return m.amount.Rat().Num().Int64()
}

// Denominator returns the denominator of the exact rational value.
// Used for database persistence.
func (m *Money) Denominator() int64 {
	return m.amount.Rat().Denom().Int64()
}

// String renders the amount with two decimal places, e.g. "19.99".
func (m *Money) String() string {
	return m.amount.StringFixed(2)
}
