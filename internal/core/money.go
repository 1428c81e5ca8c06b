// Package core holds the domain types of the finance assistant: transactions,
// money, categories and the pt-BR month table.
package core

import "github.com/shopspring/decimal"

// Money is a signed decimal amount in reais. Arithmetic goes through
// shopspring/decimal so repeated sums never accumulate float error.
type Money struct {
	Amount decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Amount: d}
}

func MoneyZero() Money {
	return Money{Amount: decimal.Zero}
}

func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{Amount: m.Amount.Sub(other.Amount)}
}

func (m Money) Abs() Money {
	return Money{Amount: m.Amount.Abs()}
}

func (m Money) Neg() Money {
	return Money{Amount: m.Amount.Neg()}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount)
}

// BRL renders the amount as "R$ 12.34", two decimals, sign included when
// negative. Use AbsBRL for magnitudes.
func (m Money) BRL() string {
	return "R$ " + m.Amount.StringFixed(2)
}

// AbsBRL renders the magnitude as "R$ 12.34".
func (m Money) AbsBRL() string {
	return "R$ " + m.Amount.Abs().StringFixed(2)
}
