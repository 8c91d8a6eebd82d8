package entities

import (
	"github.com/shopspring/decimal"
)

// maxMoneyIntegralDigits mirrors the numeric(12,2) columns: ten digits before
// the decimal point.
const maxMoneyIntegralDigits = 10

var maxMoney = decimal.New(1, maxMoneyIntegralDigits)

// Money is a non-negative fixed-point amount with two decimal places.
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrInvalidAmount
	}
	if amount.GreaterThanOrEqual(maxMoney) {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: amount.Round(2)}, nil
}

func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(amount)
}

func ZeroMoney() Money {
	return Money{}
}

// RestoreMoney rebuilds an amount loaded from storage. Amounts are validated
// on the way in, so hydration skips the range checks.
func RestoreMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

func (m Money) Add(other Money) (Money, error) {
	sum := m.amount.Add(other.amount)
	if sum.GreaterThanOrEqual(maxMoney) {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: sum}, nil
}

func (m Money) Sub(other Money) (Money, error) {
	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: diff}, nil
}

func (m Money) MulInt(n int) (Money, error) {
	if n < 0 {
		return Money{}, ErrInvalidAmount
	}
	product := m.amount.Mul(decimal.NewFromInt(int64(n)))
	if product.GreaterThanOrEqual(maxMoney) {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: product}, nil
}

func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// GobEncode lets orders be gob encoded for the read cache despite the
// unexported amount field.
func (m Money) GobEncode() ([]byte, error) {
	return m.amount.MarshalBinary()
}

func (m *Money) GobDecode(data []byte) error {
	return m.amount.UnmarshalBinary(data)
}

// Quantity is a count of units on an order line, always at least one.
type Quantity int

func NewQuantity(n int) (Quantity, error) {
	if n < 1 {
		return 0, ErrInvalidQuantity
	}
	return Quantity(n), nil
}

func (q Quantity) Int() int {
	return int(q)
}
