package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ID string

// Canonical returns the id in the lowercase hex form the store reports.
func (id ID) Canonical() ID {
	return ID(strings.ToLower(strings.TrimSpace(string(id))))
}

func ValidateID(id string) bool {
	return len(id) == 24
}

// Amount is a monetary value in cents.
type Amount int

func NewAmountFromCents(cents int) Amount {
	return Amount(cents)
}

func NewAmountFromValue(value int) Amount {
	return Amount(value * 100)
}

// NewAmountFromDecimal rounds to the nearest cent.
func NewAmountFromDecimal(value decimal.Decimal) Amount {
	return Amount(value.Shift(2).Round(0).IntPart())
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Multiply(b int) Amount {
	return a * Amount(b)
}

func (a Amount) ToValue() int {
	return int(a) / 100
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

func (a Amount) IsNegative() bool {
	return a < 0
}

type Event interface {
	GetName() string
	GetEntityName() string
}
