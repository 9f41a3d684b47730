package money

import (
	"errors"
	"fmt"
)

type Money struct {
	cents int64
}

func New(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// Percent returns m * p / 100 rounded half-up to the cent.
func (m Money) Percent(p int64) Money {
	v := m.cents * p
	if v >= 0 {
		return Money{cents: (v + 50) / 100}
	}
	return Money{cents: (v - 50) / 100}
}

// String formats the amount with exactly two decimals, e.g. "132.59".
func (m Money) String() string {
	c := m.cents
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
