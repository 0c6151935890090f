package domain

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Money is an amount in cents. The persisted cart stores prices as plain
// decimal numbers (e.g. 10.5), so Money marshals without quotes.
type Money struct {
	Cents int64
}

func FromFloat(f float64) Money {
	return Money{Cents: int64(math.Round(f * 100))}
}

func (m Money) Add(o Money) Money { return Money{Cents: m.Cents + o.Cents} }

func (m Money) Mul(qty int) Money { return Money{Cents: m.Cents * int64(qty)} }

// String renders the amount with two decimal places, e.g. "10.00".
func (m Money) String() string {
	c := m.Cents
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

func (m Money) Float() float64 { return float64(m.Cents) / 100 }

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("money: %w", err)
	}
	*m = FromFloat(f)
	return nil
}

func (m *Money) UnmarshalYAML(node *yaml.Node) error {
	var f float64
	if err := node.Decode(&f); err != nil {
		return fmt.Errorf("money: %w", err)
	}
	*m = FromFloat(f)
	return nil
}
