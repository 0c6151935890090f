package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromFloat(t *testing.T) {
	assert.Equal(t, int64(1000), FromFloat(10).Cents)
	assert.Equal(t, int64(350), FromFloat(3.5).Cents)
	assert.Equal(t, int64(850), FromFloat(8.5).Cents)
	// rounds half away from zero instead of truncating
	assert.Equal(t, int64(1), FromFloat(0.005).Cents)
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "10.00", Money{Cents: 1000}.String())
	assert.Equal(t, "3.50", Money{Cents: 350}.String())
	assert.Equal(t, "0.00", Money{}.String())
	assert.Equal(t, "-2.05", Money{Cents: -205}.String())
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Money{Cents: 1050})
	require.NoError(t, err)
	// plain decimal number on the wire, no quotes
	assert.Equal(t, "10.50", string(b))

	var m Money
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, int64(1050), m.Cents)
}

func TestMoneyUnmarshalNumberForms(t *testing.T) {
	for in, want := range map[string]int64{
		"10":    1000,
		"10.5":  1050,
		"10.00": 1000,
		"0":     0,
	} {
		var m Money
		require.NoError(t, json.Unmarshal([]byte(in), &m), in)
		assert.Equal(t, want, m.Cents, in)
	}

	var m Money
	assert.Error(t, json.Unmarshal([]byte(`"ten"`), &m))
}

func TestMoneyArithmetic(t *testing.T) {
	total := FromFloat(5).Mul(2).Add(FromFloat(3.5))
	assert.Equal(t, "13.50", total.String())
}
