package validate

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	assert.NoError(t, Collect(nil, Required("name", "x")))

	err := Collect(Required("name", "  "), nil, OneOf("type", "loan", "credit", "payment"))
	require.Error(t, err)
	var errs Errs
	require.True(t, errors.As(err, &errs))
	assert.Len(t, errs, 2)
	assert.Equal(t, "name: required; type: must be one of credit, payment", err.Error())
}

func TestAmount(t *testing.T) {
	cases := map[string]bool{
		"0.01":            true,
		"100":             true,
		"12.50":           true,
		"12.500":          true,
		"0":               false,
		"-5":              false,
		"1.005":           false,
		"999999999999.99": true,
		"1000000000000":   false,
	}
	for in, ok := range cases {
		got := Amount("amount", decimal.RequireFromString(in))
		if ok {
			assert.Nil(t, got, in)
		} else {
			assert.NotNil(t, got, in)
		}
	}
}

func TestLengths(t *testing.T) {
	assert.Nil(t, MaxLen("name", "حميد", 4))
	assert.NotNil(t, MaxLen("name", "حميدو", 4))
	assert.NotNil(t, MinLen("password", "short", 8))
	assert.Nil(t, MinLen("password", "long-enough", 8))
}
