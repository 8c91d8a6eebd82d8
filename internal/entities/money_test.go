package entities_test

import (
	"testing"

	"github.com/StefanMagureanu25/AWBD/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	testCases := []struct {
		name    string
		amount  string
		want    string
		wantErr error
	}{
		{name: "whole amount", amount: "10", want: "10.00"},
		{name: "two decimals", amount: "19.99", want: "19.99"},
		{name: "rounds half up", amount: "10.005", want: "10.01"},
		{name: "rounds extra precision", amount: "3.14159", want: "3.14"},
		{name: "zero", amount: "0", want: "0.00"},
		{name: "negative rejected", amount: "-0.01", wantErr: entities.ErrInvalidAmount},
		{name: "too large rejected", amount: "10000000000", wantErr: entities.ErrInvalidAmount},
		{name: "just under the cap", amount: "9999999999.99", want: "9999999999.99"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tc.amount)
			require.NoError(t, err)

			m, err := entities.NewMoney(d)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.String())
		})
	}
}

func TestMoneyFromString(t *testing.T) {
	m, err := entities.MoneyFromString("25.50")
	require.NoError(t, err)
	assert.Equal(t, "25.50", m.String())

	_, err = entities.MoneyFromString("not a number")
	assert.ErrorIs(t, err, entities.ErrInvalidAmount)

	_, err = entities.MoneyFromString("-5")
	assert.ErrorIs(t, err, entities.ErrInvalidAmount)
}

func TestMoney_Arithmetic(t *testing.T) {
	a, err := entities.MoneyFromString("10.50")
	require.NoError(t, err)
	b, err := entities.MoneyFromString("4.25")
	require.NoError(t, err)

	t.Run("add", func(t *testing.T) {
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "14.75", sum.String())
	})

	t.Run("sub", func(t *testing.T) {
		diff, err := a.Sub(b)
		require.NoError(t, err)
		assert.Equal(t, "6.25", diff.String())
	})

	t.Run("sub below zero fails", func(t *testing.T) {
		_, err := b.Sub(a)
		assert.ErrorIs(t, err, entities.ErrInvalidAmount)
	})

	t.Run("mul int", func(t *testing.T) {
		product, err := a.MulInt(3)
		require.NoError(t, err)
		assert.Equal(t, "31.50", product.String())
	})

	t.Run("mul negative fails", func(t *testing.T) {
		_, err := a.MulInt(-1)
		assert.ErrorIs(t, err, entities.ErrInvalidAmount)
	})

	t.Run("mul overflow fails", func(t *testing.T) {
		big, err := entities.MoneyFromString("9999999999")
		require.NoError(t, err)
		_, err = big.MulInt(2)
		assert.ErrorIs(t, err, entities.ErrInvalidAmount)
	})

	t.Run("add overflow fails", func(t *testing.T) {
		big, err := entities.MoneyFromString("9999999999")
		require.NoError(t, err)
		_, err = big.Add(big)
		assert.ErrorIs(t, err, entities.ErrInvalidAmount)
	})
}

func TestMoney_Comparisons(t *testing.T) {
	a, _ := entities.MoneyFromString("1.00")
	b, _ := entities.MoneyFromString("2.00")

	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))

	assert.True(t, entities.ZeroMoney().IsZero())
	assert.False(t, a.IsZero())
	assert.False(t, a.IsNegative())
}

func TestMoney_ZeroValue(t *testing.T) {
	var m entities.Money
	assert.True(t, m.IsZero())
	assert.Equal(t, "0.00", m.String())

	sum, err := m.Add(m)
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestNewQuantity(t *testing.T) {
	q, err := entities.NewQuantity(3)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Int())

	_, err = entities.NewQuantity(0)
	assert.ErrorIs(t, err, entities.ErrInvalidQuantity)

	_, err = entities.NewQuantity(-5)
	assert.ErrorIs(t, err, entities.ErrInvalidQuantity)
}
