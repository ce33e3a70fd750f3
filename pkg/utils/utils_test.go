package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "Zero", in: 0, want: 0},
		{name: "Meio centavo sobe", in: 1.005, want: 1.01},
		{name: "Negativo", in: -2.344, want: -2.34},
		{name: "Já arredondado", in: 10.5, want: 10.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundWithTwoDecimalPlace(tt.in))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 33.33, Percent(1, 3))
	assert.Equal(t, -50.0, Percent(-5, 10))
	assert.Equal(t, 0.0, Percent(5, 0))
}

func TestParseDate(t *testing.T) {
	t.Run("Data válida no fuso local", func(t *testing.T) {
		got, err := ParseDate("2025-03-12")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local), got)
	})

	t.Run("Vazio devolve data zero", func(t *testing.T) {
		got, err := ParseDate("")
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("Formato inválido", func(t *testing.T) {
		_, err := ParseDate("12/03/2025")
		assert.Error(t, err)
	})
}

func TestGenerateID(t *testing.T) {
	a, err := GenerateID(8)
	require.NoError(t, err)
	b, err := GenerateID(8)
	require.NoError(t, err)

	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}
