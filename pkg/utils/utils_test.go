package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *date)
	assert.Equal(t, "2024-03-15", FormatDate(*date))

	empty, err := ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, empty)

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestFromMinorUnits(t *testing.T) {
	tests := []struct {
		name  string
		minor float64
		want  float64
	}{
		{name: "centavos inteiros", minor: 150000, want: 1500},
		{name: "zero", minor: 0, want: 0},
		{name: "fração de centavo arredondada", minor: 1999.7, want: 20},
		{name: "fração menor que meio centavo", minor: 1234.4, want: 12.34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromMinorUnits(tt.minor))
		})
	}
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, 1500.0, FromMinorUnits(150000))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, int64(1550), ToMinorUnits(15.5))
	assert.Equal(t, 0.0, SafeDivide(10, 0))
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.345678))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(12)
	require.NoError(t, err)
	assert.Len(t, id, 12)
	assert.Regexp(t, `^[A-Za-z0-9]+$`, id)
}
