package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.00", FormatMoney(decimal.Zero))
	assert.Equal(t, "30.00", FormatMoney(decimal.NewFromInt(30)))
	assert.Equal(t, "10.13", FormatMoney(decimal.RequireFromString("10.125")))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "inteiro", input: "1000", want: "1000"},
		{name: "ponto", input: "15.5", want: "15.5"},
		{name: "vírgula", input: " 15,5 ", want: "15.5"},
		{name: "vazio", input: "", wantErr: true},
		{name: "texto", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got))
		})
	}
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, runIDLength)
	assert.NotEqual(t, first, second)
}
