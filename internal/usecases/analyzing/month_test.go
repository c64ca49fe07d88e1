package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelerFor(t *testing.T) {
	tests := []struct {
		locale   string
		month    time.Month
		expected string
	}{
		{locale: "ru", month: time.May, expected: "мая"},
		{locale: "RU", month: time.September, expected: "сент."},
		{locale: "pt-BR", month: time.February, expected: "fev."},
		{locale: " en ", month: time.December, expected: "Dec"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.month.String(), func(t *testing.T) {
			labeler, err := LabelerFor(tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, labeler(tt.month))
		})
	}
}

func TestLabelerFor_UnsupportedLocale(t *testing.T) {
	labeler, err := LabelerFor("xx")
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
	assert.Nil(t, labeler)
}

func TestLabelerFor_EveryMonthHasDistinctLabel(t *testing.T) {
	for locale := range monthNames {
		labeler, err := LabelerFor(locale)
		require.NoError(t, err)

		seen := map[string]bool{}
		for m := time.January; m <= time.December; m++ {
			label := labeler(m)
			assert.NotEmpty(t, label)
			assert.False(t, seen[label], "rótulo repetido %q em %s", label, locale)
			seen[label] = true
		}
	}
}
