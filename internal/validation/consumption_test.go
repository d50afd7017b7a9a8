package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConsumption(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ConsumptionCommand
	}{
		{"single letter", "x", ConsumptionCommand{Letter: 'x', Count: 1}},
		{"run length is the count", "zzz", ConsumptionCommand{Letter: 'z', Count: 3}},
		{"count with cost", "xx 150", ConsumptionCommand{Letter: 'x', Count: 2, Cost: 150}},
		{"single with cost", "y 75", ConsumptionCommand{Letter: 'y', Count: 1, Cost: 75}},
		{"decimal cost truncates", "x 12.9", ConsumptionCommand{Letter: 'x', Count: 1, Cost: 12}},
		{"unparseable cost defaults to zero", "x abc", ConsumptionCommand{Letter: 'x', Count: 1}},
		{"upper case and padding tolerated", "  XX  150 ", ConsumptionCommand{Letter: 'x', Count: 2, Cost: 150}},
		{"trailing tokens beyond cost ignored", "y 75 extra", ConsumptionCommand{Letter: 'y', Count: 1, Cost: 75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConsumption(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseConsumptionRejectsMalformedInput(t *testing.T) {
	for _, text := range []string{"", "   ", "xy", "xxz", "a", "q 150", "150 x"} {
		t.Run("text="+text, func(t *testing.T) {
			_, err := ParseConsumption(text)
			assert.ErrorIs(t, err, ErrInvalidConsumption)
		})
	}
}
