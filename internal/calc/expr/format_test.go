package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"keycalc/internal/calc/expr"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{3, "3"},
		{-6, "-6"},
		{0.1, "0.1"},
		{2.5, "2.5"},
		{1e-6, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{123456789012345680000, "123456789012345680000"},
		{1e21, "1e+21"},
		{-2.5e22, "-2.5e+22"},
		{math.Inf(1), "0"},
		{math.NaN(), "0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, expr.FormatNumber(tt.in), "FormatNumber(%v)", tt.in)
	}
}
