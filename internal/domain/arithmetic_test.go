package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"first demo sum", 10, 42, 52},
		{"second demo sum", 100, 42, 142},
		{"zeros", 0, 0, 0},
		{"negative operand", -7, 3, -4},
		{"both negative", -5, -6, -11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Add(tt.x, tt.y))
		})
	}
}

func TestAdd_Commutative(t *testing.T) {
	values := []int{-1000, -42, -1, 0, 1, 10, 42, 100, 1 << 20}

	for _, x := range values {
		for _, y := range values {
			assert.Equal(t, Add(x, y), Add(y, x), "add(%d, %d)", x, y)
		}
	}
}

func TestCheckPositive(t *testing.T) {
	tests := []struct {
		name string
		num  int
		want bool
	}{
		{"zero is not positive", 0, false},
		{"one", 1, true},
		{"minus one", -1, false},
		{"first demo result", 52, true},
		{"second demo result", 142, true},
		{"large negative", -1 << 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPositive(tt.num))
		})
	}
}
