package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeArabic(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []rune
	}{
		{"joined word", "حميد", []rune{0xFEA3, 0xFEE4, 0xFEF4, 0xFEAA}},
		{"isolated letter", "د", []rune{0xFEA9}},
		{"right-joining breaks the word", "دار", []rune{0xFEA9, 0xFE8D, 0xFEAD}},
		{"lam alef ligature", "لا", []rune{0xFEFB}},
		{"lam alef after joining letter", "سلام", []rune{0xFEB3, 0xFEFC, 0xFEE1}},
		{"hamza does not join", "بء", []rune{0xFE8F, 0xFE80}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, string(tc.want), shapeArabic(tc.in))
		})
	}
}

func TestVisualOrder(t *testing.T) {
	assert.Equal(t, "Hamid 2", visualOrder("Hamid 2"), "latin text is untouched")

	got := []rune(visualOrder("حميد 12"))
	assert.Equal(t, []rune{'1', '2', ' ', 0xFEAA, 0xFEF4, 0xFEE4, 0xFEA3}, got)

	assert.Equal(t, string([]rune{0xFEE2, 0xFEEB, 0xFEAD, 0xFEA9})+" 12.50", visualOrder("12.50 درهم"))
}
