package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(200), ""},
	}

	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.expected {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}

func TestPaletteOrder(t *testing.T) {
	p := Palette()
	if len(p) != int(colorCount) {
		t.Fatalf("Palette() has %d colors, expected %d", len(p), colorCount)
	}
	if p[0] != ColorDefault || p[len(p)-1] != ColorGray {
		t.Errorf("Palette() order is wrong: first %d, last %d", p[0], p[len(p)-1])
	}
}
