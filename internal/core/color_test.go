package core

import "testing"

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, "default"},
		{ColorBrightYellow, "bright_yellow"},
		{ColorGray, "gray"},
		{Color(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Color(%d).String() = %q, want %q", uint8(tt.c), got, tt.want)
		}
	}
}
