package geom_test

import (
	"testing"

	"cssb/geom"
)

func TestRect_Area(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		height float64
		want   float64
	}{
		{"integral sides", 10, 20, 200},
		{"fractional sides", 3.5, 2, 7},
		{"zero width", 0, 100, 0},
		{"negative passes through", -2, 3, -6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := geom.NewRect(tt.width, tt.height)
			if r.Width != tt.width || r.Height != tt.height {
				t.Errorf("NewRect() = %+v, want width %v height %v", r, tt.width, tt.height)
			}
			if got := r.Area(); got != tt.want {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}
