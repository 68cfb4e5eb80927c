package assembly

import (
	"math"
	"testing"
)

func TestInterference(t *testing.T) {
	tests := []struct {
		name                    string
		piston, oring, cylinder float64
	}{
		{"nominal", 22.45, 3, 25},
		{"zeros", 0, 0, 0},
		{"negative", -1.5, 2.25, -4},
		{"large", 1e9, 3, 1e9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interference(tt.piston, tt.oring, tt.cylinder)
			want := tt.piston + tt.oring - tt.cylinder
			if got != want {
				t.Errorf("Interference() = %v, want %v", got, want)
			}
			if swapped := Interference(tt.oring, tt.piston, tt.cylinder); swapped != got {
				t.Errorf("Interference not symmetric in piston/oring: %v vs %v", swapped, got)
			}
		})
	}
}

func TestInterference_NominalDesign(t *testing.T) {
	v := Interference(22.45, 3, 25)
	if math.Abs(v-0.45) > 1e-12 {
		t.Fatalf("expected 0.45, got %v", v)
	}
	if !WithinTolerance(v, 0.3, 0.6) {
		t.Error("nominal design should pass the default band")
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want bool
	}{
		{"inside", 0.45, true},
		{"at lower", 0.3, true},
		{"at upper", 0.6, true},
		{"just below", math.Nextafter(0.3, 0), false},
		{"just above", math.Nextafter(0.6, 1), false},
		{"far below", -2, false},
		{"far above", 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinTolerance(tt.v, 0.3, 0.6); got != tt.want {
				t.Errorf("WithinTolerance(%v) = %v, want %v", tt.v, got, tt.want)
			}
			band := ToleranceBand{Lower: 0.3, Upper: 0.6}
			if got := band.Contains(tt.v); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	band := ToleranceBand{Lower: 0.3, Upper: 0.6}

	r := Evaluate(22.45, 3, 25, band)
	if !r.Passed {
		t.Errorf("expected pass, got %+v", r)
	}

	r = Evaluate(22.45, 3, 25.5, band)
	if r.Passed {
		t.Errorf("expected fail, got %+v", r)
	}
}
