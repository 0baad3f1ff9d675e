package units

import (
	"strconv"
	"testing"
)

func TestFormatKg(t *testing.T) {
	tests := []struct {
		kg   float64
		want string
	}{
		{100, "100.0"},
		{102.5, "102.5"},
		{0.25, "0.2"},
		{227.5, "227.5"},
	}
	for _, tt := range tests {
		if got := Format(tt.kg, KG); got != tt.want {
			t.Errorf("Format(%v, kg) = %q, want %q", tt.kg, got, tt.want)
		}
	}
}

func TestFormatLb(t *testing.T) {
	tests := []struct {
		kg   float64
		want string
	}{
		{100, "220"},       // 220.46 lb → 220
		{102.5, "225"},     // 225.97 lb → 225
		{60, "130"},        // 132.28 lb → 130
		{2.26796185, "5"},  // exactly 5 lb
		{1, "0"},           // 2.2 lb rounds to 0 for display
	}
	for _, tt := range tests {
		if got := Format(tt.kg, LB); got != tt.want {
			t.Errorf("Format(%v, lb) = %q, want %q", tt.kg, got, tt.want)
		}
	}
}

func TestRoundToNearest5(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{2.4, 0},
		{2.5, 5},
		{137, 135},
		{138, 140},
		{225, 225},
	}
	for _, tt := range tests {
		if got := RoundToNearest5(tt.in); got != tt.want {
			t.Errorf("RoundToNearest5(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToKilogramsRejectsNonPositive(t *testing.T) {
	for _, unit := range []Unit{KG, LB} {
		for _, v := range []float64{0, -5, -0.1} {
			if _, err := ToKilograms(v, unit); err == nil {
				t.Errorf("ToKilograms(%v, %s) should fail", v, unit)
			}
		}
	}
	// A pound value that rounds down to zero is rejected, not clamped.
	if _, err := ToKilograms(2, LB); err == nil {
		t.Error("ToKilograms(2, lb) rounds to 0 and should fail")
	}
}

func TestToKilogramsKgPassthrough(t *testing.T) {
	got, err := ToKilograms(102.5, KG)
	if err != nil {
		t.Fatalf("ToKilograms error: %v", err)
	}
	if got != 102.5 {
		t.Errorf("ToKilograms(102.5, kg) = %v, want 102.5", got)
	}
}

func TestToKilogramsRoundsPoundsBeforeConverting(t *testing.T) {
	// 227 lb rounds to 225 lb before conversion.
	got, err := ToKilograms(227, LB)
	if err != nil {
		t.Fatalf("ToKilograms error: %v", err)
	}
	want := 225 * KgPerLb
	if got != want {
		t.Errorf("ToKilograms(227, lb) = %v, want %v", got, want)
	}
}

// A pound display round-trips: entering exactly what is shown yields the
// same display again.
func TestPoundRoundTripIdempotent(t *testing.T) {
	for _, kg := range []float64{20, 60, 61.7, 100, 102.5, 142.9, 227.3, 310} {
		display := Format(kg, LB)
		entered, err := strconv.ParseFloat(display, 64)
		if err != nil {
			t.Fatalf("parse %q: %v", display, err)
		}
		if entered <= 0 {
			continue
		}
		backKg, err := ToKilograms(entered, LB)
		if err != nil {
			t.Fatalf("ToKilograms(%v, lb): %v", entered, err)
		}
		if again := Format(backKg, LB); again != display {
			t.Errorf("round trip for %v kg: display %q, after round trip %q", kg, display, again)
		}
	}
}
