package scout

import "testing"

func TestHistory_ValueAsOf(t *testing.T) {
	h := &History[float64]{}
	h.Append(day("2025-01-10"), 100)
	h.Append(day("2025-01-20"), 110)
	h.Append(day("2025-02-01"), 120)

	tests := []struct {
		name  string
		on    string
		want  float64
		found bool
	}{
		{"before any value", "2025-01-09", 0, false},
		{"exact date", "2025-01-10", 100, true},
		{"between two values", "2025-01-15", 100, true},
		{"second exact date", "2025-01-20", 110, true},
		{"after last value", "2025-03-01", 120, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := h.ValueAsOf(day(tt.on))
			if found != tt.found || got != tt.want {
				t.Errorf("ValueAsOf(%s) = (%v, %v), want (%v, %v)", tt.on, got, found, tt.want, tt.found)
			}
		})
	}
}

// A value dated after the requested day must never leak into the answer, even
// when it is the only value in the series.
func TestHistory_ValueAsOf_NoFutureValue(t *testing.T) {
	h := &History[float64]{}
	h.Append(day("2025-06-01"), 42)

	if got, found := h.ValueAsOf(day("2025-05-31")); found {
		t.Errorf("ValueAsOf before the only value = (%v, true), want (0, false)", got)
	}
}

func TestHistory_ValueAsOf_Empty(t *testing.T) {
	h := &History[float64]{}
	if got, found := h.ValueAsOf(day("2025-01-01")); found || got != 0 {
		t.Errorf("ValueAsOf on empty history = (%v, %v), want (0, false)", got, found)
	}
}

// Re-appending the same day overwrites: lookups stay deterministic whatever
// the feed sent twice.
func TestHistory_Append_SameDayOverwrites(t *testing.T) {
	h := &History[float64]{}
	h.Append(day("2025-01-10"), 100)
	h.Append(day("2025-01-10"), 105)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if got, _ := h.ValueAsOf(day("2025-01-10")); got != 105 {
		t.Errorf("ValueAsOf after overwrite = %v, want 105", got)
	}
}

func TestHistory_Append_KeepsChronologicalOrder(t *testing.T) {
	h := &History[float64]{}
	h.Append(day("2025-03-01"), 3)
	h.Append(day("2025-01-01"), 1)
	h.Append(day("2025-02-01"), 2)

	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
	}
}
