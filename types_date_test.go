package scout

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"2025-07-01T10:30:00Z", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseDate(%q) error = %v, want error %v", tt.input, err, tt.err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2025, time.March, 31)

	if got := d.Add(1); got != NewDate(2025, time.April, 1) {
		t.Errorf("Add(1) = %v", got)
	}
	if got := d.Add(-1); got != NewDate(2025, time.March, 30) {
		t.Errorf("Add(-1) = %v", got)
	}
	// month arithmetic normalizes: March 31 minus one month overflows February.
	if got := d.AddMonth(-1); got != NewDate(2025, time.March, 3) {
		t.Errorf("AddMonth(-1) = %v", got)
	}
	if got := d.AddYear(-1); got != NewDate(2024, time.March, 31) {
		t.Errorf("AddYear(-1) = %v", got)
	}
	if got := d.StartOfYear(); got != NewDate(2025, time.January, 1) {
		t.Errorf("StartOfYear() = %v", got)
	}
	if got := NewDate(2025, time.January, 10).Sub(NewDate(2025, time.January, 1)); got != 9 {
		t.Errorf("Sub() = %d, want 9", got)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.February, 3)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-02-03"` {
		t.Fatalf("marshal = %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Fatalf("round trip = %v, want %v", back, d)
	}
}
