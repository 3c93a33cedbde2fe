package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"plain date", "2024-03-15", NewDate(2024, time.March, 15), false},
		{"timestamp truncated", "2024-03-15T00:00:00Z", NewDate(2024, time.March, 15), false},
		{"timestamp with offset", "2024-03-15T23:30:00-08:00", NewDate(2024, time.March, 15), false},
		{"leap day", "2024-02-29", NewDate(2024, time.February, 29), false},
		{"garbage", "not-a-date", Date{}, true},
		{"empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// A date string must resolve to the same calendar day in any execution
// timezone; date-only values never pass through a timezone conversion.
func TestParseDateTimezoneIndependent(t *testing.T) {
	for _, zone := range []string{"Pacific/Kiritimati", "America/Los_Angeles", "UTC"} {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			t.Skipf("timezone database unavailable: %v", err)
		}
		restore := time.Local
		time.Local = loc
		d, err := ParseDate("2024-03-01")
		time.Local = restore
		if err != nil {
			t.Fatalf("ParseDate in %s: %v", zone, err)
		}
		if want := NewDate(2024, time.March, 1); d != want {
			t.Errorf("ParseDate in %s = %v, want %v", zone, d, want)
		}
	}
}

func TestDateComparisons(t *testing.T) {
	a := NewDate(2024, time.March, 15)
	b := NewDate(2024, time.March, 16)
	c := NewDate(2025, time.January, 1)

	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before(%v, %v) wrong", a, b)
	}
	if !c.After(b) {
		t.Errorf("%v should be after %v", c, b)
	}
	if !a.Equal(a) || a.Equal(b) {
		t.Errorf("Equal wrong for %v, %v", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("a date must not sort before or after itself")
	}
}

func TestDateAddDays(t *testing.T) {
	tests := []struct {
		start Date
		days  int
		want  Date
	}{
		{NewDate(2024, time.March, 15), 7, NewDate(2024, time.March, 22)},
		{NewDate(2024, time.February, 28), 1, NewDate(2024, time.February, 29)},
		{NewDate(2023, time.February, 28), 1, NewDate(2023, time.March, 1)},
		{NewDate(2024, time.December, 31), 1, NewDate(2025, time.January, 1)},
		{NewDate(2024, time.March, 1), -1, NewDate(2024, time.February, 29)},
	}

	for _, tt := range tests {
		if got := tt.start.AddDays(tt.days); got != tt.want {
			t.Errorf("%v.AddDays(%d) = %v, want %v", tt.start, tt.days, got, tt.want)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.March, 15)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshaling date: %v", err)
	}
	if string(data) != `"2024-03-15"` {
		t.Errorf("marshaled date = %s, want %q", data, "2024-03-15")
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshaling date: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
