package khata

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
	}{
		{"2026-08-31", NewDate(2026, time.August, 31)},
		{"2026-8-3", NewDate(2026, time.August, 3)}, // permissive single digits
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if _, err := ParseDate("31/08/2026"); err == nil {
		t.Error("want error for non-ISO input")
	}
}

func TestDatePeriods(t *testing.T) {
	d := MustParseDate("2026-03-14")
	testCases := []struct {
		period     Period
		start, end string
	}{
		{Daily, "2026-03-14", "2026-03-14"},
		{Weekly, "2026-03-09", "2026-03-15"},
		{Monthly, "2026-03-01", "2026-03-31"},
		{Quarterly, "2026-01-01", "2026-03-31"},
		{Yearly, "2026-01-01", "2026-12-31"},
	}
	for _, tc := range testCases {
		if got := d.StartOf(tc.period); got.String() != tc.start {
			t.Errorf("StartOf(%s) = %s, want %s", tc.period, got, tc.start)
		}
		if got := d.EndOf(tc.period); got.String() != tc.end {
			t.Errorf("EndOf(%s) = %s, want %s", tc.period, got, tc.end)
		}
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(MustParseDate("2026-03-01"), MustParseDate("2026-03-31"))
	if !r.Contains(MustParseDate("2026-03-14")) {
		t.Error("mid-range date not contained")
	}
	if !r.Contains(MustParseDate("2026-03-01")) || !r.Contains(MustParseDate("2026-03-31")) {
		t.Error("range bounds are inclusive")
	}
	if r.Contains(MustParseDate("2026-04-01")) {
		t.Error("date past the end contained")
	}

	// the zero range is the unset filter and matches everything
	var all Range
	if !all.Contains(MustParseDate("1999-01-01")) {
		t.Error("zero range must contain every date")
	}
}

func TestDateJSON(t *testing.T) {
	data, err := json.Marshal(MustParseDate("2026-08-31"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2026-08-31"` {
		t.Errorf("marshal = %s", data)
	}

	var d Date
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatal(err)
	}
	if !d.IsZero() {
		t.Errorf("null decoded to %s", d)
	}
	if err := json.Unmarshal([]byte(`"2026-08-31"`), &d); err != nil {
		t.Fatal(err)
	}
	if d.String() != "2026-08-31" {
		t.Errorf("unmarshal = %s", d)
	}
}
