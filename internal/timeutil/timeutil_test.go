// ABOUTME: Tests for feed date helpers
// ABOUTME: Verifies parsing of RSS, ATOM and Dublin Core dates and UTC normalization

package timeutil

import (
	"testing"
	"time"
)

func TestIsDateField(t *testing.T) {
	tests := []struct {
		field string
		want  bool
	}{
		{"lastUpdated", true},
		{"createdAt", true},
		{"title", false},
		{"LastUpdated", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := IsDateField(tc.field); got != tc.want {
			t.Errorf("IsDateField(%q) = %v, expected %v", tc.field, got, tc.want)
		}
	}
}

func TestParseFeedDate(t *testing.T) {
	want := time.Date(2003, time.December, 13, 18, 30, 2, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"rfc1123 gmt", "Sat, 13 Dec 2003 18:30:02 GMT"},
		{"rfc1123z", "Sat, 13 Dec 2003 19:30:02 +0100"},
		{"rfc3339 utc", "2003-12-13T18:30:02Z"},
		{"rfc3339 offset", "2003-12-13T13:30:02-05:00"},
		{"w3c-dtf no zone", "2003-12-13 18:30:02"},
		{"padded", "  2003-12-13T18:30:02Z \n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseFeedDate(tc.input)
			if err != nil {
				t.Fatalf("parseFeedDate(%q) error = %v", tc.input, err)
			}
			if !got.Equal(want) {
				t.Errorf("parseFeedDate(%q) = %v, expected %v", tc.input, got.UTC(), want)
			}
		})
	}
}

func TestParseFeedDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "not a date"} {
		if _, err := parseFeedDate(input); err == nil {
			t.Errorf("parseFeedDate(%q) expected error", input)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		template string
		want     string
	}{
		{"default template", "Sat, 13 Dec 2003 19:30:02 +0100", "", "2003-12-13T18:30:02Z"},
		{"custom template", "2003-12-13T18:30:02Z", "2006-01-02", "2003-12-13"},
		{"rfc1123 template", "2003-12-13T13:30:02-05:00", time.RFC1123, "Sat, 13 Dec 2003 18:30:02 UTC"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.value, tc.template)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("Normalize(%q, %q) = %q, expected %q", tc.value, tc.template, got, tc.want)
			}
		})
	}
}

func TestNormalize_PassesThroughUnparseable(t *testing.T) {
	got, err := Normalize("not a date", "")
	if err == nil {
		t.Error("expected an error for unparseable input")
	}
	if got != "not a date" {
		t.Errorf("Normalize() = %q, expected the input unchanged", got)
	}
}
