package domain

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"no zero padding", "2015-03-09T00:00:00Z", "9/3/2015", false},
		{"two digit day and month", "2011-12-25T18:44:36Z", "25/12/2011", false},
		{"fractional seconds", "2020-01-02T03:04:05.678Z", "2/1/2020", false},
		{"offset is normalized", "2020-01-01T23:30:00-02:00", "2/1/2020", false},
		{"no zone", "2019-07-04T10:00:00", "4/7/2019", false},
		{"date only", "2001-09-30", "30/9/2001", false},
		{"garbage", "not a date", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDate(tt.input, time.UTC)

			if tt.wantErr {
				if err == nil {
					t.Errorf("FormatDate(%q) expected error, got %q", tt.input, got)
				}
				return
			}

			if err != nil {
				t.Fatalf("FormatDate(%q) unexpected error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDate_Location(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	got, err := FormatDate("2015-03-09T20:00:00Z", tokyo)
	if err != nil {
		t.Fatalf("FormatDate() unexpected error = %v", err)
	}
	if got != "10/3/2015" {
		t.Errorf("FormatDate() = %q, want %q", got, "10/3/2015")
	}
}

func TestFormatDate_ZonelessInLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	newYork := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name  string
		input string
		loc   *time.Location
		want  string
	}{
		{"late evening stays on the same day", "2019-07-04T23:30:00", tokyo, "4/7/2019"},
		{"early morning stays on the same day", "2019-07-04T00:15:00", newYork, "4/7/2019"},
		{"fractional seconds", "2019-07-04T23:30:00.5", tokyo, "4/7/2019"},
		{"zoned value is converted", "2019-07-04T23:30:00Z", tokyo, "5/7/2019"},
		{"date only is UTC midnight", "2001-09-30", newYork, "29/9/2001"},
		{"date only ahead of UTC", "2001-09-30", tokyo, "30/9/2001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDate(tt.input, tt.loc)
			if err != nil {
				t.Fatalf("FormatDate(%q) unexpected error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("FormatDate(%q, %s) = %q, want %q", tt.input, tt.loc, got, tt.want)
			}
		})
	}
}
