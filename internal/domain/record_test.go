package domain

import (
	"errors"
	"testing"
	"time"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestInterpret(t *testing.T) {
	tests := []struct {
		name        string
		mode        Mode
		rec         *Record
		wantText    string
		wantMissing bool
		wantFetch   bool
	}{
		{
			name:     "followers",
			mode:     ModeFollowers,
			rec:      &Record{Followers: intPtr(42), CreatedAt: strPtr("2011-01-25T18:44:36Z")},
			wantText: "Followers: 42\nJoined on: 25/1/2011",
		},
		{
			name:        "followers zero is rejected",
			mode:        ModeFollowers,
			rec:         &Record{Followers: intPtr(0), CreatedAt: strPtr("2011-01-25T18:44:36Z")},
			wantMissing: true,
		},
		{
			name:        "followers without created_at",
			mode:        ModeFollowers,
			rec:         &Record{Followers: intPtr(3)},
			wantMissing: true,
		},
		{
			name:     "repository date",
			mode:     ModeRepoDate,
			rec:      &Record{CreatedAt: strPtr("2015-03-09T00:00:00Z")},
			wantText: "Created on: 9/3/2015",
		},
		{
			name:        "repository date empty",
			mode:        ModeRepoDate,
			rec:         &Record{CreatedAt: strPtr("")},
			wantMissing: true,
		},
		{
			name:      "repository date unparseable",
			mode:      ModeRepoDate,
			rec:       &Record{CreatedAt: strPtr("yesterday")},
			wantFetch: true,
		},
		{
			name:     "repository stats zero values",
			mode:     ModeRepoStats,
			rec:      &Record{Forks: intPtr(0), StargazersCount: intPtr(0)},
			wantText: "Forks: 0\nStars: 0",
		},
		{
			name:     "repository stats",
			mode:     ModeRepoStats,
			rec:      &Record{Forks: intPtr(7), StargazersCount: intPtr(1200)},
			wantText: "Forks: 7\nStars: 1200",
		},
		{
			name:        "repository stats missing stars",
			mode:        ModeRepoStats,
			rec:         &Record{Forks: intPtr(7)},
			wantMissing: true,
		},
		{
			name:        "nil record",
			mode:        ModeRepoStats,
			rec:         nil,
			wantMissing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Interpret(tt.mode, tt.rec, time.UTC)

			if tt.wantMissing {
				var missingErr *MissingFieldError
				if !errors.As(err, &missingErr) {
					t.Fatalf("Interpret() error = %v, want *MissingFieldError", err)
				}
				if missingErr.Mode != tt.mode {
					t.Errorf("MissingFieldError.Mode = %v, want %v", missingErr.Mode, tt.mode)
				}
				return
			}
			if tt.wantFetch {
				var fetchErr *FetchError
				if !errors.As(err, &fetchErr) {
					t.Fatalf("Interpret() error = %v, want *FetchError", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Interpret() unexpected error = %v", err)
			}
			if got := result.Text(); got != tt.wantText {
				t.Errorf("Text() = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestLookupResult_Lines(t *testing.T) {
	result := &LookupResult{Mode: ModeFollowers, Followers: 5, JoinedDate: "1/2/2003"}
	lines := result.Lines()

	if len(lines) != 2 {
		t.Fatalf("Lines() returned %d lines, want 2", len(lines))
	}
	if lines[0].Label != "Followers" || lines[0].Value != "5" {
		t.Errorf("first line = %+v", lines[0])
	}
	if lines[1].Label != "Joined on" || lines[1].Value != "1/2/2003" {
		t.Errorf("second line = %+v", lines[1])
	}
}
