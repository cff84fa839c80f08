package domain

import (
	"fmt"
	"strings"
	"time"
)

// Record is the structured body of an account or repository resource.
// Pointer fields stay nil when the key is absent from the response, which
// keeps "missing" apart from "zero".
type Record struct {
	Followers       *int    `json:"followers,omitempty"`
	CreatedAt       *string `json:"created_at,omitempty"`
	Forks           *int    `json:"forks,omitempty"`
	StargazersCount *int    `json:"stargazers_count,omitempty"`
}

// LookupResult is the mode-tagged projection rendered for the operator.
type LookupResult struct {
	Mode        Mode
	Followers   int
	JoinedDate  string
	CreatedDate string
	Forks       int
	Stars       int
}

// Line is one labelled value of a rendered result.
type Line struct {
	Label string
	Value string
}

// Interpret checks that rec carries the fields mode reads and projects them.
// Dates are formatted in loc.
func Interpret(mode Mode, rec *Record, loc *time.Location) (*LookupResult, error) {
	if rec == nil {
		rec = &Record{}
	}

	switch mode {
	case ModeFollowers:
		// Both fields must be truthy: zero followers or an empty date is rejected.
		var missing []string
		if rec.Followers == nil || *rec.Followers == 0 {
			missing = append(missing, "followers")
		}
		if rec.CreatedAt == nil || *rec.CreatedAt == "" {
			missing = append(missing, "created_at")
		}
		if len(missing) > 0 {
			return nil, &MissingFieldError{Mode: mode, Fields: missing}
		}
		joined, err := FormatDate(*rec.CreatedAt, loc)
		if err != nil {
			return nil, &FetchError{Op: "parse created_at", Err: err}
		}
		return &LookupResult{Mode: mode, Followers: *rec.Followers, JoinedDate: joined}, nil

	case ModeRepoDate:
		if rec.CreatedAt == nil || *rec.CreatedAt == "" {
			return nil, &MissingFieldError{Mode: mode, Fields: []string{"created_at"}}
		}
		created, err := FormatDate(*rec.CreatedAt, loc)
		if err != nil {
			return nil, &FetchError{Op: "parse created_at", Err: err}
		}
		return &LookupResult{Mode: mode, CreatedDate: created}, nil

	case ModeRepoStats:
		// Presence only; zero forks or stars is a valid answer.
		var missing []string
		if rec.Forks == nil {
			missing = append(missing, "forks")
		}
		if rec.StargazersCount == nil {
			missing = append(missing, "stargazers_count")
		}
		if len(missing) > 0 {
			return nil, &MissingFieldError{Mode: mode, Fields: missing}
		}
		return &LookupResult{Mode: mode, Forks: *rec.Forks, Stars: *rec.StargazersCount}, nil
	}

	return nil, fmt.Errorf("unknown mode %q", mode)
}

// Lines returns the labelled values of the result in display order.
func (r *LookupResult) Lines() []Line {
	switch r.Mode {
	case ModeFollowers:
		return []Line{
			{Label: "Followers", Value: fmt.Sprintf("%d", r.Followers)},
			{Label: "Joined on", Value: r.JoinedDate},
		}
	case ModeRepoDate:
		return []Line{
			{Label: "Created on", Value: r.CreatedDate},
		}
	case ModeRepoStats:
		return []Line{
			{Label: "Forks", Value: fmt.Sprintf("%d", r.Forks)},
			{Label: "Stars", Value: fmt.Sprintf("%d", r.Stars)},
		}
	}
	return nil
}

// Text renders the result as plain "Label: value" lines.
func (r *LookupResult) Text() string {
	lines := r.Lines()
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Label+": "+l.Value)
	}
	return strings.Join(out, "\n")
}
