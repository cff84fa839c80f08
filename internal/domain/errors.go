package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Operator-facing notice texts.
const (
	NoticeInvalidUsername   = "❌ Please enter a valid GitHub username or profile URL!"
	NoticeInvalidRepoURL    = "❌ Please enter a valid GitHub repository URL!"
	NoticeFetchFailed       = "❌ Please enter correct details."
	NoticeUnknownUsername   = "❌ Invalid username. Please try again."
	NoticeUnknownRepository = "❌ Invalid repository URL."
	NoticeRepoNotFound      = "❌ Repository not found."
)

// ValidationError reports input that does not have the shape the mode expects.
type ValidationError struct {
	Mode  Mode
	Input string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input for mode %s: %q", e.Mode, e.Input)
}

// HTTPError reports a non-success response status.
type HTTPError struct {
	StatusCode int
	URL        string
	Err        error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("failed to fetch GitHub API: %s returned status %d", e.URL, e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a response that lacks the fields the mode reads.
type MissingFieldError struct {
	Mode   Mode
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("response for mode %s is missing %s", e.Mode, strings.Join(e.Fields, ", "))
}

// FetchError covers transport, decoding and parsing failures of a lookup.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Notice maps a lookup error to the message shown to the operator.
func Notice(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		if validationErr.Mode.TargetsRepository() {
			return NoticeInvalidRepoURL
		}
		return NoticeInvalidUsername
	}

	var missingErr *MissingFieldError
	if errors.As(err, &missingErr) {
		switch missingErr.Mode {
		case ModeFollowers:
			return NoticeUnknownUsername
		case ModeRepoDate:
			return NoticeUnknownRepository
		case ModeRepoStats:
			return NoticeRepoNotFound
		}
	}

	return NoticeFetchFailed
}
