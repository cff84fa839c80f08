package domain

import (
	"fmt"
)

// Mode selects which fact a lookup reports.
type Mode string

const (
	// ModeFollowers reports follower count and join date of an account.
	ModeFollowers Mode = "followers"
	// ModeRepoDate reports the creation date of a repository.
	ModeRepoDate Mode = "repoDate"
	// ModeRepoStats reports fork and star counts of a repository.
	ModeRepoStats Mode = "repoStats"
)

// Modes lists every mode in selector order.
var Modes = []Mode{ModeFollowers, ModeRepoDate, ModeRepoStats}

const (
	placeholderAccount    = "Enter GitHub Username or Profile URL"
	placeholderRepository = "Enter GitHub Repo URL"
)

// ParseMode converts a selector value into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid mode: %q (expected followers, repoDate or repoStats)", s)
}

// String returns the selector value of the mode.
func (m Mode) String() string {
	return string(m)
}

// Label returns the human-readable selector label.
func (m Mode) Label() string {
	switch m {
	case ModeFollowers:
		return "Followers & Join Date"
	case ModeRepoDate:
		return "Repository Creation Date"
	case ModeRepoStats:
		return "Repository Forks & Stars"
	default:
		return string(m)
	}
}

// Placeholder returns the input hint shown while the mode is active.
func (m Mode) Placeholder() string {
	if m.TargetsRepository() {
		return placeholderRepository
	}
	return placeholderAccount
}

// TargetsRepository reports whether the mode reads the repository resource.
func (m Mode) TargetsRepository() bool {
	return m == ModeRepoDate || m == ModeRepoStats
}

// IsValid reports whether m is one of the known modes.
func (m Mode) IsValid() bool {
	_, err := ParseMode(string(m))
	return err == nil
}
