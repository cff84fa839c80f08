package domain

import (
	"regexp"
	"strings"
)

// GitHubPrefix is the web prefix stripped from profile and repository URLs.
const GitHubPrefix = "https://github.com/"

var (
	repoURLRegex    = regexp.MustCompile(`^https://github\.com/[\w-]+/[\w-]+$`)
	handleRegex     = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	profileURLRegex = regexp.MustCompile(`^https://github\.com/[a-zA-Z0-9-]+/?$`)
)

// IsValidRepoURL reports whether input is exactly https://github.com/<owner>/<repo>.
func IsValidRepoURL(input string) bool {
	return repoURLRegex.MatchString(input)
}

// IsValidUsername reports whether input is a bare handle or a profile URL.
// A repository URL never qualifies as a profile URL.
func IsValidUsername(input string) bool {
	if handleRegex.MatchString(input) {
		return true
	}
	return profileURLRegex.MatchString(input) && !IsValidRepoURL(input)
}

// ExtractUsername returns the account handle named by input.
func ExtractUsername(input string) string {
	if !strings.HasPrefix(input, GitHubPrefix) {
		return input
	}
	rest := strings.TrimPrefix(input, GitHubPrefix)
	if i := strings.Index(rest, "/"); i >= 0 {
		return rest[:i]
	}
	return rest
}

// ExtractRepoPath returns the owner/repo path named by a repository URL.
func ExtractRepoPath(input string) string {
	return strings.TrimSpace(strings.Replace(input, GitHubPrefix, "", 1))
}

// Target is the resolved identifier of one lookup: an account handle or an
// owner/repo path, depending on the mode.
type Target struct {
	Mode       Mode
	Identifier string
}

// Resolve validates raw input for mode and derives the lookup target.
// The input is trimmed before validation.
func Resolve(mode Mode, raw string) (Target, error) {
	input := strings.TrimSpace(raw)

	switch mode {
	case ModeFollowers:
		if !IsValidUsername(input) {
			return Target{}, &ValidationError{Mode: mode, Input: input}
		}
		return Target{Mode: mode, Identifier: ExtractUsername(input)}, nil
	case ModeRepoDate, ModeRepoStats:
		if !IsValidRepoURL(input) {
			return Target{}, &ValidationError{Mode: mode, Input: input}
		}
		return Target{Mode: mode, Identifier: ExtractRepoPath(input)}, nil
	default:
		return Target{}, &ValidationError{Mode: mode, Input: input}
	}
}

// ResourcePath returns the REST path, relative to the API root, of the
// resource the target reads.
func (t Target) ResourcePath() string {
	if t.Mode.TargetsRepository() {
		return "repos/" + t.Identifier
	}
	return "users/" + t.Identifier
}
