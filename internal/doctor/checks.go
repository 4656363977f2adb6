// Package doctor runs diagnostic checks for the local key setup: the
// external generator, the SSH directory, authorized_keys, and the SSH
// client config.
package doctor

// CheckStatus represents the result status of a check.
type CheckStatus int

const (
	StatusPass CheckStatus = iota
	StatusWarn
	StatusFail
)

// String returns a human-readable status string.
func (s CheckStatus) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the status as its string form.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// CheckResult contains the outcome of running a check.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// Check defines the interface for diagnostic checks.
type Check interface {
	// Name returns the check's identifier.
	Name() string

	// Category returns the check's category (e.g., "DEPENDENCIES", "FILES").
	Category() string

	// Run executes the check and returns the result.
	Run() CheckResult
}

// RunAll executes all checks sequentially and returns the results in order.
func RunAll(checks []Check) []CheckResult {
	results := make([]CheckResult, len(checks))
	for i, check := range checks {
		results[i] = check.Run()
	}
	return results
}

// CountByStatus tallies results per status.
func CountByStatus(results []CheckResult) (pass, warn, fail int) {
	for _, r := range results {
		switch r.Status {
		case StatusPass:
			pass++
		case StatusWarn:
			warn++
		case StatusFail:
			fail++
		}
	}
	return pass, warn, fail
}

// NewAllChecks creates the full diagnostic suite for an SSH directory.
func NewAllChecks(sshDir string) []Check {
	return []Check{
		&SSHKeygenCheck{},
		&SSHDirCheck{Dir: sshDir},
		&AuthorizedKeysCheck{Dir: sshDir},
		&IdentityFilesCheck{Dir: sshDir},
	}
}
