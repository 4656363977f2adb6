package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/keyup-sh/keyup/internal/config"
)

// SSHDirCheck verifies the SSH directory exists with owner-only permissions.
type SSHDirCheck struct {
	Dir string // may contain a leading tilde
}

func (c *SSHDirCheck) Name() string     { return "ssh_dir" }
func (c *SSHDirCheck) Category() string { return "FILES" }

func (c *SSHDirCheck) Run() CheckResult {
	dir, err := config.ExpandTilde(c.Dir)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Cannot resolve SSH directory path",
			Suggestion: "Set the HOME environment variable",
		}
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return CheckResult{
				Name:       c.Name(),
				Status:     StatusWarn,
				Message:    dir + " does not exist",
				Suggestion: "It will be created on the first 'keyup provision' run",
			}
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Cannot access " + dir,
			Suggestion: "Check permissions on the home directory",
		}
	}

	if !info.IsDir() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    dir + " exists but is not a directory",
			Suggestion: "Move the file out of the way",
		}
	}

	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%s has permissions %04o (group/other access)", dir, perm),
			Suggestion: "Tighten with: chmod 700 " + dir,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: dir + " exists with owner-only permissions",
	}
}

// AuthorizedKeysCheck verifies authorized_keys permissions when the file exists.
type AuthorizedKeysCheck struct {
	Dir string // SSH directory, may contain a leading tilde
}

func (c *AuthorizedKeysCheck) Name() string     { return "authorized_keys" }
func (c *AuthorizedKeysCheck) Category() string { return "FILES" }

func (c *AuthorizedKeysCheck) Run() CheckResult {
	dir, err := config.ExpandTilde(c.Dir)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Cannot resolve SSH directory path",
			Suggestion: "Set the HOME environment variable",
		}
	}

	path := filepath.Join(dir, "authorized_keys")
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return CheckResult{
				Name:       c.Name(),
				Status:     StatusPass,
				Message:    path + " does not exist yet",
			}
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Cannot access " + path,
			Suggestion: "Check permissions on " + dir,
		}
	}

	// sshd refuses authorized_keys writable by group or other
	if perm := info.Mode().Perm(); perm&0o022 != 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%s has permissions %04o (writable by group/other)", path, perm),
			Suggestion: "Tighten with: chmod 600 " + path,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: path + " permissions look good",
	}
}
