package doctor

import (
	"os/exec"
	"regexp"
	"strings"
)

// SSHKeygenCheck verifies the external key generator is on PATH.
type SSHKeygenCheck struct{}

func (c *SSHKeygenCheck) Name() string     { return "ssh_keygen" }
func (c *SSHKeygenCheck) Category() string { return "DEPENDENCIES" }

func (c *SSHKeygenCheck) Run() CheckResult {
	path, err := exec.LookPath("ssh-keygen")
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "ssh-keygen not found",
			Suggestion: "Install OpenSSH: brew install openssh (macOS) or apt install openssh-client (Linux)",
		}
	}

	// ssh-keygen has no version flag; ssh -V reports the OpenSSH release
	version := "unknown"
	if out, err := exec.Command("ssh", "-V").CombinedOutput(); err == nil {
		version = parseOpenSSHVersion(string(out))
	}

	if version == "unknown" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "ssh-keygen found at " + path,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "ssh-keygen found at " + path + " (OpenSSH " + version + ")",
	}
}

// parseOpenSSHVersion extracts the release from "OpenSSH_9.6p1 ..." output.
func parseOpenSSHVersion(output string) string {
	re := regexp.MustCompile(`OpenSSH_([\w.]+)`)
	matches := re.FindStringSubmatch(strings.Split(output, "\n")[0])
	if len(matches) >= 2 {
		return matches[1]
	}
	return "unknown"
}
