package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevinburke/ssh_config"
	"github.com/keyup-sh/keyup/internal/config"
	"github.com/keyup-sh/keyup/internal/util"
)

// IdentityFilesCheck parses the SSH client config and flags IdentityFile
// entries that point at keys which don't exist.
type IdentityFilesCheck struct {
	Dir string // SSH directory containing the config file, may contain a tilde
}

func (c *IdentityFilesCheck) Name() string     { return "identity_files" }
func (c *IdentityFilesCheck) Category() string { return "SSH CONFIG" }

func (c *IdentityFilesCheck) Run() CheckResult {
	dir, err := config.ExpandTilde(c.Dir)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Cannot resolve SSH directory path",
			Suggestion: "Set the HOME environment variable",
		}
	}

	configPath := filepath.Join(dir, "config")
	f, err := os.Open(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return CheckResult{
				Name:    c.Name(),
				Status:  StatusPass,
				Message: "No SSH client config to check",
			}
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Cannot read " + configPath,
			Suggestion: "Check file permissions",
		}
	}
	defer f.Close()

	cfg, err := ssh_config.Decode(f)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Could not parse " + configPath,
			Suggestion: "Check the config syntax: " + err.Error(),
		}
	}

	missing := missingIdentityFiles(cfg)
	if len(missing) > 0 {
		return CheckResult{
			Name:   c.Name(),
			Status: StatusWarn,
			Message: fmt.Sprintf("%d IdentityFile %s at missing keys: %s",
				len(missing),
				util.Pluralize(len(missing), "entry points", "entries point"),
				util.JoinOrNone(missing)),
			Suggestion: "Generate the missing keys with 'keyup provision <name>' or fix the config",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "All IdentityFile entries resolve",
	}
}

// missingIdentityFiles returns the IdentityFile values that don't exist on disk.
func missingIdentityFiles(cfg *ssh_config.Config) []string {
	var missing []string
	seen := make(map[string]bool)

	for _, host := range cfg.Hosts {
		for _, node := range host.Nodes {
			kv, ok := node.(*ssh_config.KV)
			if !ok || !strings.EqualFold(kv.Key, "IdentityFile") {
				continue
			}

			value := strings.Trim(kv.Value, `"`)
			if value == "" || seen[value] {
				continue
			}
			seen[value] = true

			path, err := config.ExpandTilde(value)
			if err != nil {
				continue
			}
			if _, err := os.Stat(path); os.IsNotExist(err) {
				missing = append(missing, value)
			}
		}
	}

	return missing
}
