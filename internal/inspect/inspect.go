// Package inspect discovers key pairs in an SSH directory and reports what
// the public halves say about them: algorithm, fingerprint, comment, and
// whether they appear in authorized_keys.
package inspect

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/keyup-sh/keyup/internal/config"
	"github.com/keyup-sh/keyup/internal/errors"
	"golang.org/x/crypto/ssh"
)

// Key describes one discovered key pair.
type Key struct {
	Name        string `json:"name"`        // filename stem (e.g., "github-actions")
	PrivatePath string `json:"private_path"` // path to the private key file
	PublicPath  string `json:"public_path"` // path to the .pub file
	Type        string `json:"type"`        // algorithm from the public key, "unknown" if unparsable
	Fingerprint string `json:"fingerprint"` // SHA256 fingerprint, empty if unparsable
	Comment     string `json:"comment"`     // comment from the public key line
	Authorized  bool   `json:"authorized"`  // whether the key appears in authorized_keys
}

// Files in an SSH directory that are never key material.
var nonKeyNames = map[string]bool{
	"config":          true,
	"known_hosts":     true,
	"known_hosts.old": true,
	"authorized_keys": true,
	"environment":     true,
}

// Scan discovers key pairs in sshDir: every .pub file with a private key
// sibling. A missing directory yields an empty result, not an error.
func Scan(sshDir string) ([]Key, error) {
	dir, err := config.ExpandTilde(sshDir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrFS,
			"Failed to read SSH directory: "+dir,
			"Check directory permissions")
	}

	authorized := authorizedKeySet(filepath.Join(dir, "authorized_keys"))

	var keys []Key
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pub") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".pub")
		if name == "" || nonKeyNames[name] {
			continue
		}

		privatePath := filepath.Join(dir, name)
		if _, err := os.Stat(privatePath); err != nil {
			// orphaned .pub file, not a pair
			continue
		}

		key := Key{
			Name:        name,
			PrivatePath: privatePath,
			PublicPath:  filepath.Join(dir, entry.Name()),
			Type:        "unknown",
		}

		data, err := os.ReadFile(key.PublicPath)
		if err == nil {
			if pk, comment, _, _, perr := ssh.ParseAuthorizedKey(data); perr == nil {
				key.Type = pk.Type()
				key.Fingerprint = ssh.FingerprintSHA256(pk)
				key.Comment = comment
				key.Authorized = authorized[string(pk.Marshal())]
			}
		}

		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].Name < keys[j].Name })
	return keys, nil
}

// Find returns the named key pair from sshDir, or an error if it isn't there.
func Find(sshDir, name string) (*Key, error) {
	keys, err := Scan(sshDir)
	if err != nil {
		return nil, err
	}

	for i := range keys {
		if keys[i].Name == name {
			return &keys[i], nil
		}
	}

	return nil, errors.New(errors.ErrFS,
		"No key named '"+name+"' in "+sshDir,
		"Run 'keyup list' to see available keys, or 'keyup provision "+name+"' to create it")
}

// authorizedKeySet parses authorized_keys into a set of wire-format public
// keys. Unparsable lines are skipped; a missing file yields an empty set.
func authorizedKeySet(path string) map[string]bool {
	set := make(map[string]bool)

	f, err := os.Open(path)
	if err != nil {
		return set
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if pk, _, _, _, err := ssh.ParseAuthorizedKey([]byte(line)); err == nil {
			set[string(pk.Marshal())] = true
		}
	}

	return set
}
