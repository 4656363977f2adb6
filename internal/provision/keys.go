package provision

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/keyup-sh/keyup/internal/config"
	"github.com/keyup-sh/keyup/internal/errors"
)

// AuthorizedKeysFile is the SSH server-side file listing permitted public keys.
const AuthorizedKeysFile = "authorized_keys"

// validKeyTypes are the algorithms ssh-keygen is invoked with.
var validKeyTypes = map[string]bool{
	"rsa":     true,
	"ed25519": true,
	"ecdsa":   true,
}

// ResolveName returns the key name to use: the trimmed input, or def when the
// trimmed input is empty. The name is used verbatim as a filename stem; no
// character-set validation is applied beyond what the filesystem enforces.
func ResolveName(input, def string) string {
	name := strings.TrimSpace(input)
	if name == "" {
		if def != "" {
			return def
		}
		return config.DefaultKeyName
	}
	return name
}

// KeyPaths returns the private and public key paths for a key name in sshDir.
func KeyPaths(sshDir, name string) (privatePath, publicPath string) {
	privatePath = filepath.Join(sshDir, name)
	return privatePath, privatePath + ".pub"
}

// EnsureSSHDir creates the SSH directory (and parents) with owner-only
// permissions if it does not already exist. The returned path has any leading
// tilde expanded.
func EnsureSSHDir(dir string) (string, error) {
	expanded, err := config.ExpandTilde(dir)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(expanded, 0o700); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrFS,
			"Failed to create SSH directory: "+expanded,
			"Check permissions on the parent directory")
	}

	return expanded, nil
}

// GenerateOptions controls a single ssh-keygen invocation.
type GenerateOptions struct {
	KeyType string // rsa, ed25519, or ecdsa; empty means rsa
	Bits    int    // RSA key length; only passed for rsa keys
	Comment string // key comment; defaults to the key name
}

// Generate creates a new key pair at privatePath by invoking ssh-keygen
// through the given runner. Existing files at the same path are overwritten
// by ssh-keygen's own semantics; Generate does not pre-check.
func Generate(runner Runner, privatePath string, opts GenerateOptions) error {
	keyType := opts.KeyType
	if keyType == "" {
		keyType = config.DefaultKeyType
	}
	if !validKeyTypes[keyType] {
		return errors.New(errors.ErrKeygen,
			fmt.Sprintf("'%s' isn't a valid key type", keyType),
			"Pick from: rsa, ed25519, ecdsa")
	}

	comment := opts.Comment
	if comment == "" {
		comment = filepath.Base(privatePath)
	}

	args := []string{
		"-t", keyType,
		"-C", comment,
		"-f", privatePath,
		"-N", "", // no passphrase
	}

	if keyType == "rsa" {
		bits := opts.Bits
		if bits == 0 {
			bits = config.DefaultBits
		}
		args = append(args, "-b", fmt.Sprintf("%d", bits))
	}

	_, stderr, exitCode, err := runner.Run("ssh-keygen", args...)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrKeygen,
			"Failed to run ssh-keygen",
			"Ensure OpenSSH is installed and ssh-keygen is on your PATH")
	}
	if exitCode != 0 {
		return errors.New(errors.ErrKeygen,
			fmt.Sprintf("ssh-keygen exited with status %d: %s", exitCode, strings.TrimSpace(string(stderr))),
			"Check the key path is writable")
	}

	// Verify the key was actually created
	if _, err := os.Stat(privatePath); err != nil {
		return errors.New(errors.ErrKeygen,
			"Key generation completed but key file not found",
			"Check disk space and permissions")
	}

	return nil
}
