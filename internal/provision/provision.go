// Package provision implements the core key provisioning operation: ensure
// the SSH directory exists, generate a key pair via the external ssh-keygen
// command, and record the public key in authorized_keys.
//
// All cryptographic work is delegated to ssh-keygen; this package only sets
// up paths, invokes the generator, and moves bytes between files. The
// subprocess boundary is the Runner interface, which tests replace with a
// fake.
package provision

import (
	"path/filepath"

	"github.com/keyup-sh/keyup/internal/logger"
)

// Options configures a single provisioning run.
type Options struct {
	Name      string // key name; already resolved, non-empty
	KeyType   string // rsa, ed25519, ecdsa
	Bits      int    // RSA key length
	Comment   string // key comment; defaults to Name
	Authorize bool   // append the public key to authorized_keys
}

// Result describes what a provisioning run produced.
type Result struct {
	Name               string
	SSHDir             string
	PrivateKeyPath     string
	PublicKeyPath      string
	AuthorizedKeysPath string
	PrivateKey         []byte // full private key material, printed by the caller
	PublicKey          []byte // public key line as written by ssh-keygen
	Authorized         bool   // whether authorized_keys was updated
}

// Provisioner runs the provisioning sequence against one SSH directory.
type Provisioner struct {
	SSHDir string // may contain a leading tilde; expanded on first use
	Runner Runner
	Log    logger.Logger
}

// New creates a Provisioner for the given SSH directory.
func New(sshDir string) *Provisioner {
	return &Provisioner{
		SSHDir: sshDir,
		Runner: NewRunner(),
		Log:    logger.NewEnvLogger("[provision]"),
	}
}

// Provision runs the full sequence for one key: ensure directory, generate
// pair, append to authorized_keys, read back the private key. Every failure
// is fatal for the run; nothing is retried or rolled back. Re-running with
// an existing name overwrites the key files (ssh-keygen's behavior) and
// appends a second authorized_keys entry.
func (p *Provisioner) Provision(opts Options) (*Result, error) {
	sshDir, err := EnsureSSHDir(p.SSHDir)
	if err != nil {
		return nil, err
	}
	p.Log.Debug("ssh dir ready: %s", sshDir)

	privatePath, publicPath := KeyPaths(sshDir, opts.Name)

	if err := Generate(p.Runner, privatePath, GenerateOptions{
		KeyType: opts.KeyType,
		Bits:    opts.Bits,
		Comment: opts.Comment,
	}); err != nil {
		return nil, err
	}
	p.Log.Debug("generated key pair at %s", privatePath)

	result := &Result{
		Name:           opts.Name,
		SSHDir:         sshDir,
		PrivateKeyPath: privatePath,
		PublicKeyPath:  publicPath,
	}

	pubKey, err := ReadPublicKey(publicPath)
	if err != nil {
		return nil, err
	}
	result.PublicKey = pubKey

	if opts.Authorize {
		authPath := filepath.Join(sshDir, AuthorizedKeysFile)
		if err := AppendAuthorizedKey(authPath, pubKey); err != nil {
			return nil, err
		}
		result.AuthorizedKeysPath = authPath
		result.Authorized = true
		p.Log.Debug("appended public key to %s", authPath)
	}

	privKey, err := ReadPrivateKey(privatePath)
	if err != nil {
		return nil, err
	}
	result.PrivateKey = privKey

	return result, nil
}
