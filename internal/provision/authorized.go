package provision

import (
	"bytes"
	"os"

	"github.com/keyup-sh/keyup/internal/errors"
)

// ReadPublicKey reads the full contents of a public key file.
func ReadPublicKey(pubPath string) ([]byte, error) {
	data, err := os.ReadFile(pubPath)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFS,
			"Failed to read public key: "+pubPath,
			"Check that the file exists and is readable")
	}
	return data, nil
}

// ReadPrivateKey reads the full contents of a private key file.
func ReadPrivateKey(keyPath string) ([]byte, error) {
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFS,
			"Failed to read private key: "+keyPath,
			"Check that the file exists and is readable")
	}
	return data, nil
}

// AppendAuthorizedKey appends one public key line to the authorized_keys file
// at path, creating the file with owner-only permissions if absent. Existing
// entries are never touched: the file is opened in append mode and the entry
// goes out in a single write so concurrent appends can interleave lines but
// not corrupt them.
func AppendAuthorizedKey(path string, pubKey []byte) (err error) {
	// Exactly one trailing newline per entry, regardless of how the
	// generator terminated the .pub file.
	line := append(bytes.TrimRight(pubKey, "\n"), '\n')

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrFS,
			"Failed to open authorized_keys: "+path,
			"Check permissions on the SSH directory")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WrapWithCode(cerr, errors.ErrFS,
				"Failed to close authorized_keys: "+path,
				"")
		}
	}()

	if _, err := f.Write(line); err != nil {
		return errors.WrapWithCode(err, errors.ErrFS,
			"Failed to append to authorized_keys: "+path,
			"Check disk space and file permissions")
	}

	return nil
}
