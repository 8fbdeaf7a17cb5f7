// Package sshsetup enables password logins over SSH on the pod and reports
// how to connect.
package sshsetup

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
)

// Letters and digits without the glyphs that are easy to confuse when read
// off a screen (0/O, 1/l/I).
const passwordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const minPasswordLength = 8

// GeneratePassword returns a random password of the given length.
func GeneratePassword(length int) (string, error) {
	if length < minPasswordLength {
		return "", fmt.Errorf("password length %d is below the minimum of %d", length, minPasswordLength)
	}
	limit := big.NewInt(int64(len(passwordAlphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		b[i] = passwordAlphabet[n.Int64()]
	}
	return string(b), nil
}

// WritePassword stores the password at path, readable by the owner only.
func WritePassword(path, password string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create password dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(password+"\n"), 0o600); err != nil {
		return fmt.Errorf("write password: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("chmod password: %w", err)
	}
	return nil
}

// ReadPassword returns the stored password. A missing file is reported with
// an error satisfying errors.Is(err, fs.ErrNotExist).
func ReadPassword(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
