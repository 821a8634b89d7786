// Package passcode generates and verifies dealer passcodes. The stored form
// is hex(salt)$hex(key) with an scrypt-derived key, matching the
// salt+derived-key layout of the passcodeHash column.
package passcode

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	saltLen = 16
	keyLen  = 32

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

var errMalformedHash = errors.New("passcode: malformed hash")

// Generate returns a random 6-digit passcode, zero-padded.
func Generate() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		panic(err)
	}
	digits := n.String()
	return strings.Repeat("0", 6-len(digits)) + digits
}

// Hash derives a salted hash for storage.
func Hash(code string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key, err := scrypt.Key([]byte(code), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(key), nil
}

// Verify reports whether code produced hash. Malformed hashes verify false
// without error detail; old rows may hold junk in the hash column.
func Verify(code, hash string) bool {
	salt, want, err := splitHash(hash)
	if err != nil {
		return false
	}
	key, err := scrypt.Key([]byte(code), salt, scryptN, scryptR, scryptP, len(want))
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(key, want) == 1
}

func splitHash(hash string) (salt, key []byte, err error) {
	parts := strings.SplitN(hash, "$", 2)
	if len(parts) != 2 {
		return nil, nil, errMalformedHash
	}
	if salt, err = hex.DecodeString(parts[0]); err != nil {
		return nil, nil, errMalformedHash
	}
	if key, err = hex.DecodeString(parts[1]); err != nil || len(key) == 0 {
		return nil, nil, errMalformedHash
	}
	return salt, key, nil
}
