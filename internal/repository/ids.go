package repository

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidDealerID reports a dealer id that is not two letters followed by
// three digits.
var ErrInvalidDealerID = errors.New("repository: invalid dealer id")

var dealerIDPattern = regexp.MustCompile(`^[A-Za-z]{2}[0-9]{3}$`)

// CanonicalDealerID validates the dealer id format and upper-cases it.
func CanonicalDealerID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if !dealerIDPattern.MatchString(id) {
		return "", ErrInvalidDealerID
	}
	return strings.ToUpper(id), nil
}

// NewVehicleID mints a vehicle key like VEH-3FA9C2.
func NewVehicleID() string {
	return "VEH-" + strings.ToUpper(randomHex(3))
}

// NewLeadID mints a lead key like lead_9f1c04d2ab56.
func NewLeadID() string {
	return "lead_" + randomHex(6)
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err) // only fails when the OS entropy source is broken
	}
	return hex.EncodeToString(b)
}
