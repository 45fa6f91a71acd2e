// Package recordnum generates the human-readable identifiers stamped on
// cases, prescriptions and appointments at creation time. Numbers follow
// PREFIX-YYYYMMDD-XXXXXXXXXXXX where the suffix is 6 random bytes in hex.
// Uniqueness is ultimately backed by the database unique index; callers
// retry once on a collision.
package recordnum

import (
	"crypto/rand"
	"fmt"
	"time"
)

const (
	PrefixCase         = "CASE"
	PrefixPrescription = "RX"
	PrefixAppointment  = "APT"
)

// Generate builds a record number like CASE-20260901-3F2A9C1B44D0
func Generate(prefix string) string {
	dateStr := time.Now().UTC().Format("20060102")
	randomBytes := make([]byte, 6)
	rand.Read(randomBytes)
	return fmt.Sprintf("%s-%s-%012X", prefix, dateStr, randomBytes)
}
