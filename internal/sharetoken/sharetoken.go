// Package sharetoken mints and validates the opaque tokens that grant
// read-only external access to a family member's dashboard.
package sharetoken

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	googleuuid "github.com/google/uuid"
)

// New generates a new share token. Tokens are UUIDv7 strings: time-ordered,
// unguessable past the timestamp prefix, and safe to use in URLs.
func New() string {
	var uuid [16]byte

	timestamp := uint64(time.Now().UnixMilli())
	binary.BigEndian.PutUint64(uuid[0:8], timestamp<<16)

	if _, err := rand.Read(uuid[6:]); err != nil {
		// Fallback to standard UUIDv4 if random generation fails
		return googleuuid.New().String()
	}

	// Version 7
	uuid[6] = (uuid[6] & 0x0f) | 0x70
	// Variant 10
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		binary.BigEndian.Uint32(uuid[0:4]),
		binary.BigEndian.Uint16(uuid[4:6]),
		binary.BigEndian.Uint16(uuid[6:8]),
		binary.BigEndian.Uint16(uuid[8:10]),
		uuid[10:16],
	)
}

// IsValid checks whether a string has the shape of a share token.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
