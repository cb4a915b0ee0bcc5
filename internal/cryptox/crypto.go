// Package cryptox holds the credential and token primitives used by the
// session layer: salted argon2id password hashes and signed session tokens.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cebip/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16

	// bounds accepted from stored hashes
	minArgonMemory = 8 * 1024
	maxArgonMemory = 1 << 20
	maxArgonTime   = 16
	maxKeyLen      = 128

	hashPrefix = "$argon2id$"
)

var b64 = base64.RawStdEncoding

// DeriveMasterKey stretches password with salt using argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// HashPassword returns an encoded argon2id hash of password with a fresh
// random salt:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
func HashPassword(password []byte) string {
	salt := common.GenerateRandByteArray(saltLen)
	key := DeriveMasterKey(password, salt)
	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		hashPrefix, argon2.Version, argonMemory, argonTime, argonThreads,
		b64.EncodeToString(salt), b64.EncodeToString(key))
}

// IsHashed reports whether stored looks like a value produced by HashPassword.
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, hashPrefix)
}

// VerifyPassword checks candidate against a stored credential. Hashed
// credentials are re-derived with their own parameters; anything else is
// treated as a legacy plaintext credential and compared in constant time.
func VerifyPassword(stored string, candidate []byte) bool {
	if !IsHashed(stored) {
		return subtle.ConstantTimeCompare([]byte(stored), candidate) == 1
	}

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(stored, "$")
	if len(parts) != 6 {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false
	}
	if memory < minArgonMemory || memory > maxArgonMemory ||
		iterations < 1 || iterations > maxArgonTime || threads < 1 {
		return false
	}

	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return false
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > maxKeyLen {
		return false
	}

	candidateKey := argon2.IDKey(candidate, salt, iterations, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, candidateKey) == 1
}
