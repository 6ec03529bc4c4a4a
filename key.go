package cookiekit

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the minimum master key size: 512 bits.
	KeySize = 64
	// subKeySize fits HMAC-SHA256 and AES-256.
	subKeySize = 32
)

// Distinct HKDF context strings keep the signing and encryption subkeys
// independent: compromise of one operation class cannot be leveraged
// against the other.
const (
	masterContext     = "cookiekit-master-v1"
	signingContext    = "cookiekit-signing-v1"
	encryptionContext = "cookiekit-encryption-v1"
)

// Key holds the master key material for signed and private jars, with the
// signing and encryption subkeys derived from it. A Key is immutable once
// created; share one instance across every jar that uses it.
type Key struct {
	master     []byte
	signing    []byte
	encryption []byte
}

// NewKey creates a key from raw master key material. The material must be
// cryptographically random and at least KeySize bytes, otherwise
// ErrKeyTooShort is returned.
func NewKey(material []byte) (Key, error) {
	if len(material) < KeySize {
		return Key{}, ErrKeyTooShort
	}
	master := make([]byte, len(material))
	copy(master, material)
	return keyFromMaster(master), nil
}

// DeriveKey stretches a secret of any length into a full master key via
// HKDF-SHA256. It never fails and is deterministic: the same secret always
// yields the same key. Prefer NewKey with random material when available.
func DeriveKey(secret []byte) Key {
	return keyFromMaster(expand(secret, masterContext, KeySize))
}

// GenerateKey creates a new key from cryptographically secure random
// material.
func GenerateKey() (Key, error) {
	master := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, master); err != nil {
		return Key{}, err
	}
	return keyFromMaster(master), nil
}

func keyFromMaster(master []byte) Key {
	return Key{
		master:     master,
		signing:    expand(master, signingContext, subKeySize),
		encryption: expand(master, encryptionContext, subKeySize),
	}
}

func expand(secret []byte, context string, size int) []byte {
	out := make([]byte, size)
	r := hkdf.New(sha256.New, secret, nil, []byte(context))
	if _, err := io.ReadFull(r, out); err != nil {
		// HKDF-SHA256 supports outputs up to 8160 bytes; 32 and 64 byte
		// reads cannot fail.
		panic("cookiekit: hkdf expansion failed: " + err.Error())
	}
	return out
}

// Equal reports whether both keys hold the same master material. The
// comparison runs in constant time.
func (k Key) Equal(other Key) bool {
	return subtle.ConstantTimeCompare(k.master, other.master) == 1
}
