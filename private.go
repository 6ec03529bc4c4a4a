package cookiekit

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"
)

// PrivateJar is a view over a Jar that encrypts cookie values with
// AES-256-GCM. Values written through it are confidential and tamper-proof;
// values read through it must decrypt and authenticate under the key's
// encryption subkey.
//
// The cookie's name is bound to the ciphertext as associated data, so a
// ciphertext lifted from one cookie cannot be replayed under another name.
// As with SignedJar, every failure mode reads as absent.
type PrivateJar struct {
	parent *Jar
	key    Key
}

// Private returns a view of the jar that encrypts on write and decrypts on
// read using key's encryption subkey.
func (j *Jar) Private(key Key) *PrivateJar {
	return &PrivateJar{parent: j, key: key}
}

// Add encrypts the cookie's value and stores the cookie in the parent jar.
// The stored value is base64(nonce || ciphertext || tag). Each call draws a
// fresh random nonce; nonces must never repeat under the same key.
func (pj *PrivateJar) Add(c Cookie) error {
	sealed, err := pj.seal(c.Name(), c.Value())
	if err != nil {
		return err
	}
	c.SetValue(sealed)
	pj.parent.Add(c)
	return nil
}

// Get fetches the named cookie from the parent jar and decrypts its value,
// returning the cookie with the plaintext restored. A missing cookie, bad
// encoding, a truncated value and an authentication failure all read as
// absent.
func (pj *PrivateJar) Get(name string) (Cookie, bool) {
	c, ok := pj.parent.Get(name)
	if !ok {
		return Cookie{}, false
	}
	value, ok := pj.Decrypt(name, c.Value())
	if !ok {
		return Cookie{}, false
	}
	c.SetValue(value)
	return c, true
}

// Decrypt decrypts and authenticates a raw sealed value against the given
// cookie name. It is exposed for validating ciphertext sourced outside the
// jar flow.
func (pj *PrivateJar) Decrypt(name, raw string) (string, bool) {
	sealed, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return "", false
	}

	gcm, err := pj.aead()
	if err != nil {
		return "", false
	}
	if len(sealed) <= gcm.NonceSize() {
		return "", false
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, []byte(name))
	if err != nil {
		return "", false
	}
	return string(plaintext), true
}

// Remove removes the cookie from the parent jar. See Jar.Remove.
func (pj *PrivateJar) Remove(c Cookie) {
	pj.parent.Remove(c)
}

func (pj *PrivateJar) seal(name, value string) (string, error) {
	gcm, err := pj.aead()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	// Prepend the nonce so the value is self-contained for decryption.
	sealed := gcm.Seal(nonce, nonce, []byte(value), []byte(name))
	return base64.URLEncoding.EncodeToString(sealed), nil
}

func (pj *PrivateJar) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(pj.key.encryption)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
