package cookiekit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// SignedJar is a view over a Jar that authenticates cookie values. Values
// written through it carry an HMAC-SHA256 tag; values read through it must
// verify against the key's signing subkey. Tampered and missing cookies are
// indistinguishable: both read as absent, so a client cannot use the jar as
// an oracle to probe key correctness.
//
// The cookie's value is authenticated but stays readable; use PrivateJar
// when the value itself must be hidden.
type SignedJar struct {
	parent *Jar
	key    Key
}

// Signed returns a view of the jar that signs on write and verifies on read
// using key's signing subkey.
func (j *Jar) Signed(key Key) *SignedJar {
	return &SignedJar{parent: j, key: key}
}

// Add signs the cookie's value and stores the cookie in the parent jar. The
// stored value is `<base64 mac> <original value>`.
func (sj *SignedJar) Add(c Cookie) {
	c.SetValue(sj.sign(c.Value()))
	sj.parent.Add(c)
}

// Get fetches the named cookie from the parent jar and verifies its value,
// returning the cookie with the original value restored. A missing cookie, a
// malformed stored value and a failed verification all read as absent.
func (sj *SignedJar) Get(name string) (Cookie, bool) {
	c, ok := sj.parent.Get(name)
	if !ok {
		return Cookie{}, false
	}
	value, ok := sj.Verify(c.Value())
	if !ok {
		return Cookie{}, false
	}
	c.SetValue(value)
	return c, true
}

// Verify checks a raw signed value, such as one sourced outside the jar
// flow, and returns the authenticated payload.
func (sj *SignedJar) Verify(raw string) (string, bool) {
	i := strings.IndexByte(raw, ' ')
	if i < 0 {
		return "", false
	}
	tag, err := base64.URLEncoding.DecodeString(raw[:i])
	if err != nil {
		return "", false
	}
	value := raw[i+1:]

	mac := hmac.New(sha256.New, sj.key.signing)
	mac.Write([]byte(value))
	if !hmac.Equal(mac.Sum(nil), tag) {
		return "", false
	}
	return value, true
}

// Remove removes the cookie from the parent jar. See Jar.Remove.
func (sj *SignedJar) Remove(c Cookie) {
	sj.parent.Remove(c)
}

func (sj *SignedJar) sign(value string) string {
	mac := hmac.New(sha256.New, sj.key.signing)
	mac.Write([]byte(value))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil)) + " " + value
}
