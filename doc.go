// Package cookiekit parses and serializes HTTP cookies and manages them in
// delta-tracking jars, with optional tamper protection through signing or
// authenticated encryption.
//
// # Overview
//
// The Cookie type models a single cookie and its Set-Cookie attributes. The
// parser is lenient in the way user agents are: an unrecognized or malformed
// attribute is dropped, never failing the parse, and only a missing name is
// fatal. The serializer emits attributes in a fixed canonical order so
// output is stable and testable.
//
// The Jar type keeps the baseline cookies that arrived with a request apart
// from the delta of pending additions and removals. Reading the jar merges
// both; Delta returns exactly the Set-Cookie headers a response must carry.
//
// SignedJar and PrivateJar wrap a Jar and a Key to transform values in
// place: SignedJar authenticates values with HMAC-SHA256, PrivateJar
// encrypts them with AES-256-GCM, binding each ciphertext to its cookie
// name. PrefixedJar enforces the `__Host-` and `__Secure-` name prefix
// conventions.
//
// # Usage
//
//	jar := cookiekit.FromHeader(r.Header.Get("Cookie"))
//
//	jar.Add(cookiekit.New("theme", "dark", cookiekit.WithPath("/")))
//	jar.Remove(cookiekit.Named("legacy"))
//
//	for _, c := range jar.Delta() {
//		w.Header().Add("Set-Cookie", c.String())
//	}
//
// Secure jars share one immutable Key:
//
//	key, err := cookiekit.NewKey(material) // 64+ random bytes
//	if err != nil {
//		// handle error
//	}
//
//	private := jar.Private(key)
//	if err := private.Add(cookiekit.New("session", token)); err != nil {
//		// handle error
//	}
//	session, ok := private.Get("session")
//
// # Configuration
//
// Config reads defaults and the key secret from the environment via
// github.com/caarlos0/env:
//
//	cfg, err := cookiekit.LoadConfig()
//	key, err := cfg.Key()
//	opts, err := cfg.Options()
//	jar.Add(cookiekit.New("theme", "dark", opts...))
//
// # Error Handling
//
// Package-level sentinel errors such as ErrEmptyName and ErrKeyTooShort
// support errors.Is. Cryptographic failures are deliberately not errors:
// a tampered, malformed or missing secure cookie always reads as absent,
// so the jar cannot be used as a verification oracle.
//
// # Security Considerations
//
// Keys require at least 512 bits of material; DeriveKey stretches weaker
// secrets with HKDF-SHA256 and derives independent signing and encryption
// subkeys under distinct context strings. Every encryption draws a fresh
// random nonce. Key comparison runs in constant time.
//
// # Concurrency
//
// All operations are synchronous and perform no I/O. A Jar is not safe for
// concurrent mutation; use one jar per request. A Key is immutable and may
// be shared freely.
package cookiekit
