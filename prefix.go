package cookiekit

import "strings"

// Prefix identifies one of the RFC 6265bis cookie name prefixes. Cookies
// carrying a prefix are only accepted by user agents when they conform to
// the prefix's attribute requirements, which PrefixedJar enforces on write.
type Prefix int

const (
	// SecurePrefix is the `__Secure-` prefix: the cookie must be Secure.
	SecurePrefix Prefix = iota
	// HostPrefix is the `__Host-` prefix: the cookie must be Secure, have
	// Path=/ and carry no Domain.
	HostPrefix
)

// String returns the literal prefix text.
func (p Prefix) String() string {
	if p == HostPrefix {
		return "__Host-"
	}
	return "__Secure-"
}

// conform rewrites the cookie's attributes to satisfy the prefix. Caller
// supplied values that conflict are overridden, never rejected.
func (p Prefix) conform(c Cookie) Cookie {
	c.secure = true
	if p == HostPrefix {
		c.path = "/"
		c.domain = ""
	}
	return c
}

// PrefixedJar is a view over a Jar that transparently applies a cookie name
// prefix. Added cookies are stored under the prefixed name with conforming
// attributes forced; retrieved cookies come back with the prefix stripped.
type PrefixedJar struct {
	prefix Prefix
	parent *Jar
}

// Prefixed returns a view of the jar that stores and retrieves cookies under
// the given prefix.
func (j *Jar) Prefixed(p Prefix) *PrefixedJar {
	return &PrefixedJar{prefix: p, parent: j}
}

// Add stores the cookie under its prefixed name, forcing the attributes the
// prefix requires.
func (pj *PrefixedJar) Add(c Cookie) {
	c.name = pj.prefix.String() + c.name
	pj.parent.Add(pj.prefix.conform(c))
}

// Get looks up the prefixed name and returns a copy of the cookie with the
// prefix stripped from its name.
func (pj *PrefixedJar) Get(name string) (Cookie, bool) {
	c, ok := pj.parent.Get(pj.prefix.String() + name)
	if !ok {
		return Cookie{}, false
	}
	c.name = strings.TrimPrefix(c.name, pj.prefix.String())
	return c, true
}

// Remove removes the prefixed cookie from the parent jar, conforming the
// removal instruction so it matches the cookie that was stored.
func (pj *PrefixedJar) Remove(c Cookie) {
	c.name = pj.prefix.String() + c.name
	pj.parent.Remove(pj.prefix.conform(c))
}
