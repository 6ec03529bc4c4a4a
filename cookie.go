package cookiekit

import (
	"strings"
	"time"
)

// SameSite controls the SameSite cookie attribute.
type SameSite int

const (
	// SameSiteUnset omits the SameSite attribute entirely.
	SameSiteUnset SameSite = iota
	// SameSiteStrict prevents the cookie from being sent on any cross-site request.
	SameSiteStrict
	// SameSiteLax sends the cookie on top-level cross-site navigations only.
	SameSiteLax
	// SameSiteNone sends the cookie on all requests.
	SameSiteNone
)

// String returns the attribute value as it appears in a Set-Cookie header.
// SameSiteUnset returns an empty string.
func (s SameSite) String() string {
	switch s {
	case SameSiteStrict:
		return "Strict"
	case SameSiteLax:
		return "Lax"
	case SameSiteNone:
		return "None"
	default:
		return ""
	}
}

// Expiration represents an Expires attribute: either a concrete instant or
// an explicit session expiration (expire when the user agent closes).
type Expiration struct {
	datetime time.Time
	session  bool
}

// ExpiresAt returns an Expiration set to the given instant.
func ExpiresAt(t time.Time) Expiration {
	return Expiration{datetime: t}
}

// SessionExpiration returns an Expiration that expires with the session.
func SessionExpiration() Expiration {
	return Expiration{session: true}
}

// IsSession reports whether the expiration is a session expiration.
func (e Expiration) IsSession() bool {
	return e.session
}

// Datetime returns the expiration instant. The second return value is false
// for session expirations.
func (e Expiration) Datetime() (time.Time, bool) {
	if e.session {
		return time.Time{}, false
	}
	return e.datetime, true
}

// Cookie represents a single HTTP cookie: a name/value pair plus the
// attributes sent in a Set-Cookie header.
//
// The zero value is not usable; construct cookies with New, Named, or one of
// the parse functions.
type Cookie struct {
	name        string
	value       string
	expires     *Expiration
	maxAge      *int64
	domain      string
	path        string
	secure      bool
	httpOnly    bool
	partitioned bool
	sameSite    SameSite
}

// New creates a cookie with the given name and value and applies the
// provided options.
func New(name, value string, opts ...Option) Cookie {
	c := Cookie{name: name, value: value}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Named creates a cookie with the given name and an empty value. It is the
// conventional way to build a removal target for Jar.Remove.
func Named(name string) Cookie {
	return Cookie{name: name}
}

// Name returns the cookie's name.
func (c Cookie) Name() string {
	return c.name
}

// Value returns the cookie's value exactly as stored. A value that arrived
// surrounded by double quotes keeps them; use ValueTrimmed to strip them.
func (c Cookie) Value() string {
	return c.value
}

// ValueTrimmed returns the cookie's value with a single pair of surrounding
// double quotes removed, if present.
func (c Cookie) ValueTrimmed() string {
	v := c.value
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}

// Expires returns the cookie's Expires attribute. The second return value is
// false when the attribute is not set.
func (c Cookie) Expires() (Expiration, bool) {
	if c.expires == nil {
		return Expiration{}, false
	}
	return *c.expires, true
}

// ExpiresDatetime returns the instant of the Expires attribute. The second
// return value is false when the attribute is unset or a session expiration.
func (c Cookie) ExpiresDatetime() (time.Time, bool) {
	if c.expires == nil {
		return time.Time{}, false
	}
	return c.expires.Datetime()
}

// MaxAge returns the Max-Age attribute in seconds. The second return value
// is false when the attribute is not set.
func (c Cookie) MaxAge() (int64, bool) {
	if c.maxAge == nil {
		return 0, false
	}
	return *c.maxAge, true
}

// Domain returns the Domain attribute with any single leading dot stripped.
// It returns an empty string when the attribute is not set.
func (c Cookie) Domain() string {
	if strings.HasPrefix(c.domain, ".") {
		return c.domain[1:]
	}
	return c.domain
}

// Path returns the Path attribute, or an empty string when not set.
func (c Cookie) Path() string {
	return c.path
}

// Secure reports whether the Secure attribute is set.
func (c Cookie) Secure() bool {
	return c.secure
}

// HTTPOnly reports whether the HttpOnly attribute is set.
func (c Cookie) HTTPOnly() bool {
	return c.httpOnly
}

// Partitioned reports whether the Partitioned attribute is set.
func (c Cookie) Partitioned() bool {
	return c.partitioned
}

// SameSite returns the SameSite attribute; SameSiteUnset when not set.
func (c Cookie) SameSite() SameSite {
	return c.sameSite
}

// SetName changes the cookie's name.
func (c *Cookie) SetName(name string) {
	c.name = name
}

// SetValue changes the cookie's value.
func (c *Cookie) SetValue(value string) {
	c.value = value
}

// SetExpires sets the Expires attribute to the given instant.
func (c *Cookie) SetExpires(t time.Time) {
	e := ExpiresAt(t)
	c.expires = &e
}

// SetExpiration sets the Expires attribute to the given expiration.
func (c *Cookie) SetExpiration(e Expiration) {
	c.expires = &e
}

// SetMaxAge sets the Max-Age attribute in seconds.
func (c *Cookie) SetMaxAge(seconds int64) {
	c.maxAge = &seconds
}

// SetDomain sets the Domain attribute. The text is stored verbatim so that
// serialization preserves it; Domain strips a leading dot on read.
func (c *Cookie) SetDomain(domain string) {
	c.domain = domain
}

// SetPath sets the Path attribute.
func (c *Cookie) SetPath(path string) {
	c.path = path
}

// SetSecure sets the Secure attribute.
func (c *Cookie) SetSecure(secure bool) {
	c.secure = secure
}

// SetHTTPOnly sets the HttpOnly attribute.
func (c *Cookie) SetHTTPOnly(httpOnly bool) {
	c.httpOnly = httpOnly
}

// SetPartitioned sets the Partitioned attribute.
func (c *Cookie) SetPartitioned(partitioned bool) {
	c.partitioned = partitioned
}

// SetSameSite sets the SameSite attribute.
func (c *Cookie) SetSameSite(s SameSite) {
	c.sameSite = s
}

// Valid checks that the cookie's name is usable in a Cookie or Set-Cookie
// header without percent-encoding: non-empty and free of control characters,
// semicolons and equals signs.
func (c Cookie) Valid() error {
	if c.name == "" {
		return ErrEmptyName
	}
	for i := 0; i < len(c.name); i++ {
		b := c.name[i]
		if b < 0x20 || b == 0x7f || b == ';' || b == '=' {
			return ErrInvalidName
		}
	}
	return nil
}

// makeRemoval turns the cookie into a deletion instruction: empty value,
// Max-Age=0 and the earliest representable Expires. Path and Domain are left
// untouched so the instruction matches the cookie being targeted.
func (c *Cookie) makeRemoval() {
	c.value = ""
	c.SetMaxAge(0)
	c.SetExpires(time.Unix(0, 0).UTC())
}
