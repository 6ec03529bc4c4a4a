package cookiekit

import (
	"iter"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Parse parses a single cookie from its `name=value[; attributes]` text. The
// only fatal condition is a missing or empty name; unrecognized or malformed
// attributes are dropped without failing the parse.
func Parse(s string) (Cookie, error) {
	return parseCookie(s, false)
}

// ParseEncoded works like Parse but percent-decodes the cookie's name and
// value. A value that fails to decode is kept as its raw bytes.
func ParseEncoded(s string) (Cookie, error) {
	return parseCookie(s, true)
}

// Split parses a `;`-joined multi-cookie request header, lazily yielding one
// parse result per segment. A failed segment does not stop the sequence.
func Split(header string) iter.Seq2[Cookie, error] {
	return splitParse(header, false)
}

// SplitEncoded works like Split but percent-decodes names and values.
func SplitEncoded(header string) iter.Seq2[Cookie, error] {
	return splitParse(header, true)
}

func splitParse(header string, decode bool) iter.Seq2[Cookie, error] {
	return func(yield func(Cookie, error) bool) {
		for segment := range strings.SplitSeq(header, ";") {
			if !yield(parseCookie(segment, decode)) {
				return
			}
		}
	}
}

func parseCookie(s string, decode bool) (Cookie, error) {
	rest := s
	pair := rest
	if i := strings.IndexByte(rest, ';'); i >= 0 {
		pair, rest = rest[:i], rest[i+1:]
	} else {
		rest = ""
	}

	i := strings.IndexByte(pair, '=')
	if i < 0 {
		return Cookie{}, ErrEmptyName
	}

	name := strings.TrimSpace(pair[:i])
	value := strings.TrimSpace(pair[i+1:])
	if name == "" {
		return Cookie{}, ErrEmptyName
	}

	if decode {
		name = percentDecode(name)
		value = percentDecode(value)
	}

	c := Cookie{name: name, value: value}
	for rest != "" {
		attr := rest
		if j := strings.IndexByte(rest, ';'); j >= 0 {
			attr, rest = rest[:j], rest[j+1:]
		} else {
			rest = ""
		}
		parseAttribute(&c, attr)
	}

	return c, nil
}

// parseAttribute applies one `; key[=value]` token to the cookie. Attributes
// are matched case-insensitively; anything unrecognized or malformed is
// dropped.
func parseAttribute(c *Cookie, attr string) {
	key, value, hasValue := strings.Cut(attr, "=")
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch strings.ToLower(key) {
	case "secure":
		c.secure = true
	case "httponly":
		c.httpOnly = true
	case "partitioned":
		c.partitioned = true
	case "max-age":
		if !hasValue {
			return
		}
		if seconds, ok := parseMaxAge(value); ok {
			c.SetMaxAge(seconds)
		}
	case "domain":
		// Stored verbatim, leading dot included, so serialization
		// round-trips the original text. Domain() strips the dot.
		if hasValue && value != "" {
			c.domain = value
		}
	case "path":
		if hasValue {
			c.path = value
		}
	case "samesite":
		if !hasValue {
			return
		}
		switch {
		case strings.EqualFold(value, "strict"):
			c.sameSite = SameSiteStrict
		case strings.EqualFold(value, "lax"):
			c.sameSite = SameSiteLax
		case strings.EqualFold(value, "none"):
			c.sameSite = SameSiteNone
		}
	case "expires":
		if !hasValue {
			return
		}
		if t, err := parseHTTPDate(value); err == nil {
			c.SetExpires(t)
		}
	}
}

// parseMaxAge parses a Max-Age attribute value. Per RFC 6265 section 5.2.2,
// negative values mean the earliest possible expiration, so they collapse to
// zero. Values too large for int64 are clamped rather than dropped. Anything
// non-numeric makes the attribute unusable, so ok is false.
func parseMaxAge(v string) (seconds int64, ok bool) {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		if n < 0 {
			return 0, true
		}
		return n, true
	}

	digits, neg := strings.CutPrefix(v, "-")
	if digits == "" {
		return 0, false
	}
	for j := 0; j < len(digits); j++ {
		if digits[j] < '0' || digits[j] > '9' {
			return 0, false
		}
	}
	if neg {
		return 0, true
	}
	return math.MaxInt64, true
}

// percentDecode decodes %XX escapes, falling back to the raw input when the
// escape sequences are malformed.
func percentDecode(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
