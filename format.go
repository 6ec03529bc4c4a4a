package cookiekit

import (
	"strconv"
	"strings"
)

// String renders the cookie as the body of a Set-Cookie header. Attributes
// appear in a fixed canonical order: Path, Domain, Max-Age, Expires, Secure,
// HttpOnly, SameSite, Partitioned.
func (c Cookie) String() string {
	var b strings.Builder
	c.write(&b, false)
	return b.String()
}

// EncodedString renders the cookie like String but percent-encodes its name
// and value so that any byte sequence survives the round trip through a
// header.
func (c Cookie) EncodedString() string {
	var b strings.Builder
	c.write(&b, true)
	return b.String()
}

func (c Cookie) write(b *strings.Builder, encode bool) {
	if encode {
		b.WriteString(percentEncode(c.name))
		b.WriteByte('=')
		b.WriteString(percentEncode(c.value))
	} else {
		b.WriteString(c.name)
		b.WriteByte('=')
		b.WriteString(c.value)
	}

	if c.path != "" {
		b.WriteString("; Path=")
		b.WriteString(c.path)
	}
	if c.domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(c.domain)
	}
	if c.maxAge != nil {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.FormatInt(*c.maxAge, 10))
	}
	if c.expires != nil {
		if t, ok := c.expires.Datetime(); ok {
			b.WriteString("; Expires=")
			b.WriteString(formatHTTPDate(t))
		}
	}
	if c.secure {
		b.WriteString("; Secure")
	}
	if c.httpOnly {
		b.WriteString("; HttpOnly")
	}
	if c.sameSite != SameSiteUnset {
		b.WriteString("; SameSite=")
		b.WriteString(c.sameSite.String())
	}
	if c.partitioned {
		b.WriteString("; Partitioned")
	}
}

const upperhex = "0123456789ABCDEF"

// percentEncode escapes every byte outside the RFC 3986 unreserved set.
// That covers controls, space, `"`, `,`, `;`, `(`, `)` and `=`, which is
// what guarantees percentDecode(percentEncode(x)) == x for all inputs.
func percentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isUnreserved(s[i]) {
			b.WriteByte(s[i])
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[s[i]>>4])
		b.WriteByte(upperhex[s[i]&0x0f])
	}
	return b.String()
}

func isUnreserved(b byte) bool {
	return b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' ||
		b == '-' || b == '.' || b == '_' || b == '~'
}
