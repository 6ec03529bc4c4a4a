package cookiekit

import "time"

// Option configures a cookie at construction time.
type Option func(*Cookie)

func WithPath(path string) Option {
	return func(c *Cookie) {
		c.path = path
	}
}

func WithDomain(domain string) Option {
	return func(c *Cookie) {
		c.domain = domain
	}
}

func WithMaxAge(seconds int64) Option {
	return func(c *Cookie) {
		c.SetMaxAge(seconds)
	}
}

func WithExpires(t time.Time) Option {
	return func(c *Cookie) {
		c.SetExpires(t)
	}
}

func WithSessionExpiration() Option {
	return func(c *Cookie) {
		c.SetExpiration(SessionExpiration())
	}
}

func WithSecure(secure bool) Option {
	return func(c *Cookie) {
		c.secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(c *Cookie) {
		c.httpOnly = httpOnly
	}
}

func WithSameSite(sameSite SameSite) Option {
	return func(c *Cookie) {
		c.sameSite = sameSite
	}
}

func WithPartitioned(partitioned bool) Option {
	return func(c *Cookie) {
		c.partitioned = partitioned
	}
}
