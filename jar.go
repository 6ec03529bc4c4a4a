package cookiekit

import (
	"slices"
	"strings"
)

// deltaCookie tags a pending change: either a cookie being added or a
// removal instruction destined for an outbound Set-Cookie header.
type deltaCookie struct {
	cookie  Cookie
	removed bool
}

// Jar is an in-memory collection of cookies that tracks changes. The
// baseline set by construction (the cookies that arrived with the request)
// is kept apart from the delta of pending additions and removals, so the jar
// can both answer "what is the current state" and "which Set-Cookie headers
// must go out".
//
// A Jar is not safe for concurrent use; use one jar per request.
type Jar struct {
	original map[string]Cookie
	delta    map[string]deltaCookie
}

// NewJar creates an empty jar.
func NewJar() *Jar {
	return &Jar{
		original: make(map[string]Cookie),
		delta:    make(map[string]deltaCookie),
	}
}

// FromHeader creates a jar whose baseline is parsed from a `Cookie:` request
// header. Segments that fail to parse are skipped.
func FromHeader(header string) *Jar {
	jar := NewJar()
	for c, err := range Split(header) {
		if err != nil {
			continue
		}
		jar.AddOriginal(c)
	}
	return jar
}

// AddOriginal inserts a cookie into the jar's baseline without recording a
// change. It is meant for initializing the jar from inbound request state.
func (j *Jar) AddOriginal(c Cookie) {
	j.original[c.name] = c
}

// Add inserts a cookie into the jar, recording it as a pending addition.
// A prior pending change for the same name is overwritten.
func (j *Jar) Add(c Cookie) {
	j.delta[c.name] = deltaCookie{cookie: c}
}

// Remove removes the named cookie and records a deletion instruction for the
// client. If c carries neither Max-Age nor Expires, a deletion cookie is
// synthesized: empty value, Max-Age=0 and the earliest representable
// Expires, keeping c's Path and Domain so the client deletes the exact
// cookie that was set.
func (j *Jar) Remove(c Cookie) {
	_, hasMaxAge := c.MaxAge()
	_, hasExpires := c.Expires()
	if !hasMaxAge && !hasExpires {
		c.makeRemoval()
	}
	j.delta[c.name] = deltaCookie{cookie: c, removed: true}
}

// ForceRemove drops any pending change for name without emitting a deletion
// instruction. Unlike Remove, the client is never told anything; the
// original cookie, if any, remains visible.
func (j *Jar) ForceRemove(name string) {
	delete(j.delta, name)
}

// Clear removes every cookie currently visible in the jar, recording a
// deletion instruction for each.
func (j *Jar) Clear() {
	for _, c := range j.Cookies() {
		removal := Cookie{name: c.name, path: c.path, domain: c.domain}
		removal.makeRemoval()
		j.delta[c.name] = deltaCookie{cookie: removal, removed: true}
	}
}

// Get returns the cookie with the given name. Pending changes shadow the
// baseline: an added cookie is returned in place of the original, and a
// removed name reads as absent.
func (j *Jar) Get(name string) (Cookie, bool) {
	if dc, ok := j.delta[name]; ok {
		if dc.removed {
			return Cookie{}, false
		}
		return dc.cookie, true
	}
	if c, ok := j.original[name]; ok {
		return c, true
	}
	return Cookie{}, false
}

// Cookies returns the jar's current merged view, sorted by name: every
// baseline cookie not pending removal, with pending additions applied, each
// name exactly once.
func (j *Jar) Cookies() []Cookie {
	out := make([]Cookie, 0, len(j.original)+len(j.delta))
	for name, c := range j.original {
		if dc, ok := j.delta[name]; ok {
			if !dc.removed {
				out = append(out, dc.cookie)
			}
			continue
		}
		out = append(out, c)
	}
	for name, dc := range j.delta {
		if _, shadowed := j.original[name]; shadowed || dc.removed {
			continue
		}
		out = append(out, dc.cookie)
	}
	slices.SortFunc(out, func(a, b Cookie) int {
		return strings.Compare(a.name, b.name)
	})
	return out
}

// Delta returns the cookies that must be emitted as Set-Cookie headers,
// sorted by name: pending additions as-is and pending removals as their
// deletion cookies. Names dropped via ForceRemove never appear.
func (j *Jar) Delta() []Cookie {
	out := make([]Cookie, 0, len(j.delta))
	for _, dc := range j.delta {
		out = append(out, dc.cookie)
	}
	slices.SortFunc(out, func(a, b Cookie) int {
		return strings.Compare(a.name, b.name)
	})
	return out
}

// ResetDelta discards all pending changes, restoring the jar's view to its
// baseline.
func (j *Jar) ResetDelta() {
	j.delta = make(map[string]deltaCookie)
}
