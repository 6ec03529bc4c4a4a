package cookiekit_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit"
)

func TestParse_EmptyName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{"no pair", "bar"},
		{"empty name", "=bar"},
		{"whitespace name", " =bar"},
		{"only whitespace", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := cookiekit.Parse(tt.input)
			require.ErrorIs(t, err, cookiekit.ErrEmptyName)
		})
	}
}

func TestParse_NameValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantValue string
	}{
		{"simple", "foo=bar", "foo", "bar"},
		{"empty value", "foo=", "foo", ""},
		{"value with equals", "foo=bar=baz", "foo", "bar=baz"},
		{"padded", " foo = bar ", "foo", "bar"},
		{"raw percent untouched", "foo=b%2Fr", "foo", "b%2Fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := cookiekit.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, c.Name())
			assert.Equal(t, tt.wantValue, c.Value())
		})
	}
}

func TestParse_QuotedValue(t *testing.T) {
	t.Parallel()
	c, err := cookiekit.Parse(`foo="bar"`)
	require.NoError(t, err)

	assert.Equal(t, `"bar"`, c.Value(), "surrounding quotes are literal")
	assert.Equal(t, "bar", c.ValueTrimmed())
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()
	c, err := cookiekit.Parse(" foo=bar ; sekure; HTTPONLY=whatever; Secure; Partitioned")
	require.NoError(t, err)

	assert.True(t, c.Secure())
	assert.True(t, c.HTTPOnly())
	assert.True(t, c.Partitioned())
}

func TestParse_LenientAttributes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{"unknown attribute", " foo=bar ;Ignored"},
		{"empty domain", " foo=bar ;Domain="},
		{"blank domain", " foo=bar ;Domain= "},
		{"bad max-age", "foo=bar; Max-Age=abc"},
		{"bad expires", "foo=bar; Expires=not-a-date"},
		{"bad samesite", "foo=bar; SameSite=whatever"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := cookiekit.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, "foo=bar", c.String())
		})
	}
}

func TestParse_MaxAge(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    int64
		wantSet bool
	}{
		{"zero", "foo=bar; Max-Age=0", 0, true},
		{"positive", "foo=bar; Max-Age = 60 ", 60, true},
		{"negative collapses to zero", "foo=bar; Max-Age=-1", 0, true},
		{"overflow clamps", "foo=bar; Max-Age=99999999999999999999999", math.MaxInt64, true},
		{"negative overflow collapses", "foo=bar; Max-Age=-99999999999999999999999", 0, true},
		{"non-numeric ignored", "foo=bar; Max-Age=2x", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := cookiekit.Parse(tt.input)
			require.NoError(t, err)

			got, ok := c.MaxAge()
			require.Equal(t, tt.wantSet, ok)
			if tt.wantSet {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParse_Domain(t *testing.T) {
	t.Parallel()
	c, err := cookiekit.Parse("foo=bar; Domain=.example.com")
	require.NoError(t, err)

	assert.Equal(t, "example.com", c.Domain(), "read accessor strips one leading dot")
	assert.Equal(t, "foo=bar; Domain=.example.com", c.String(), "serialization keeps the original text")
}

func TestParse_SameSite(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  cookiekit.SameSite
	}{
		{"foo=bar; SameSite=Strict", cookiekit.SameSiteStrict},
		{"foo=bar; SameSite=STRICT", cookiekit.SameSiteStrict},
		{"foo=bar; samesite=lax", cookiekit.SameSiteLax},
		{"foo=bar; SAMESITE=Lax", cookiekit.SameSiteLax},
		{"foo=bar; SameSite=none", cookiekit.SameSiteNone},
		{"foo=bar; SameSite=other", cookiekit.SameSiteUnset},
		{"foo=bar", cookiekit.SameSiteUnset},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			c, err := cookiekit.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.SameSite())
		})
	}
}

func TestParse_Expires(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			"imf fixdate",
			"foo=bar; Expires=Wed, 21 Oct 2015 07:28:00 GMT",
			time.Date(2015, time.October, 21, 7, 28, 0, 0, time.UTC),
		},
		{
			"rfc 850",
			"foo=bar; Expires=Sunday, 06-Nov-94 08:49:37 GMT",
			time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC),
		},
		{
			"four digit dashed",
			"foo=bar; Expires=Sun, 06-Nov-1994 08:49:37 GMT",
			time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC),
		},
		{
			"asctime",
			"foo=bar; Expires=Sun Nov  6 08:49:37 1994",
			time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := cookiekit.Parse(tt.input)
			require.NoError(t, err)

			got, ok := c.ExpiresDatetime()
			require.True(t, ok)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParse_TwoDigitYears(t *testing.T) {
	t.Parallel()
	tests := []struct {
		year     string
		wantYear int
	}{
		{"05", 2005},
		{"95", 1995},
		{"69", 1969},
		{"68", 2068},
		{"00", 2000},
	}

	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			t.Parallel()
			c, err := cookiekit.Parse("foo=bar; Expires=Friday, 21-Oct-" + tt.year + " 07:28:00 GMT")
			require.NoError(t, err)

			got, ok := c.ExpiresDatetime()
			require.True(t, ok)
			assert.Equal(t, tt.wantYear, got.Year())
		})
	}
}

func TestParse_ExpiresBeyondMaxDropped(t *testing.T) {
	t.Parallel()
	c, err := cookiekit.Parse("foo=bar; Expires=Sat, 01 Jan 10000 00:00:00 GMT")
	require.NoError(t, err)

	_, ok := c.Expires()
	assert.False(t, ok, "dates past year 9999 must be dropped at parse")
}

func TestParseEncoded(t *testing.T) {
	t.Parallel()
	t.Run("decodes value", func(t *testing.T) {
		t.Parallel()
		c, err := cookiekit.ParseEncoded("foo=b%2Fr")
		require.NoError(t, err)
		assert.Equal(t, "b/r", c.Value())
	})

	t.Run("bad escape falls back to raw", func(t *testing.T) {
		t.Parallel()
		c, err := cookiekit.ParseEncoded("foo=b%zzr")
		require.NoError(t, err)
		assert.Equal(t, "b%zzr", c.Value())
	})
}

func TestSplit(t *testing.T) {
	t.Parallel()
	var cookies []cookiekit.Cookie
	var errs []error
	for c, err := range cookiekit.Split("a=1; bogus; b=2") {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cookies = append(cookies, c)
	}

	require.Len(t, errs, 1, "a bad segment must not stop the rest")
	require.ErrorIs(t, errs[0], cookiekit.ErrEmptyName)

	require.Len(t, cookies, 2)
	assert.Equal(t, "a", cookies[0].Name())
	assert.Equal(t, "1", cookies[0].Value())
	assert.Equal(t, "b", cookies[1].Name())
	assert.Equal(t, "2", cookies[1].Value())
}

func TestSplit_EarlyStop(t *testing.T) {
	t.Parallel()
	var got int
	for _, err := range cookiekit.Split("a=1; b=2; c=3") {
		require.NoError(t, err)
		got++
		if got == 2 {
			break
		}
	}
	assert.Equal(t, 2, got)
}

func TestCookie_Valid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		cookie  cookiekit.Cookie
		wantErr error
	}{
		{"ok", cookiekit.New("session", "abc"), nil},
		{"empty name", cookiekit.New("", "abc"), cookiekit.ErrEmptyName},
		{"semicolon", cookiekit.New("a;b", "abc"), cookiekit.ErrInvalidName},
		{"equals", cookiekit.New("a=b", "abc"), cookiekit.ErrInvalidName},
		{"control char", cookiekit.New("a\x01b", "abc"), cookiekit.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cookie.Valid()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
