package session

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestCookies_IssueParse(t *testing.T) {
	c := NewCookies("fnd_session", []byte("0123456789abcdef0123456789abcdef"), false)

	id, value, err := c.Issue()
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", id)
	assert.Equal(t, false, strings.Contains(value, id))

	parsed, err := c.Parse(value)
	assert.Equal(t, nil, err)
	assert.Equal(t, id, parsed)
}

func TestCookies_RejectsForeignKey(t *testing.T) {
	issuer := NewCookies("fnd_session", []byte("key-one-key-one-key-one-key-one-"), false)
	verifier := NewCookies("fnd_session", []byte("key-two-key-two-key-two-key-two-"), false)

	_, value, err := issuer.Issue()
	assert.Equal(t, nil, err)

	_, err = verifier.Parse(value)
	assert.Equal(t, ErrInvalidCookie, err)
}

func TestCookies_RejectsGarbage(t *testing.T) {
	c := NewCookies("fnd_session", []byte("0123456789abcdef0123456789abcdef"), false)
	for _, v := range []string{"", "abc", "a.b.c"} {
		_, err := c.Parse(v)
		assert.Equal(t, ErrInvalidCookie, err)
	}
}
