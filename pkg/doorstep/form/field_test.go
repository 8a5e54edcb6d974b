package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldSetValueIsVerbatim(t *testing.T) {
	values := []string{"", "a@b.com", "  padded  ", "not an email", "ünïcödé", "line\nbreak"}

	for _, v := range values {
		f := New("email", "Email")
		f.Set(v)
		assert.Equal(t, v, f.Value())
	}
}

func TestFieldStartsEmpty(t *testing.T) {
	f := New("username", "Username")

	assert.True(t, f.IsEmpty())
	assert.Equal(t, "", f.Value())
	assert.Equal(t, "Username", f.Placeholder)
}

func TestFieldAppendAndBackspace(t *testing.T) {
	f := New("email", "")

	f.Append("a@")
	f.Append("é")
	assert.Equal(t, "a@é", f.Value())

	f.Backspace()
	assert.Equal(t, "a@", f.Value())

	f.Backspace()
	f.Backspace()
	f.Backspace()
	assert.Equal(t, "", f.Value())
}

func TestFieldReset(t *testing.T) {
	f := New("email", "")
	f.Set("x")
	f.Reset()

	assert.True(t, f.IsEmpty())
}

func TestSecureFieldDisplayIsMasked(t *testing.T) {
	f := NewSecure("password", "Password")
	f.Set("hünter2")

	assert.Equal(t, "•••••••", f.Display())
	assert.Equal(t, "hünter2", f.Value())
}

func TestPlainFieldDisplayIsValue(t *testing.T) {
	f := New("email", "Email")
	f.Set("a@b.com")

	assert.Equal(t, "a@b.com", f.Display())
}
