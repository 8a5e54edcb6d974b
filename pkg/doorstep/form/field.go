// Package form holds the text-input state owned by a single screen instance.
//
// A Field stores exactly what it is given. There is no validation, trimming or
// normalisation: an empty email is as acceptable as a filled one.
package form

import (
	"strings"
	"unicode/utf8"
)

// Field is a single text input value.
// The zero value is an empty, non-secure field and is ready to use.
type Field struct {
	ID          string // Stable identifier used by hosts and tests (e.g. "email")
	Placeholder string // Hint text shown while the value is empty
	Secure      bool   // Mask the value when displayed (password inputs)

	value string
}

// New creates an empty field.
func New(id, placeholder string) *Field {
	return &Field{ID: id, Placeholder: placeholder}
}

// NewSecure creates an empty field whose value is masked on display.
func NewSecure(id, placeholder string) *Field {
	return &Field{ID: id, Placeholder: placeholder, Secure: true}
}

// Set replaces the current value.
func (f *Field) Set(value string) {
	f.value = value
}

// Value returns the current value exactly as it was set.
func (f *Field) Value() string {
	return f.value
}

// Append adds text at the end of the value. Used by hosts forwarding keystrokes.
func (f *Field) Append(text string) {
	f.value += text
}

// Backspace removes the last rune, if any.
func (f *Field) Backspace() {
	if f.value == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(f.value)
	f.value = f.value[:len(f.value)-size]
}

// Reset clears the value.
func (f *Field) Reset() {
	f.value = ""
}

// IsEmpty reports whether the value is the empty string.
func (f *Field) IsEmpty() bool {
	return f.value == ""
}

// Display returns the text a host should draw for this field.
// Secure fields are masked rune-for-rune; empty fields show nothing.
func (f *Field) Display() string {
	if !f.Secure {
		return f.value
	}
	return strings.Repeat("•", utf8.RuneCountInString(f.value))
}
