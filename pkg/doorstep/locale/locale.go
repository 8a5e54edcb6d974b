// Package locale provides the display strings for every screen.
//
// Messages live in embedded TOML files (locales/active.<lang>.toml) and are
// resolved through a go-i18n bundle. Unknown message IDs fall back to the ID
// itself so a missing translation is visible rather than blank.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	OnboardingHeading     = "OnboardingHeading"
	OnboardingSubheading  = "OnboardingSubheading"
	GoToLogin             = "GoToLogin"
	GoToSignup            = "GoToSignup"
	LoginTitle            = "LoginTitle"
	LoginHeading          = "LoginHeading"
	LoginSuccess          = "LoginSuccess"
	SignInWithGoogle      = "SignInWithGoogle"
	SignInWithApple       = "SignInWithApple"
	ForgotPasswordLink    = "ForgotPasswordLink"
	SignupTitle           = "SignupTitle"
	SignupHeading         = "SignupHeading"
	SignupSuccess         = "SignupSuccess"
	ForgotPasswordTitle   = "ForgotPasswordTitle"
	ForgotPasswordHeading = "ForgotPasswordHeading"
	ForgotPasswordSuccess = "ForgotPasswordSuccess"
	BackToLogin           = "BackToLogin"
	EmailPlaceholder      = "EmailPlaceholder"
	ResetEmailPlaceholder = "ResetEmailPlaceholder"
	PasswordPlaceholder   = "PasswordPlaceholder"
	UsernamePlaceholder   = "UsernamePlaceholder"
	Submit                = "Submit"
	Back                  = "Back"
	Dismiss               = "Dismiss"
)

// ErrUnsupportedLocale is returned for a language with no message file.
var ErrUnsupportedLocale = errors.New("unsupported locale")

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		files, err := fs.Glob(localeFS, "locales/*.toml")
		if err != nil {
			bundleErr = err
			return
		}
		for _, f := range files {
			if _, err := b.LoadMessageFileFS(localeFS, f); err != nil {
				bundleErr = fmt.Errorf("load %s: %w", f, err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Supported returns the languages that have a message file.
func Supported() []language.Tag {
	b, err := loadBundle()
	if err != nil {
		return nil
	}
	return b.LanguageTags()
}

// Localizer resolves message IDs for one language.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New creates a Localizer for a BCP 47 language string such as "en" or "es-MX".
// Regional variants resolve to the closest supported language.
func New(lang string) (*Localizer, error) {
	b, err := loadBundle()
	if err != nil {
		return nil, err
	}

	requested, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", lang, err)
	}

	supported := b.LanguageTags()
	_, idx, confidence := language.NewMatcher(supported).Match(requested)
	if confidence == language.No {
		return nil, fmt.Errorf("locale %q: %w", lang, ErrUnsupportedLocale)
	}
	tag := supported[idx]

	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(b, tag.String()),
	}, nil
}

// Default returns the English localizer.
func Default() *Localizer {
	l, err := New("en")
	if err != nil {
		panic(err)
	}
	return l
}

// Tag returns the resolved language.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T returns the message for id, or id itself when no translation exists.
func (l *Localizer) T(id string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return id
	}
	return msg
}
