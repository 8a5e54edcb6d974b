package locale

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestEnglishMessages(t *testing.T) {
	l := Default()

	assert.Equal(t, "Login to Your Account", l.T(LoginHeading))
	assert.Equal(t, "Login Successful!", l.T(LoginSuccess))
	assert.Equal(t, "Password reset link sent!", l.T(ForgotPasswordSuccess))
	assert.Equal(t, "Sign Up", l.T(SignupTitle))
}

func TestSpanishMessages(t *testing.T) {
	l, err := New("es")
	require.NoError(t, err)

	assert.Equal(t, language.Spanish, l.Tag())
	assert.Equal(t, "Enviar", l.T(Submit))
}

func TestRegionalVariantResolves(t *testing.T) {
	l, err := New("en-GB")
	require.NoError(t, err)

	base, _ := l.Tag().Base()
	assert.Equal(t, "en", base.String())
}

func TestUnknownMessageFallsBackToID(t *testing.T) {
	assert.Equal(t, "NoSuchMessage", Default().T("NoSuchMessage"))
}

func TestUnsupportedLocale(t *testing.T) {
	_, err := New("ja")
	assert.ErrorIs(t, err, ErrUnsupportedLocale)

	_, err = New("not a tag!")
	assert.Error(t, err)
}

func TestEveryMessageTranslated(t *testing.T) {
	ids := []string{
		OnboardingHeading, OnboardingSubheading, GoToLogin, GoToSignup,
		LoginTitle, LoginHeading, LoginSuccess, SignInWithGoogle, SignInWithApple,
		ForgotPasswordLink, SignupTitle, SignupHeading, SignupSuccess,
		ForgotPasswordTitle, ForgotPasswordHeading, ForgotPasswordSuccess, BackToLogin,
		EmailPlaceholder, ResetEmailPlaceholder, PasswordPlaceholder, UsernamePlaceholder,
		Submit, Back, Dismiss,
	}

	for _, tag := range Supported() {
		l, err := New(tag.String())
		require.NoError(t, err)
		for _, id := range ids {
			// A missing message would come back in the English fallback, or not at all.
			msg, from, err := l.localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: id})
			if assert.NoError(t, err, "%s missing %s", tag, id) {
				assert.Equal(t, tag.String(), from.String(), "%s missing %s", tag, id)
				assert.NotEmpty(t, msg)
			}
		}
	}
	assert.Len(t, Supported(), 2)
}
