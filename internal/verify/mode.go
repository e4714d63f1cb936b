// Package verify checks client bot-verification tokens against a
// reCAPTCHA-compatible siteverify endpoint.
package verify

// Mode selects whether lookups require bot verification.
type Mode struct {
	secret string
}

// Disabled returns a mode that skips verification.
func Disabled() Mode {
	return Mode{}
}

// Enabled returns a mode that verifies every lookup with the given secret.
func Enabled(secret string) Mode {
	return Mode{secret: secret}
}

// IsEnabled reports whether verification is required.
func (m Mode) IsEnabled() bool {
	return m.secret != ""
}

// Secret returns the configured server-side secret.
func (m Mode) Secret() string {
	return m.secret
}

// String never includes the secret.
func (m Mode) String() string {
	if m.IsEnabled() {
		return "enabled"
	}
	return "disabled"
}
