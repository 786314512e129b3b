package htmlqr

import "time"

// verifierConfig holds internal configuration for a Verifier.
type verifierConfig struct {
	chromePath   string
	timeout      time.Duration
	noSandbox    bool
	autoDownload bool
	headless     string
}

func defaultConfig() verifierConfig {
	return verifierConfig{
		timeout:  30 * time.Second,
		headless: "new",
	}
}

// Option configures a [Verifier].
type Option func(*verifierConfig)

// WithChromePath sets the path to the Chrome or Chromium executable.
// By default the library searches standard locations automatically.
func WithChromePath(path string) Option {
	return func(c *verifierConfig) {
		c.chromePath = path
	}
}

// WithTimeout sets the maximum duration for a single verification.
// Defaults to 30 seconds. A zero or negative value disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *verifierConfig) {
		c.timeout = d
	}
}

// WithNoSandbox disables the Chrome sandbox. This is required when
// running as root, for example inside Docker containers.
func WithNoSandbox() Option {
	return func(c *verifierConfig) {
		c.noSandbox = true
	}
}

// WithAutoDownload fetches a compatible Chromium build when no explicit
// path is configured and no browser is found in PATH. An explicit
// [WithChromePath] takes precedence.
func WithAutoDownload() Option {
	return func(c *verifierConfig) {
		c.autoDownload = true
	}
}
