package webhook

import (
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"go.hookshot.dev/webhook-sdk/internal/client"
	"go.hookshot.dev/webhook-sdk/pkg/auth"
)

// Option is a function that can be passed to NewSDK to configure the SDK.
type Option func(config *client.Config)

// WithSecret configures the SDK to verify deliveries against the given
// secret holder.
//
// The holder is shared, not copied: keep a reference to it and call
// [auth.Secret.Rotate] to swap the key without rebuilding the SDK.
func WithSecret(secret *auth.Secret) Option {
	return func(config *client.Config) {
		config.Secret = secret
	}
}

// WithSecretString configures the SDK to verify deliveries against the
// UTF-8 bytes of key, as pasted into the webhook's configuration page.
func WithSecretString(key string) Option {
	return func(config *client.Config) {
		config.Secret = auth.NewSecretString(key)
	}
}

// WithLogger configures the SDK to log rejected deliveries to the
// specified logger. If not specified rejections are not logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(config *client.Config) {
		config.Logger = logger
	}
}

// WithSignatureHeader configures the SDK to read the signature from the
// specified header, overriding the default X-Hub-Signature-256.
func WithSignatureHeader(name string) Option {
	return func(config *client.Config) {
		config.SignatureHeader = name
	}
}

// WithClock configures the SDK to use the specified clock.
//
// This is useful for testing with a mocked clock, if not
// specified a real clock will be used.
func WithClock(clock clock.Clock) Option {
	return func(config *client.Config) {
		config.Clock = clock
	}
}
