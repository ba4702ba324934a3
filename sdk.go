package webhook

import (
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"go.hookshot.dev/webhook-sdk/github"
	"go.hookshot.dev/webhook-sdk/internal/client"
)

// NewSDK creates a new SDK with the specified options.
//
// A secret must be supplied with [WithSecret] or [WithSecretString];
// without one every delivery is rejected.
func NewSDK(options ...Option) *SDK {
	// Create the raw client
	cfg := &client.Config{
		Clock:  clock.New(),
		Logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(cfg)
	}
	rawClient := client.New(cfg)

	// Now create the SDK struct
	return &SDK{
		GitHub: github.NewClient(rawClient),
	}
}

// SDK is the main SDK for receiving signed webhook deliveries.
type SDK struct {
	// GitHub handles deliveries signed the way GitHub signs them:
	// an HMAC-SHA256 over the raw body in the X-Hub-Signature-256 header.
	GitHub *github.Client
}
