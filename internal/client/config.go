package client

import (
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"go.hookshot.dev/webhook-sdk/pkg/auth"
)

// DefaultSignatureHeader is the header GitHub delivers signatures in.
const DefaultSignatureHeader = "X-Hub-Signature-256"

// Config is the configuration for the client.
type Config struct {
	Secret          *auth.Secret   // The shared secret deliveries are signed with
	Logger          zerolog.Logger // Destination for rejection logs
	Clock           clock.Clock    // The clock to use
	SignatureHeader string         // Header carrying the signature, defaults to DefaultSignatureHeader
}
