// Package webhook is the SDK for receiving signed webhook deliveries.
//
// It verifies that an inbound delivery was produced by a holder of the
// webhook's shared secret, by checking the HMAC-SHA256 signature carried
// in the delivery's signature header against the raw request body, and
// then decodes the verified body into a caller-supplied payload type.
// It sits behind an HTTP layer owned by the application: routing,
// connection handling and server lifecycle are the application's concern.
//
// # Overview of Packages
//
//   - webhook - The main SDK package, constructs and configures the SDK
//   - github - Handling of GitHub webhook deliveries
//   - pkg/auth - The signature primitives and the rejection taxonomy
package webhook
