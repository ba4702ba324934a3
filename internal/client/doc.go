// Package client provides the generic verifying decoder for inbound webhook
// deliveries: it proves a delivery was produced by a holder of the shared
// secret before decoding its JSON payload into the caller's type.
package client
