package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"go.hookshot.dev/webhook-sdk/github/types"
	"go.hookshot.dev/webhook-sdk/internal/client"
	"go.hookshot.dev/webhook-sdk/internal/jsonerr"
)

// Headers GitHub attaches to every webhook delivery.
const (
	EventHeader    = "X-GitHub-Event"
	DeliveryHeader = "X-GitHub-Delivery"
)

// Event verifies the delivery in req and decodes its payload into T.
//
// The signature is checked before any payload bytes are interpreted; on
// any failure the zero value is returned together with the rejection,
// whose message is safe to show to the sender.
func Event[T any](c *Client, req *http.Request) (T, error) {
	return client.VerifyAndDecodeRequest[T](c.client, req)
}

// EventHandler returns an [http.HandlerFunc] that can be used to handle
// webhook deliveries from GitHub.
//
// GitHub sends a POST request with a JSON encoded payload as the body,
// signed with the webhook's shared secret. Once the delivery is verified
// and decoded, the callback is invoked with the decoded payload and the
// delivery metadata from the request headers.
//
// If verification or decoding fails the delivery is rejected with a
// 400 response carrying the rejection message. If the callback returns an
// error (or panics) a 500 response is written, which GitHub records as a
// failed delivery and offers for redelivery; otherwise a 200 response
// acknowledges the delivery.
func EventHandler[T any](c *Client, logger *zerolog.Logger, callback func(ctx context.Context, delivery types.Delivery, payload T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		// Verify and decode the delivery
		payload, err := Event[T](c, req)
		if err != nil {
			jsonerr.Reject(w, err)
			return
		}

		delivery := types.Delivery{
			ID:    req.Header.Get(DeliveryHeader),
			Event: req.Header.Get(EventHeader),
		}

		// Run the callback, containing any panic so a bad payload
		// handler cannot take down the serving process.
		err = func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("panic while handling webhook delivery: %v", r)
				}
			}()
			return callback(req.Context(), delivery, payload)
		}()

		if err != nil {
			logger.Err(err).
				Str("delivery", delivery.ID).
				Str("event", delivery.Event).
				Msg("error while handling webhook delivery")
			jsonerr.Error(w, err, http.StatusInternalServerError)
			return
		}

		jsonerr.Error(w, nil, 0)
	}
}
