package client

import (
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"go.hookshot.dev/webhook-sdk/pkg/auth"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is the underlying raw client for verifying and decoding webhook
// deliveries.
//
// It is injected into each service struct by the main [webhook] package.
// Each verification is independent and stateless; the shared secret is the
// only state, and the client only ever reads it.
type Client struct {
	cfg *Config
}

func New(cfg *Config) *Client {
	if cfg.SignatureHeader == "" {
		cfg.SignatureHeader = DefaultSignatureHeader
	}
	return &Client{cfg}
}

// Verify checks that headerValue carries a valid signature for body.
//
// The stages run in a fixed, short-circuiting order: parse the signature
// header, then compare the claimed digest against the HMAC-SHA256 of body
// under the current secret. Each rejection is logged at the point of
// detection, since it represents either misconfiguration or probing traffic.
func (c *Client) Verify(headerValue string, body []byte) error {
	return c.verify(headerValue, body, c.cfg.Clock.Now())
}

func (c *Client) verify(headerValue string, body []byte, start time.Time) error {
	sig, err := auth.ParseSignature(headerValue)
	if err != nil {
		return c.reject(err, start)
	}

	return c.verifyDigest(body, sig, start)
}

// verifyDigest compares the claimed signature against the HMAC of body
// under the current secret. With no secret configured nothing can be
// authenticated, so every delivery is a mismatch.
func (c *Client) verifyDigest(body, sig []byte, start time.Time) error {
	if c.cfg.Secret == nil {
		return c.reject(auth.ErrSignatureMismatch, start)
	}

	if err := auth.Verify(c.cfg.Secret.Bytes(), body, sig); err != nil {
		return c.reject(err, start)
	}

	return nil
}

// VerifyAndDecode verifies headerValue against body and, only on success,
// decodes body into T. The decoded value is produced from exactly the bytes
// that were verified; nothing runs on an unauthenticated body.
//
// It is a top-level function rather than a method so the payload type can
// be a type parameter.
func VerifyAndDecode[T any](c *Client, headerValue string, body []byte) (T, error) {
	var zero T
	start := c.cfg.Clock.Now()

	if err := c.verify(headerValue, body, start); err != nil {
		return zero, err
	}

	return decode[T](c, body, start)
}

// VerifyAndDecodeRequest verifies the authenticity of the request and decodes
// the request body into T.
//
// The signature header is parsed before the body is read, so a request with
// no usable signature is rejected without consuming its body.
func VerifyAndDecodeRequest[T any](c *Client, req *http.Request) (T, error) {
	var zero T
	start := c.cfg.Clock.Now()

	sig, err := auth.ParseSignature(req.Header.Get(c.cfg.SignatureHeader))
	if err != nil {
		return zero, c.reject(err, start)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return zero, c.reject(auth.ErrBodyRead, start)
	}

	if err := c.verifyDigest(body, sig, start); err != nil {
		return zero, err
	}

	return decode[T](c, body, start)
}

// decode deserializes a verified body into T. On failure the zero value is
// returned alongside a [auth.DecodeError] whose message names the field
// path at which decoding failed.
func decode[T any](c *Client, body []byte, start time.Time) (T, error) {
	var value T
	if err := json.Unmarshal(body, &value); err != nil {
		var zero T
		return zero, c.reject(&auth.DecodeError{Err: err}, start)
	}
	return value, nil
}

// reject logs the rejection and passes it back unchanged.
func (c *Client) reject(err error, start time.Time) error {
	c.cfg.Logger.Err(err).
		Dur("elapsed", c.cfg.Clock.Since(start)).
		Msg("rejected webhook delivery")
	return err
}
