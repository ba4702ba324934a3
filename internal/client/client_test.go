package client

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benbjohnson/clock"
	qt "github.com/frankban/quicktest"
	"github.com/rs/zerolog"

	"go.hookshot.dev/webhook-sdk/pkg/auth"
)

type event struct {
	Action string `json:"action"`
}

const (
	testSecret = "42"
	testBody   = `{"action":"hello world"}`
	testSig    = "sha256=8b99afd7996c3e3c291a0b54399bacb72016bdb088071de42d1d7156a6a4273d"
)

func newTestClient(logs *bytes.Buffer) *Client {
	logger := zerolog.Nop()
	if logs != nil {
		logger = zerolog.New(logs)
	}
	return New(&Config{
		Secret: auth.NewSecretString(testSecret),
		Logger: logger,
		Clock:  clock.NewMock(),
	})
}

func TestVerifyAndDecode(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	cl := newTestClient(nil)
	got, err := VerifyAndDecode[event](cl, testSig, []byte(testBody))
	c.Assert(err, qt.IsNil, qt.Commentf("got an error verifying a correctly signed body"))
	c.Assert(got.Action, qt.Equals, "hello world")

	// Same inputs, same outcome.
	again, err := VerifyAndDecode[event](cl, testSig, []byte(testBody))
	c.Assert(err, qt.IsNil)
	c.Assert(again, qt.Equals, got)
}

func TestVerifyAndDecodeRejections(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	cl := newTestClient(nil)
	body := []byte(testBody)

	_, err := VerifyAndDecode[event](cl, "", body)
	c.Assert(err, qt.ErrorIs, auth.ErrSignatureMissing)

	_, err = VerifyAndDecode[event](cl, "x", body)
	c.Assert(err, qt.ErrorIs, auth.ErrSignaturePrefixMissing)

	_, err = VerifyAndDecode[event](cl, "sha256=x", body)
	c.Assert(err, qt.ErrorIs, auth.ErrSignatureMalformed)

	_, err = VerifyAndDecode[event](cl, "sha256=01", body)
	c.Assert(err, qt.ErrorIs, auth.ErrSignatureMismatch)
}

func TestVerifyAndDecodeDecodeError(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	cl := newTestClient(nil)

	// Correctly signed, but the action field has the wrong type.
	body := []byte(`{"action":42}`)
	got, err := VerifyAndDecode[event](cl, auth.Sign([]byte(testSecret), body), body)

	var decodeErr *auth.DecodeError
	c.Assert(errors.As(err, &decodeErr), qt.Equals, true, qt.Commentf("expected a DecodeError, got %#v", err))
	c.Assert(err.Error(), qt.Contains, "Action", qt.Commentf("decode error should name the field at fault"))
	c.Assert(got, qt.Equals, event{}, qt.Commentf("a rejection must not carry a partial payload"))
}

func TestVerifyAndDecodeRequest(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	cl := newTestClient(nil)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(testBody))
	req.Header.Set(DefaultSignatureHeader, testSig)

	got, err := VerifyAndDecodeRequest[event](cl, req)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Action, qt.Equals, "hello world")
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestVerifyAndDecodeRequestBodyReadError(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	cl := newTestClient(nil)
	req := httptest.NewRequest(http.MethodPost, "/", errReader{})
	req.Header.Set(DefaultSignatureHeader, testSig)

	_, err := VerifyAndDecodeRequest[event](cl, req)
	c.Assert(err, qt.ErrorIs, auth.ErrBodyRead)
}

func TestSignatureParsedBeforeBodyRead(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	// With no signature header at all, the request is rejected before
	// its body is ever read, even if reading it would fail.
	cl := newTestClient(nil)
	req := httptest.NewRequest(http.MethodPost, "/", errReader{})

	_, err := VerifyAndDecodeRequest[event](cl, req)
	c.Assert(err, qt.ErrorIs, auth.ErrSignatureMissing)
}

func TestCustomSignatureHeader(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	cl := New(&Config{
		Secret:          auth.NewSecretString(testSecret),
		Logger:          zerolog.Nop(),
		Clock:           clock.NewMock(),
		SignatureHeader: "X-Signature",
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(testBody))
	req.Header.Set("X-Signature", testSig)

	got, err := VerifyAndDecodeRequest[event](cl, req)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Action, qt.Equals, "hello world")
}

func TestNoSecretConfigured(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	cl := New(&Config{
		Logger: zerolog.Nop(),
		Clock:  clock.NewMock(),
	})

	_, err := VerifyAndDecode[event](cl, testSig, []byte(testBody))
	c.Assert(err, qt.ErrorIs, auth.ErrSignatureMismatch)
}

func TestRejectionsAreLogged(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	var logs bytes.Buffer
	cl := newTestClient(&logs)

	_, err := VerifyAndDecode[event](cl, "sha256=01", []byte(testBody))
	c.Assert(err, qt.ErrorIs, auth.ErrSignatureMismatch)

	c.Assert(logs.String(), qt.Contains, "signature mismatch")
	c.Assert(logs.String(), qt.Contains, "rejected webhook delivery")
}
