package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignaturePrefix is the scheme marker in front of the hex digest in the
// signature header, as sent by GitHub in X-Hub-Signature-256.
const SignaturePrefix = "sha256="

// ParseSignature extracts the raw digest bytes from a signature header value.
//
// An empty header means the request carried no signature at all. The digest
// length is deliberately not checked here: a well-formed hex string of the
// wrong length parses fine and is rejected as a mismatch by Verify, keeping
// "malformed" strictly for values that cannot be parsed.
func ParseSignature(header string) ([]byte, error) {
	if header == "" {
		return nil, ErrSignatureMissing
	}

	hexDigest, found := strings.CutPrefix(header, SignaturePrefix)
	if !found {
		return nil, ErrSignaturePrefixMissing
	}

	sig, err := hex.DecodeString(hexDigest)
	if err != nil {
		return nil, ErrSignatureMalformed
	}

	return sig, nil
}

// Verify checks that sig is the HMAC-SHA256 digest of body under key.
//
// The comparison uses hmac.Equal, which runs in constant time regardless
// of where the digests diverge, so response timing reveals nothing about
// the expected signature.
func Verify(key, body, sig []byte) error {
	if !hmac.Equal(digest(key, body), sig) {
		return ErrSignatureMismatch
	}
	return nil
}

// Sign computes the signature header value for body under key,
// in the same form ParseSignature accepts.
func Sign(key, body []byte) string {
	return SignaturePrefix + hex.EncodeToString(digest(key, body))
}

func digest(key, body []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(body)
	return mac.Sum(nil)
}
