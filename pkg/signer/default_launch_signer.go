package signer

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/lti-tools/lti-go/pkg/launch"
)

// DefaultLaunchSigner implements LaunchSigner with OAuth Core 1.0 HMAC-SHA1
// signatures as required by LTI 1.x
type DefaultLaunchSigner struct{}

// NewDefaultLaunchSigner creates a new DefaultLaunchSigner
func NewDefaultLaunchSigner() *DefaultLaunchSigner {
	return &DefaultLaunchSigner{}
}

// Signature computes the base-string signature for the given request.
//
// The base string is encode(method)&encode(uri)&encode(params) and the
// signing key is encode(consumerSecret)&encode(tokenSecret). params has
// usually been percent encoded pair-by-pair already by launch.Normalize and
// is encoded a second time here as one opaque unit; that double encoding is
// part of the OAuth base-string construction, not a bug. The digest is
// HMAC-SHA1, returned as padded standard base64.
//
// Pure function of its five inputs.
func (s *DefaultLaunchSigner) Signature(method, uri, params, consumerSecret, tokenSecret string) string {
	base := launch.PercentEncode(method) + "&" + launch.PercentEncode(uri) + "&" + launch.PercentEncode(params)
	key := launch.PercentEncode(consumerSecret) + "&" + launch.PercentEncode(tokenSecret)

	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// SignLaunch signs a launch the way a Tool Consumer does: it adds the OAuth
// protocol parameters that are missing (oauth_consumer_key, oauth_version,
// oauth_signature_method, oauth_timestamp, oauth_nonce), normalizes the
// result, computes the signature, and returns a new set with oauth_signature
// appended. The caller's set is never mutated. Pass opts to pin the
// timestamp and nonce; otherwise the current time and a random UUID nonce
// are used.
func (s *DefaultLaunchSigner) SignLaunch(method, uri string, params launch.ParameterSet, consumerKey, consumerSecret string, opts *SigningOptions) (launch.ParameterSet, error) {
	if method == "" {
		return nil, fmt.Errorf("method cannot be empty")
	}
	if uri == "" {
		return nil, fmt.Errorf("uri cannot be empty")
	}
	if consumerKey == "" {
		return nil, fmt.Errorf("consumer key cannot be empty")
	}

	if opts == nil {
		opts = &SigningOptions{}
	}

	timestamp := opts.Timestamp
	if timestamp == 0 {
		timestamp = time.Now().Unix()
	}
	nonce := opts.Nonce
	if nonce == "" {
		nonce = uuid.NewString()
	}

	// A set that already carries a signature cannot be signed again as-is.
	signed, _, found, err := launch.ExtractSignature(params)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, fmt.Errorf("parameter set already contains %s", launch.SignatureParam)
	}

	defaults := []launch.Parameter{
		{Key: "oauth_consumer_key", Value: consumerKey},
		{Key: "oauth_signature_method", Value: "HMAC-SHA1"},
		{Key: "oauth_timestamp", Value: strconv.FormatInt(timestamp, 10)},
		{Key: "oauth_nonce", Value: nonce},
		{Key: "oauth_version", Value: "1.0"},
	}
	for _, p := range defaults {
		if _, ok := signed.First(p.Key); !ok {
			signed = signed.Add(p.Key, p.Value)
		}
	}

	sig := s.Signature(method, uri, launch.Normalize(signed), consumerSecret, opts.TokenSecret)
	return signed.Add(launch.SignatureParam, sig), nil
}
