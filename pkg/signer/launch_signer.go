package signer

import (
	"github.com/lti-tools/lti-go/pkg/launch"
)

// LaunchSigner signs LTI launch requests with OAuth 1.0 HMAC-SHA1
type LaunchSigner interface {
	// Signature computes the OAuth base-string signature for the given
	// request. params is the already-normalized parameter string (see
	// launch.Normalize); it is percent encoded once more, as a single opaque
	// unit, when the base string is assembled. tokenSecret is empty for LTI
	// launches.
	Signature(method, uri, params, consumerSecret, tokenSecret string) string

	// SignLaunch fills in the OAuth protocol parameters for a launch, signs
	// it, and returns a new parameter set ending with oauth_signature. The
	// input set is not mutated.
	SignLaunch(method, uri string, params launch.ParameterSet, consumerKey, consumerSecret string, opts *SigningOptions) (launch.ParameterSet, error)
}

// SigningOptions contains options for signing launch requests
type SigningOptions struct {
	// Timestamp is the oauth_timestamp value (Unix timestamp)
	// If 0, current time is used
	Timestamp int64

	// Nonce is the oauth_nonce value
	// If empty, a random nonce is generated
	Nonce string

	// TokenSecret is the optional OAuth token secret
	// LTI launches leave it empty
	TokenSecret string
}
