package verifier

import (
	"context"
	"errors"
)

var (
	// ErrMissingSignature indicates a launch with no oauth_signature parameter
	ErrMissingSignature = errors.New("verifier: no oauth_signature parameter")

	// ErrSignatureMismatch indicates that the recomputed signature does not
	// match the claimed one
	ErrSignatureMismatch = errors.New("verifier: signature mismatch")

	// ErrUnknownConsumer indicates that no secret is known for the launch's
	// oauth_consumer_key
	ErrUnknownConsumer = errors.New("verifier: unknown consumer key")
)

// LaunchVerifier validates that an inbound LTI launch was signed by a holder
// of the shared consumer secret
type LaunchVerifier interface {
	// Verify checks rawParams against its embedded oauth_signature using the
	// given consumer secret. It fails closed: a malformed parameter string, a
	// missing or duplicated signature parameter, or a mismatch all return
	// false, never an error.
	Verify(method, uri, rawParams, consumerSecret string) bool

	// Explain performs the same check as Verify but reports why it failed.
	// It returns nil for a valid launch and an error wrapping
	// launch.ErrMalformedParams, launch.ErrDuplicateSignature,
	// ErrMissingSignature, or ErrSignatureMismatch otherwise.
	Explain(method, uri, rawParams, consumerSecret string) error

	// VerifyLaunch verifies a launch whose consumer secret is looked up from
	// the oauth_consumer_key parameter through the configured SecretResolver.
	VerifyLaunch(ctx context.Context, method, uri, rawParams string) error
}
