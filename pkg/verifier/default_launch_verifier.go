// Copyright (C) 2026 LTI Tools Project
//
// This file is part of lti-go.
//
// lti-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// lti-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with lti-go.  If not, see <https://www.gnu.org/licenses/>.

package verifier

import (
	"context"
	"crypto/hmac"
	"fmt"

	"github.com/lti-tools/lti-go/pkg/launch"
	"github.com/lti-tools/lti-go/pkg/signer"
)

// DefaultLaunchVerifier implements LaunchVerifier by recomputing the OAuth
// HMAC-SHA1 signature a conforming Tool Consumer would have produced and
// comparing it with the claimed one
type DefaultLaunchVerifier struct {
	signer   signer.LaunchSigner
	resolver SecretResolver
}

// NewDefaultLaunchVerifier creates a verifier for callers that supply the
// consumer secret directly (Verify / Explain). VerifyLaunch requires a
// resolver; use NewDefaultLaunchVerifierWithResolver instead.
func NewDefaultLaunchVerifier() *DefaultLaunchVerifier {
	return &DefaultLaunchVerifier{
		signer: signer.NewDefaultLaunchSigner(),
	}
}

// NewDefaultLaunchVerifierWithResolver creates a verifier that resolves
// consumer secrets from the launch's oauth_consumer_key
func NewDefaultLaunchVerifierWithResolver(resolver SecretResolver) *DefaultLaunchVerifier {
	return &DefaultLaunchVerifier{
		signer:   signer.NewDefaultLaunchSigner(),
		resolver: resolver,
	}
}

// Verify checks an inbound launch against its embedded oauth_signature.
//
// It fails closed: whatever goes wrong (unparseable parameters, missing or
// duplicated signature, mismatch) the result is false. Callers that need the
// reason should use Explain; a false result must always be treated as an
// invalid launch, never as inconclusive.
func (v *DefaultLaunchVerifier) Verify(method, uri, rawParams, consumerSecret string) bool {
	return v.Explain(method, uri, rawParams, consumerSecret) == nil
}

// Explain verifies like Verify but returns the failure cause. The error
// wraps launch.ErrMalformedParams, launch.ErrDuplicateSignature,
// ErrMissingSignature, or ErrSignatureMismatch; nil means the launch is
// valid.
func (v *DefaultLaunchVerifier) Explain(method, uri, rawParams, consumerSecret string) error {
	params, err := launch.Parse(rawParams)
	if err != nil {
		return err
	}

	rest, claimed, found, err := launch.ExtractSignature(params)
	if err != nil {
		return err
	}
	if !found {
		return ErrMissingSignature
	}

	expected := v.signer.Signature(method, uri, launch.Normalize(rest), consumerSecret, "")
	if !hmac.Equal([]byte(expected), []byte(claimed)) {
		return ErrSignatureMismatch
	}
	return nil
}

// VerifyLaunch verifies a launch whose consumer secret is resolved from its
// oauth_consumer_key parameter
func (v *DefaultLaunchVerifier) VerifyLaunch(ctx context.Context, method, uri, rawParams string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if v.resolver == nil {
		return fmt.Errorf("secret resolver not configured")
	}

	params, err := launch.Parse(rawParams)
	if err != nil {
		return err
	}

	consumerKey, ok := params.First("oauth_consumer_key")
	if !ok {
		return fmt.Errorf("%w: no oauth_consumer_key parameter", ErrUnknownConsumer)
	}

	secret, err := v.resolver.ResolveConsumerSecret(ctx, consumerKey)
	if err != nil {
		return fmt.Errorf("failed to resolve consumer secret: %w", err)
	}

	return v.Explain(method, uri, rawParams, secret)
}
