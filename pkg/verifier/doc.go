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

// Package verifier validates inbound LTI launch requests.
//
// Verification duplicates the process the Tool Consumer used to produce the
// oauth_signature parameter and compares results, which proves the launch
// parameters were signed by a holder of the shared consumer secret and were
// not altered in transit.
//
// # Verifying a Launch
//
// The common case is a known consumer secret and the raw form-encoded body
// of the launch POST:
//
//	v := verifier.NewDefaultLaunchVerifier()
//	valid := v.Verify("POST", "https://tool.example.com/lti_launch", rawBody, consumerSecret)
//	if !valid {
//	    // reject the request
//	}
//
// Verify fails closed: malformed parameters, a missing signature, or a
// mismatch all yield false. Nothing in a false result is retryable — the
// computation is deterministic, so the launch is simply invalid.
//
// # Failure Reasons
//
// Handlers that want to log why a launch was rejected can use Explain, which
// returns nil for a valid launch or a sentinel-wrapped error:
//
//	err := v.Explain(method, uri, rawBody, secret)
//	switch {
//	case err == nil:
//	    // valid
//	case errors.Is(err, launch.ErrMalformedParams):
//	case errors.Is(err, verifier.ErrMissingSignature):
//	case errors.Is(err, verifier.ErrSignatureMismatch):
//	}
//
// The boolean Verify is the trust boundary; Explain is a developer-facing
// convenience layered on the same computation.
//
// # Resolving Consumer Secrets
//
// Multi-tenant Tool Providers do not know the secret up front; they look it
// up from the launch's oauth_consumer_key. Implement SecretResolver over
// your registration store and use VerifyLaunch:
//
//	resolver := verifier.NewStaticSecretResolver(map[string]string{
//	    "canvas-prod": "s3cr3t",
//	})
//	v := verifier.NewDefaultLaunchVerifierWithResolver(resolver)
//
//	err := v.VerifyLaunch(ctx, "POST", launchURL, rawBody)
//
// Secret storage and rotation live behind the resolver; the verifier only
// uses the returned secret as HMAC key material and never logs it.
//
// # Replay Protection
//
// This package proves integrity and authenticity only. Checking
// oauth_timestamp freshness and oauth_nonce uniqueness is the caller's
// responsibility, since both require state this package does not keep.
package verifier
