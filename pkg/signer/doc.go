// Package signer provides OAuth Core 1.0 request signing for LTI launches.
//
// This package implements the HMAC-SHA1 signature method that LTI 1.x uses
// to let a Tool Consumer (an LMS such as Canvas or Moodle) prove to a Tool
// Provider that launch parameters were produced by a holder of the shared
// consumer secret and have not been altered in transit.
//
// # Signing a Launch
//
// Use LaunchSigner to sign an outgoing launch parameter set:
//
//	s := signer.NewDefaultLaunchSigner()
//	params := launch.ParameterSet{
//	    {Key: "lti_message_type", Value: "basic-lti-launch-request"},
//	    {Key: "lti_version", Value: "LTI-1p0"},
//	    {Key: "resource_link_id", Value: "course-42-assignment-7"},
//	}
//
//	signed, err := s.SignLaunch("POST", "https://tool.example.com/lti_launch",
//	    params, consumerKey, consumerSecret, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// SignLaunch adds the oauth_consumer_key, oauth_signature_method,
// oauth_timestamp, oauth_nonce and oauth_version parameters when they are
// missing, then appends oauth_signature. The signed set is ready to send as
// an application/x-www-form-urlencoded POST body (see launch.ParameterSet.Encode).
//
// # Custom Signing Options
//
// Pin the timestamp and nonce for reproducible signatures, or supply an
// OAuth token secret:
//
//	opts := &signer.SigningOptions{
//	    Timestamp: 1514046098,
//	    Nonce:     "SsBR2Ml1DGJifxebOZdc599WcAVqoL2OMdaU3dF2QAo",
//	}
//
//	signed, err := s.SignLaunch(method, uri, params, key, secret, opts)
//
// # Base String Construction
//
// Signature is the low-level primitive. It builds the OAuth base string
//
//	encode(method) & encode(uri) & encode(normalized_params)
//
// where encode is the strict RFC 3986 unreserved-set percent encoding
// (launch.PercentEncode). The normalized parameter string was already
// percent encoded pair-by-pair; encoding it again as one unit is mandated
// by OAuth Core 1.0 section 9.1.3 and must not be "fixed". The signing key
// is
//
//	encode(consumer_secret) & encode(token_secret)
//
// with the token secret empty for launches. The HMAC-SHA1 digest is base64
// encoded with the standard alphabet and padding.
//
// Both operations are pure, deterministic, and safe for concurrent use; the
// signer holds no state and never logs or retains key material.
//
// The verifier package recomputes these signatures to validate inbound
// launches.
package signer
