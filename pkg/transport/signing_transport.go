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

package transport

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/lti-tools/lti-go/pkg/launch"
	"github.com/lti-tools/lti-go/pkg/signer"
)

// SigningTransport is an http.RoundTripper that signs outgoing LTI launch
// requests with OAuth 1.0 HMAC-SHA1. Form-encoded POST bodies are parsed,
// signed, and re-encoded; for other requests the query string is signed and
// rewritten. Wrap it into an *http.Client to make every launch it sends
// carry a valid oauth_signature.
type SigningTransport struct {
	consumerKey    string
	consumerSecret string
	signer         signer.LaunchSigner
	base           http.RoundTripper
}

// NewSigningTransport creates a SigningTransport
// If base is nil, http.DefaultTransport is used
func NewSigningTransport(consumerKey, consumerSecret string, base http.RoundTripper) *SigningTransport {
	if base == nil {
		base = http.DefaultTransport
	}

	return &SigningTransport{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		signer:         signer.NewDefaultLaunchSigner(),
		base:           base,
	}
}

// Client returns an *http.Client that signs every request through t
func (t *SigningTransport) Client() *http.Client {
	return &http.Client{Transport: t}
}

// RoundTrip signs the request and forwards it to the base transport. The
// caller's request is not modified, per the RoundTripper contract.
func (t *SigningTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	signed := req.Clone(req.Context())
	launchURL := launchURL(req)

	if isFormPost(req) {
		var raw string
		if req.Body != nil {
			body, err := io.ReadAll(req.Body)
			req.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("failed to read request body: %w", err)
			}
			raw = string(body)
		}

		params, err := launch.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("cannot sign request: %w", err)
		}
		signedParams, err := t.signer.SignLaunch(req.Method, launchURL, params, t.consumerKey, t.consumerSecret, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to sign launch: %w", err)
		}

		encoded := signedParams.Encode()
		signed.Body = io.NopCloser(strings.NewReader(encoded))
		signed.ContentLength = int64(len(encoded))
		signed.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(encoded)), nil
		}
		return t.base.RoundTrip(signed)
	}

	params, err := launch.Parse(req.URL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("cannot sign request: %w", err)
	}
	signedParams, err := t.signer.SignLaunch(req.Method, launchURL, params, t.consumerKey, t.consumerSecret, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sign launch: %w", err)
	}
	signed.URL.RawQuery = signedParams.Encode()
	return t.base.RoundTrip(signed)
}

func isFormPost(req *http.Request) bool {
	if req.Method != http.MethodPost {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}

// launchURL is the URL covered by the signature: scheme, host, and path,
// without the query string.
func launchURL(req *http.Request) string {
	u := *req.URL
	u.RawQuery = ""
	u.Fragment = ""
	if u.Host == "" {
		u.Host = req.Host
	}
	return u.String()
}
