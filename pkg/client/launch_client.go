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

package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/lti-tools/lti-go/pkg/launch"
	"github.com/lti-tools/lti-go/pkg/protocol"
	"github.com/lti-tools/lti-go/pkg/signer"
)

// LaunchClient is an HTTP client that plays the Tool Consumer side of LTI:
// it signs launch parameter sets with the shared secret and POSTs them to a
// Tool Provider's launch endpoint
type LaunchClient struct {
	consumerKey    string
	consumerSecret string
	signer         signer.LaunchSigner
	httpClient     *http.Client
}

// NewLaunchClient creates a new LaunchClient with automatic launch signing
// If httpClient is nil, http.DefaultClient is used
func NewLaunchClient(consumerKey, consumerSecret string, httpClient *http.Client) *LaunchClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &LaunchClient{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		signer:         signer.NewDefaultLaunchSigner(),
		httpClient:     httpClient,
	}
}

// SignParams signs params for a POST to launchURL and returns the signed set
// without sending it. Useful when the launch is submitted by the user's
// browser (the usual LTI flow) rather than server-to-server.
func (c *LaunchClient) SignParams(launchURL string, params launch.ParameterSet, opts *signer.SigningOptions) (launch.ParameterSet, error) {
	signed, err := c.signer.SignLaunch(http.MethodPost, launchURL, params, c.consumerKey, c.consumerSecret, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to sign launch: %w", err)
	}
	return signed, nil
}

// PostLaunch signs params and POSTs them form-encoded to launchURL
func (c *LaunchClient) PostLaunch(ctx context.Context, launchURL string, params launch.ParameterSet) (*http.Response, error) {
	// Check context first
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	signed, err := c.SignParams(launchURL, params, nil)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, launchURL, strings.NewReader(signed.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create launch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	return resp, nil
}

// PostLaunchRequest validates and sends a typed launch request
func (c *LaunchClient) PostLaunchRequest(ctx context.Context, launchURL string, req *protocol.LaunchRequest) (*http.Response, error) {
	if req == nil {
		return nil, fmt.Errorf("launch request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid launch request: %w", err)
	}
	return c.PostLaunch(ctx, launchURL, req.Params())
}

// GetConsumerKey returns the consumer key
func (c *LaunchClient) GetConsumerKey() string {
	return c.consumerKey
}
