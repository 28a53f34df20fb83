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

package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lti-tools/lti-go/pkg/launch"
	"github.com/lti-tools/lti-go/pkg/signer"
	"github.com/lti-tools/lti-go/pkg/verifier"
)

const (
	testConsumerKey    = "canvas-prod"
	testConsumerSecret = "s3cr3t"
)

func newTestMiddleware() *LTIAuthMiddleware {
	resolver := verifier.NewStaticSecretResolver(map[string]string{
		testConsumerKey: testConsumerSecret,
	})
	return NewLTIAuthMiddleware(resolver)
}

// signedLaunchBody returns a signed form-encoded launch body for the given
// launch URL
func signedLaunchBody(t *testing.T, launchURL string) string {
	t.Helper()

	s := signer.NewDefaultLaunchSigner()
	params := launch.ParameterSet{
		{Key: "lti_message_type", Value: "basic-lti-launch-request"},
		{Key: "lti_version", Value: "LTI-1p0"},
		{Key: "resource_link_id", Value: "rl-1"},
		{Key: "user_id", Value: "u-1"},
	}
	signed, err := s.SignLaunch("POST", launchURL, params, testConsumerKey, testConsumerSecret, nil)
	require.NoError(t, err)
	return signed.Encode()
}

func postLaunch(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLTIAuthMiddleware_ValidLaunch(t *testing.T) {
	// Setup
	m := newTestMiddleware()

	var gotParams launch.ParameterSet
	var gotKey string
	var gotBody string
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParams, _ = LaunchFromContext(r.Context())
		gotKey, _ = ConsumerKeyFromContext(r.Context())
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))

	body := signedLaunchBody(t, "http://tool.example.com/lti_launch")
	req := postLaunch("http://tool.example.com/lti_launch", body)
	rec := httptest.NewRecorder()

	// Execute
	handler.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testConsumerKey, gotKey)
	assert.NotEmpty(t, gotParams)
	userID, _ := gotParams.First("user_id")
	assert.Equal(t, "u-1", userID)
	// Body preserved for the handler
	assert.Equal(t, body, gotBody)
}

func TestLTIAuthMiddleware_TamperedLaunch(t *testing.T) {
	m := newTestMiddleware()
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a tampered launch")
	}))

	body := signedLaunchBody(t, "http://tool.example.com/lti_launch")
	body = strings.Replace(body, "user_id=u-1", "user_id=u-2", 1)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, postLaunch("http://tool.example.com/lti_launch", body))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLTIAuthMiddleware_WrongURL(t *testing.T) {
	m := newTestMiddleware()
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	// Signed for a different path than the request targets.
	body := signedLaunchBody(t, "http://tool.example.com/other_path")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, postLaunch("http://tool.example.com/lti_launch", body))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLTIAuthMiddleware_UnknownConsumer(t *testing.T) {
	m := NewLTIAuthMiddleware(verifier.NewStaticSecretResolver(nil))
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	body := signedLaunchBody(t, "http://tool.example.com/lti_launch")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, postLaunch("http://tool.example.com/lti_launch", body))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLTIAuthMiddleware_MissingSignature(t *testing.T) {
	m := newTestMiddleware()
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, postLaunch("http://tool.example.com/lti_launch", "oauth_consumer_key=canvas-prod&user_id=u-1"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLTIAuthMiddleware_WrongContentType(t *testing.T) {
	m := newTestMiddleware()
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodPost, "http://tool.example.com/lti_launch", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLTIAuthMiddleware_GetLaunch(t *testing.T) {
	// GET launches carry the signed parameters in the query string.
	m := newTestMiddleware()

	s := signer.NewDefaultLaunchSigner()
	params := launch.ParameterSet{{Key: "resource_link_id", Value: "rl-1"}}
	signed, err := s.SignLaunch("GET", "http://tool.example.com/lti_launch", params, testConsumerKey, testConsumerSecret, nil)
	require.NoError(t, err)

	var called bool
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "http://tool.example.com/lti_launch?"+signed.Encode(), nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestLTIAuthMiddleware_Optional(t *testing.T) {
	m := newTestMiddleware()
	m.SetOptional(true)

	var called bool
	var hasLaunch bool
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, hasLaunch = LaunchFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, postLaunch("http://tool.example.com/lti_launch", "plain=form&no=signature"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.False(t, hasLaunch)
}

func TestLTIAuthMiddleware_OptionalStillVerifiesSignedLaunches(t *testing.T) {
	m := newTestMiddleware()
	m.SetOptional(true)

	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a bad signature")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, postLaunch("http://tool.example.com/lti_launch", "oauth_consumer_key=canvas-prod&oauth_signature=forged"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLTIAuthMiddleware_OptionsPassThrough(t *testing.T) {
	m := newTestMiddleware()

	var called bool
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "http://tool.example.com/lti_launch", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.True(t, called)
}

func TestLTIAuthMiddleware_BaseURLOverride(t *testing.T) {
	// Signed for the public https URL, received over plain http behind a
	// reverse proxy.
	m := newTestMiddleware()
	m.SetBaseURL("https://tool.example.com")

	var called bool
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	body := signedLaunchBody(t, "https://tool.example.com/lti_launch")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, postLaunch("http://internal-host:8080/lti_launch", body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestLTIAuthMiddleware_CustomErrorHandler(t *testing.T) {
	m := newTestMiddleware()
	m.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
		http.Error(w, "go away", http.StatusForbidden)
	})

	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, postLaunch("http://tool.example.com/lti_launch", "no=signature"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "go away")
}
