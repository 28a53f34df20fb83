package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/lti-tools/lti-go/pkg/launch"
	"github.com/lti-tools/lti-go/pkg/verifier"
)

type contextKey string

const (
	launchParamsKey contextKey = "lti_launch_params"
	consumerKeyKey  contextKey = "lti_consumer_key"
)

// ErrorHandler handles verification errors
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// LTIAuthMiddleware provides HTTP middleware for LTI launch verification.
// It is the transport-facing collaborator of the verifier: it extracts the
// method, launch URL, and raw parameter string from the request and hands
// them to the core, which stays free of HTTP concerns.
type LTIAuthMiddleware struct {
	verifier     verifier.LaunchVerifier
	errorHandler ErrorHandler
	optional     bool
	baseURL      string
	logger       zerolog.Logger
}

// NewLTIAuthMiddleware creates middleware that resolves consumer secrets
// through the given resolver
func NewLTIAuthMiddleware(resolver verifier.SecretResolver) *LTIAuthMiddleware {
	return NewLTIAuthMiddlewareWithVerifier(verifier.NewDefaultLaunchVerifierWithResolver(resolver))
}

// NewLTIAuthMiddlewareWithVerifier creates middleware with a custom verifier
func NewLTIAuthMiddlewareWithVerifier(launchVerifier verifier.LaunchVerifier) *LTIAuthMiddleware {
	return &LTIAuthMiddleware{
		verifier:     launchVerifier,
		errorHandler: defaultErrorHandler,
		optional:     false,
		logger:       zerolog.Nop(),
	}
}

// SetErrorHandler sets a custom error handler
func (m *LTIAuthMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether launch verification is optional
// If true, requests carrying no oauth_signature parameter pass through
// unverified and without launch data in their context
func (m *LTIAuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// SetBaseURL overrides the scheme and host used to reconstruct the launch
// URL, e.g. "https://tool.example.com" when running behind a reverse proxy
// that terminates TLS. The request path is appended as-is.
func (m *LTIAuthMiddleware) SetBaseURL(baseURL string) {
	m.baseURL = baseURL
}

// SetLogger sets the logger used for rejected launches. The default logger
// discards everything. Parameter values and secrets are never logged.
func (m *LTIAuthMiddleware) SetLogger(logger zerolog.Logger) {
	m.logger = logger
}

// Wrap wraps an HTTP handler with LTI launch verification
func (m *LTIAuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		rawParams, bodyBytes, err := m.extractParams(r)
		if err != nil {
			m.reject(w, r, err)
			return
		}

		// Restore body for the handler
		if bodyBytes != nil {
			r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		params, parseErr := launch.Parse(rawParams)
		if m.optional && parseErr == nil {
			if _, ok := params.First(launch.SignatureParam); !ok {
				next.ServeHTTP(w, r)
				return
			}
		}

		ctx := r.Context()
		if err := m.verifier.VerifyLaunch(ctx, r.Method, m.launchURL(r), rawParams); err != nil {
			m.reject(w, r, err)
			return
		}

		// parseErr is nil here: verification parses the same string
		consumerKey, _ := params.First("oauth_consumer_key")
		ctx = context.WithValue(ctx, launchParamsKey, params)
		ctx = context.WithValue(ctx, consumerKeyKey, consumerKey)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractParams returns the raw parameter string the launch was signed over:
// the form-encoded body for POST launches, the query string otherwise. The
// consumed body bytes are returned so the caller can restore them.
func (m *LTIAuthMiddleware) extractParams(r *http.Request) (string, []byte, error) {
	if r.Method != http.MethodPost {
		return r.URL.RawQuery, nil, nil
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/x-www-form-urlencoded" {
		return "", nil, fmt.Errorf("launch must be form encoded, got %q", r.Header.Get("Content-Type"))
	}

	var bodyBytes []byte
	if r.Body != nil {
		bodyBytes, err = io.ReadAll(r.Body)
		r.Body.Close()
		if err != nil {
			return "", nil, fmt.Errorf("failed to read launch body: %w", err)
		}
	}
	return string(bodyBytes), bodyBytes, nil
}

// launchURL reconstructs the URL the Tool Consumer signed. Query parameters
// are not part of it; for GET launches they are the signed parameter set.
func (m *LTIAuthMiddleware) launchURL(r *http.Request) string {
	if m.baseURL != "" {
		return m.baseURL + r.URL.Path
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path
}

func (m *LTIAuthMiddleware) reject(w http.ResponseWriter, r *http.Request, err error) {
	m.logger.Warn().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("rejected LTI launch")
	m.errorHandler(w, r, err)
}

// LaunchFromContext extracts the verified launch parameters from the request
// context
func LaunchFromContext(ctx context.Context) (launch.ParameterSet, bool) {
	params, ok := ctx.Value(launchParamsKey).(launch.ParameterSet)
	return params, ok
}

// ConsumerKeyFromContext extracts the verified oauth_consumer_key from the
// request context
func ConsumerKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(consumerKeyKey).(string)
	return key, ok
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, "Unauthorized: invalid LTI launch", http.StatusUnauthorized)
}
