// Package server provides HTTP middleware for inbound LTI launch verification.
//
// The middleware is the transport-facing collaborator of the verifier
// package: it pulls the method, launch URL, and raw parameter string out of
// an *http.Request, hands them to the core verification routine, and makes
// the verified parameters available to the wrapped handler. The core itself
// never touches HTTP.
//
// # Basic Usage
//
//	resolver := verifier.NewStaticSecretResolver(map[string]string{
//	    "canvas-prod": consumerSecret,
//	})
//	middleware := server.NewLTIAuthMiddleware(resolver)
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    params, _ := server.LaunchFromContext(r.Context())
//	    req := protocol.FromParams(params)
//	    fmt.Fprintf(w, "Hello %s", req.UserID)
//	})
//
//	http.Handle("/lti_launch", middleware.Wrap(handler))
//
// # How It Works
//
// For each request the middleware:
//
//  1. Skips OPTIONS requests (CORS preflight)
//  2. Takes the form-encoded body of a POST launch (or the query string of
//     a GET launch) as the raw parameter string, preserving the body for
//     the wrapped handler
//  3. Reconstructs the launch URL the Tool Consumer signed
//  4. Resolves the consumer secret from oauth_consumer_key and verifies the
//     oauth_signature; any failure yields 401 via the error handler
//  5. Stores the verified parameter set and consumer key in the request
//     context
//
// # Reverse Proxies
//
// The signed launch URL must match what the Tool Consumer used. When TLS
// terminates upstream, the reconstructed scheme and host are wrong; pin them
// with SetBaseURL:
//
//	middleware.SetBaseURL("https://tool.example.com")
//
// # Optional Verification and Error Handling
//
//	middleware.SetOptional(true) // let unsigned requests through
//
//	middleware.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
//	    http.Error(w, "launch rejected", http.StatusForbidden)
//	})
//
//	middleware.SetLogger(logger) // zerolog; rejected launches at warn level
//
// Replay protection (timestamp and nonce bookkeeping) is intentionally not
// provided here; wrap the handler with your own nonce store if you need it.
package server
