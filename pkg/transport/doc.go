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

// Package transport provides an http.RoundTripper that signs outgoing LTI
// launches transparently.
//
// Where pkg/client offers explicit launch methods, the transport hooks into
// the standard net/http plumbing instead, so existing code that already
// builds its own requests gains launch signing without restructuring:
//
//	t := transport.NewSigningTransport(consumerKey, consumerSecret, nil)
//	httpClient := t.Client()
//
//	resp, err := httpClient.PostForm(launchURL, values)
//
// Form-encoded POST bodies are parsed, signed with the shared secret, and
// re-encoded with oauth_signature appended; other requests get their query
// string signed the same way. The signature covers the request method and
// the URL without its query, matching what a Tool Provider reconstructs on
// the receiving side.
//
// Requests whose parameters cannot be parsed, or that already carry an
// oauth_signature, fail rather than going out half-signed.
package transport
