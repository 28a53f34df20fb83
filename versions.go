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

// Package ltigo provides version information for lti-go and the standards it implements.
package ltigo

const (
	// Version is the current version of lti-go
	Version = "1.0.0"

	// LTIVersion is the LTI specification version this library targets
	// See: https://www.imsglobal.org/activity/learning-tools-interoperability
	LTIVersion = "LTI-1p0"

	// OAuthVersion is the OAuth Core version used for launch signing
	// See: https://oauth.net/core/1.0/
	OAuthVersion = "1.0"

	// SignatureMethod is the only signature method supported for launches
	SignatureMethod = "HMAC-SHA1"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	LTIGoVersion    string
	LTIVersion      string
	OAuthVersion    string
	SignatureMethod string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		LTIGoVersion:    Version,
		LTIVersion:      LTIVersion,
		OAuthVersion:    OAuthVersion,
		SignatureMethod: SignatureMethod,
	}
}
