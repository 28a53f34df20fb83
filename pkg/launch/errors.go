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

package launch

import "errors"

var (
	// ErrMalformedParams indicates a parameter string that cannot be parsed:
	// a segment without '=', an invalid percent escape, or bytes that do not
	// decode to valid UTF-8. Callers must treat this as an invalid launch,
	// never as a pair to drop.
	ErrMalformedParams = errors.New("launch: malformed parameter string")

	// ErrDuplicateSignature indicates more than one oauth_signature parameter
	// in the same parameter set. The launch is ambiguous and must be rejected.
	ErrDuplicateSignature = errors.New("launch: multiple oauth_signature parameters")
)
