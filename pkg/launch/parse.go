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

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Parse decodes a www-form-urlencoded parameter string (the body of an LTI
// launch POST, equally valid as a URL query string) into a ParameterSet.
// Output order matches input order and repeated keys are preserved as
// separate parameters.
//
// Every non-empty segment must contain '='; '+' decodes to a space and %XX
// escapes are decoded. A segment without '=', an invalid escape, or a decoded
// key or value that is not valid UTF-8 fails the whole parse with an error
// wrapping ErrMalformedParams. Callers must reject the launch on error rather
// than drop the offending pair.
func Parse(raw string) (ParameterSet, error) {
	if raw == "" {
		return ParameterSet{}, nil
	}

	segments := strings.Split(raw, "&")
	ps := make(ParameterSet, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			// Tolerate empty segments such as a trailing '&'.
			continue
		}
		eq := strings.IndexByte(seg, '=')
		if eq < 0 {
			return nil, fmt.Errorf("%w: segment %q has no '='", ErrMalformedParams, seg)
		}
		key, err := url.QueryUnescape(seg[:eq])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedParams, err)
		}
		value, err := url.QueryUnescape(seg[eq+1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedParams, err)
		}
		if !utf8.ValidString(key) || !utf8.ValidString(value) {
			return nil, fmt.Errorf("%w: segment %q is not valid UTF-8", ErrMalformedParams, seg)
		}
		ps = append(ps, Parameter{Key: key, Value: value})
	}
	return ps, nil
}
