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

import "strings"

const upperhex = "0123456789ABCDEF"

// isUnreserved reports whether b is in the RFC 3986 section 2.3 unreserved
// set. Only these bytes survive PercentEncode unescaped, as required by
// OAuth Core 1.0 section 5.1.
func isUnreserved(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '-' || b == '.' || b == '_' || b == '~'
}

// PercentEncode encodes s for use in OAuth signature material. Every byte
// outside the RFC 3986 unreserved set becomes %XX with uppercase hex digits;
// multi-byte UTF-8 sequences encode byte by byte. Note this is stricter than
// url.QueryEscape, which leaves bytes like '*' and '!' unescaped and encodes
// ' ' as '+'; either difference breaks signature compatibility.
func PercentEncode(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}
