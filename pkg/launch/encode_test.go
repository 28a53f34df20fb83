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
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentEncode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "unreserved characters pass through",
			input: "abcXYZ019-._~",
			want:  "abcXYZ019-._~",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "space is escaped, not plus",
			input: "a b",
			want:  "a%20b",
		},
		{
			name:  "reserved punctuation",
			input: "k=v&k2=v2",
			want:  "k%3Dv%26k2%3Dv2",
		},
		{
			name:  "characters a generic encoder leaves bare",
			input: "*!'()",
			want:  "%2A%21%27%28%29",
		},
		{
			name:  "multi-byte UTF-8 encodes per byte",
			input: "café",
			want:  "caf%C3%A9",
		},
		{
			name:  "uppercase hex digits",
			input: "\x0f\xff",
			want:  "%0F%FF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentEncode(tt.input))
		})
	}
}

func TestPercentEncode_StricterThanQueryEscape(t *testing.T) {
	// url.QueryEscape leaves '*' unescaped and turns ' ' into '+'; both are
	// wrong for OAuth signature material.
	input := "a b~_.-*"

	got := PercentEncode(input)

	assert.Equal(t, "a%20b~_.-%2A", got)
	assert.NotEqual(t, url.QueryEscape(input), got)
}
