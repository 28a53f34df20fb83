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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesOrderAndDuplicates(t *testing.T) {
	ps, err := Parse("b=2&a=1&b=3&a=1")

	require.NoError(t, err)
	assert.Equal(t, ParameterSet{
		{Key: "b", Value: "2"},
		{Key: "a", Value: "1"},
		{Key: "b", Value: "3"},
		{Key: "a", Value: "1"},
	}, ps)
}

func TestParse_DecodesEscapes(t *testing.T) {
	ps, err := Parse("context_title=Nick+Test+Course&return_url=https%3A%2F%2Fexample.com%2Fok&sig=HbE%3D")

	require.NoError(t, err)
	assert.Equal(t, ParameterSet{
		{Key: "context_title", Value: "Nick Test Course"},
		{Key: "return_url", Value: "https://example.com/ok"},
		{Key: "sig", Value: "HbE="},
	}, ps)
}

func TestParse_EmptyInput(t *testing.T) {
	ps, err := Parse("")

	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestParse_EmptyValuesAndKeys(t *testing.T) {
	ps, err := Parse("a=&=b&a=c&")

	require.NoError(t, err)
	assert.Equal(t, ParameterSet{
		{Key: "a", Value: ""},
		{Key: "", Value: "b"},
		{Key: "a", Value: "c"},
	}, ps)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "segment without equals", input: "a=1&b"},
		{name: "bare token", input: "launch"},
		{name: "truncated escape in value", input: "a=%2"},
		{name: "invalid hex in escape", input: "a=%zz"},
		{name: "invalid escape in key", input: "%G0=1"},
		{name: "escape decodes to invalid UTF-8", input: "a=%FF%FE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, err := Parse(tt.input)

			assert.Nil(t, ps)
			assert.ErrorIs(t, err, ErrMalformedParams)
		})
	}
}

func TestParameterSet_Clone(t *testing.T) {
	orig := ParameterSet{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}

	clone := orig.Clone()
	clone[0].Value = "changed"

	assert.Equal(t, "1", orig[0].Value)
}

func TestParameterSet_FirstAndValues(t *testing.T) {
	ps := ParameterSet{
		{Key: "roles", Value: "Instructor"},
		{Key: "roles", Value: "Administrator"},
	}

	v, ok := ps.First("roles")
	assert.True(t, ok)
	assert.Equal(t, "Instructor", v)

	_, ok = ps.First("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"Instructor", "Administrator"}, ps.Values("roles"))
	assert.Nil(t, ps.Values("missing"))
}

func TestParameterSet_EncodeRoundTrip(t *testing.T) {
	ps := ParameterSet{
		{Key: "a b", Value: "x&y"},
		{Key: "a b", Value: "z=w"},
		{Key: "café", Value: "*"},
	}

	parsed, err := Parse(ps.Encode())

	require.NoError(t, err)
	assert.Equal(t, ps, parsed)
}
