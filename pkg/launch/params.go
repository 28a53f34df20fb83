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

// SignatureParam is the reserved OAuth parameter carrying the launch
// signature. It is never included in the normalized parameter string.
const SignatureParam = "oauth_signature"

// Parameter is a single launch parameter. Keys are not unique within a
// launch; repeated keys are distinct parameters.
type Parameter struct {
	Key   string
	Value string
}

// ParameterSet is an ordered sequence of parameters as received from the
// wire. The zero value is an empty set.
type ParameterSet []Parameter

// Clone returns an independent copy of the set.
func (ps ParameterSet) Clone() ParameterSet {
	if ps == nil {
		return nil
	}
	out := make(ParameterSet, len(ps))
	copy(out, ps)
	return out
}

// Add returns a new set with the given parameter appended. The receiver is
// not modified.
func (ps ParameterSet) Add(key, value string) ParameterSet {
	out := make(ParameterSet, len(ps), len(ps)+1)
	copy(out, ps)
	return append(out, Parameter{Key: key, Value: value})
}

// First returns the value of the first parameter with the given key, and
// whether such a parameter exists.
func (ps ParameterSet) First(key string) (string, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Values returns the values of every parameter with the given key, in set
// order. It returns nil when the key is absent.
func (ps ParameterSet) Values(key string) []string {
	var out []string
	for _, p := range ps {
		if p.Key == key {
			out = append(out, p.Value)
		}
	}
	return out
}

// Encode serializes the set as a www-form-urlencoded string in set order.
// The result parses back to an equal set via Parse.
func (ps ParameterSet) Encode() string {
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(PercentEncode(p.Key))
		b.WriteByte('=')
		b.WriteString(PercentEncode(p.Value))
	}
	return b.String()
}

// ExtractSignature scans ps for the oauth_signature parameter and returns a
// copy with every such parameter removed, together with the claimed signature
// value. The input set is never mutated. found is false when no signature
// parameter is present, in which case rest is a full copy of ps.
//
// More than one oauth_signature parameter makes the launch ambiguous; it is
// rejected with ErrDuplicateSignature rather than resolved by position.
func ExtractSignature(ps ParameterSet) (rest ParameterSet, sig string, found bool, err error) {
	rest = make(ParameterSet, 0, len(ps))
	for _, p := range ps {
		if p.Key != SignatureParam {
			rest = append(rest, p)
			continue
		}
		if found {
			return nil, "", false, ErrDuplicateSignature
		}
		sig = p.Value
		found = true
	}
	return rest, sig, found, nil
}
