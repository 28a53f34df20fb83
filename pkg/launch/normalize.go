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
	"sort"
	"strings"
)

// Normalize builds the canonical parameter string from ps: parameters sorted
// by raw (decoded) key, each key and value percent encoded, joined as
// "key=value" pairs with '&'. The sort is stable, so parameters sharing a key
// keep their relative order and any permutation of the same multiset
// normalizes to the same string. ps must already exclude the oauth_signature
// parameter (see ExtractSignature); it is not mutated. An empty set yields "".
func Normalize(ps ParameterSet) string {
	sorted := ps.Clone()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})

	pairs := make([]string, len(sorted))
	for i, p := range sorted {
		pairs[i] = PercentEncode(p.Key) + "=" + PercentEncode(p.Value)
	}
	return strings.Join(pairs, "&")
}
