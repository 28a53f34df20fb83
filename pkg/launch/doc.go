// Package launch implements the parameter handling layer of LTI 1.x launch
// signing: strict OAuth percent encoding, order-preserving parsing of
// www-form-urlencoded parameter strings, normalization into the canonical
// parameter string, and extraction of the oauth_signature parameter.
//
// # Parameters
//
// Launch parameters form an ordered multiset: duplicate keys are legal and are
// kept as separate entries, and insertion order is preserved by Parse. All
// operations in this package work on copies and never mutate caller-owned
// ParameterSet values.
//
// # Percent Encoding
//
// PercentEncode implements the encoding required by OAuth Core 1.0 section 5.1,
// which leaves only the RFC 3986 unreserved characters unescaped:
//
//	ALPHA / DIGIT / "-" / "." / "_" / "~"
//
// This is stricter than url.QueryEscape, which also leaves characters such as
// '*' unescaped. Using a generic URL encoder here produces signatures that a
// conforming Tool Consumer will reject.
//
// # Normalization
//
// Normalize produces the canonical parameter string used in the OAuth base
// string: parameters sorted by raw key (stable, so equal keys keep their
// relative order), each key and value percent encoded, joined as "k=v" pairs
// with "&". The same multiset of parameters normalizes to the same string
// regardless of input order:
//
//	params, err := launch.Parse("b=2&a=1&a=%20")
//	if err != nil {
//	    // reject the launch
//	}
//	canonical := launch.Normalize(params) // "a=1&a=%20&b=2"
//
// # Signature Extraction
//
// ExtractSignature returns a copy of the set with the oauth_signature
// parameter removed together with the claimed signature value. A parameter
// string carrying more than one oauth_signature entry is rejected with
// ErrDuplicateSignature rather than silently picking one of them.
package launch
