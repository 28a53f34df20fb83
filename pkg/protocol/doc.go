// Package protocol models the LTI 1.x basic launch message.
//
// An LTI launch is the signed request by which a learning platform (the Tool
// Consumer) hands control to a tool (the Tool Provider), carrying identity
// and context parameters. This package gives those parameters a typed shape
// once the launch signature has been verified.
//
// # Reading a Verified Launch
//
//	params, err := launch.Parse(rawBody)
//	if err != nil {
//	    // reject
//	}
//	req := protocol.FromParams(params)
//	if err := req.Validate(); err != nil {
//	    // not a basic launch
//	}
//
//	if req.HasRole(protocol.RoleInstructor) {
//	    // show authoring UI
//	}
//
// Only verify-then-read is safe: nothing in these parameters can be trusted
// before the oauth_signature check in the verifier package has passed.
//
// # Building a Launch
//
// Tool Consumers construct a LaunchRequest, serialize it with Params, and
// sign it:
//
//	req := &protocol.LaunchRequest{
//	    MessageType:    protocol.MessageTypeBasicLaunch,
//	    Version:        protocol.LTIVersion1p0,
//	    ResourceLinkID: "course-42-assignment-7",
//	    UserID:         "user-1",
//	    Roles:          []string{protocol.RoleLearner},
//	}
//
//	signed, err := s.SignLaunch("POST", launchURL, req.Params(), key, secret, nil)
//
// Custom and extension parameters use the LTI custom_ and ext_ prefixes on
// the wire and appear in the Custom and Extensions maps without them.
package protocol
