// Package client provides an HTTP client for the Tool Consumer side of LTI.
//
// The client signs launch parameter sets with the shared consumer secret and
// submits them to a Tool Provider's launch endpoint as form-encoded POST
// requests, the way an LMS does when a user opens an external tool.
//
// # Basic Usage
//
//	c := client.NewLaunchClient(consumerKey, consumerSecret, nil)
//
//	req := &protocol.LaunchRequest{
//	    MessageType:    protocol.MessageTypeBasicLaunch,
//	    Version:        protocol.LTIVersion1p0,
//	    ResourceLinkID: "course-42-assignment-7",
//	    UserID:         "user-1",
//	    Roles:          []string{protocol.RoleLearner},
//	}
//
//	resp, err := c.PostLaunchRequest(ctx, "https://tool.example.com/lti_launch", req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer resp.Body.Close()
//
// # Browser-Submitted Launches
//
// Real LMS launches are usually auto-submitted HTML forms in the user's
// browser, not server-to-server POSTs. SignParams returns the signed
// parameter set without sending it, ready to render into a form:
//
//	signed, err := c.SignParams(launchURL, params, nil)
//	// render signed as hidden <input> fields posting to launchURL
//
// # Custom HTTP Client
//
// Pass your own *http.Client to control timeouts, transports, or proxies;
// nil selects http.DefaultClient. All requests are context-aware.
package client
