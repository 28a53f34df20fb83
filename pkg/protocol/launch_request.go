package protocol

import (
	"sort"
	"strings"

	"github.com/lti-tools/lti-go/pkg/launch"
)

// MessageTypeBasicLaunch is the lti_message_type of a basic launch request
const MessageTypeBasicLaunch = "basic-lti-launch-request"

// LTIVersion1p0 is the lti_version sent by LTI 1.x Tool Consumers
const LTIVersion1p0 = "LTI-1p0"

// Well-known LTI role names, sent in the comma-separated roles parameter
const (
	RoleInstructor    = "Instructor"
	RoleLearner       = "Learner"
	RoleAdministrator = "Administrator"
)

// LaunchRequest is a typed view of a basic LTI launch request.
// A launch carries identity and context parameters from the Tool Consumer
// (the LMS) to the Tool Provider; after signature verification these
// parameters can be trusted.
type LaunchRequest struct {
	// MessageType is the lti_message_type parameter
	// Basic launches use "basic-lti-launch-request"
	MessageType string

	// Version is the lti_version parameter, e.g. "LTI-1p0"
	Version string

	// ResourceLinkID uniquely identifies the placement of the tool within
	// the consumer; it is the only launch parameter LTI makes mandatory
	ResourceLinkID string

	// ResourceLinkTitle is the human-readable title of the placement
	ResourceLinkTitle string

	// UserID is an opaque identifier for the launching user
	UserID string

	// Roles holds the user's roles in the launch context
	Roles []string

	// ContextID identifies the course or other grouping the launch
	// originates from
	ContextID string

	// ContextLabel is the short name of the context
	ContextLabel string

	// ContextTitle is the full name of the context
	ContextTitle string

	// PresentationTarget is the launch_presentation_document_target
	// parameter ("iframe" or "window")
	PresentationTarget string

	// PresentationLocale is the launch_presentation_locale parameter
	PresentationLocale string

	// PresentationReturnURL is where the tool can send the user when done
	PresentationReturnURL string

	// ConsumerInstanceGUID globally identifies the Tool Consumer instance
	ConsumerInstanceGUID string

	// ConsumerInstanceName is the human-readable consumer instance name
	ConsumerInstanceName string

	// ConsumerProductFamily is the tool_consumer_info_product_family_code
	// parameter, e.g. "canvas" or "moodle"
	ConsumerProductFamily string

	// Custom holds custom_ parameters, keyed without the prefix
	Custom map[string]string

	// Extensions holds ext_ parameters, keyed without the prefix
	Extensions map[string]string
}

// roleSeparator splits the roles launch parameter
const roleSeparator = ","

const (
	customPrefix = "custom_"
	extPrefix    = "ext_"
	oauthPrefix  = "oauth_"
)

// FromParams builds a LaunchRequest from a verified parameter set. OAuth
// protocol parameters are transport concerns and are skipped; custom_ and
// ext_ parameters land in Custom and Extensions with their prefixes removed.
func FromParams(ps launch.ParameterSet) *LaunchRequest {
	req := &LaunchRequest{}

	fields := map[string]*string{
		"lti_message_type":                       &req.MessageType,
		"lti_version":                            &req.Version,
		"resource_link_id":                       &req.ResourceLinkID,
		"resource_link_title":                    &req.ResourceLinkTitle,
		"user_id":                                &req.UserID,
		"context_id":                             &req.ContextID,
		"context_label":                          &req.ContextLabel,
		"context_title":                          &req.ContextTitle,
		"launch_presentation_document_target":    &req.PresentationTarget,
		"launch_presentation_locale":             &req.PresentationLocale,
		"launch_presentation_return_url":         &req.PresentationReturnURL,
		"tool_consumer_instance_guid":            &req.ConsumerInstanceGUID,
		"tool_consumer_instance_name":            &req.ConsumerInstanceName,
		"tool_consumer_info_product_family_code": &req.ConsumerProductFamily,
	}

	for _, p := range ps {
		if dst, ok := fields[p.Key]; ok {
			*dst = p.Value
			continue
		}
		switch {
		case p.Key == "roles":
			req.Roles = splitRoles(p.Value)
		case strings.HasPrefix(p.Key, customPrefix):
			if req.Custom == nil {
				req.Custom = make(map[string]string)
			}
			req.Custom[strings.TrimPrefix(p.Key, customPrefix)] = p.Value
		case strings.HasPrefix(p.Key, extPrefix):
			if req.Extensions == nil {
				req.Extensions = make(map[string]string)
			}
			req.Extensions[strings.TrimPrefix(p.Key, extPrefix)] = p.Value
		}
	}
	return req
}

// Params serializes the request back into launch parameters, ready for
// signing with signer.SignLaunch. Zero-valued fields are omitted.
func (r *LaunchRequest) Params() launch.ParameterSet {
	var ps launch.ParameterSet

	add := func(key, value string) {
		if value != "" {
			ps = append(ps, launch.Parameter{Key: key, Value: value})
		}
	}

	add("lti_message_type", r.MessageType)
	add("lti_version", r.Version)
	add("resource_link_id", r.ResourceLinkID)
	add("resource_link_title", r.ResourceLinkTitle)
	add("user_id", r.UserID)
	add("roles", strings.Join(r.Roles, roleSeparator))
	add("context_id", r.ContextID)
	add("context_label", r.ContextLabel)
	add("context_title", r.ContextTitle)
	add("launch_presentation_document_target", r.PresentationTarget)
	add("launch_presentation_locale", r.PresentationLocale)
	add("launch_presentation_return_url", r.PresentationReturnURL)
	add("tool_consumer_instance_guid", r.ConsumerInstanceGUID)
	add("tool_consumer_instance_name", r.ConsumerInstanceName)
	add("tool_consumer_info_product_family_code", r.ConsumerProductFamily)

	for _, key := range sortedKeys(r.Custom) {
		add(customPrefix+key, r.Custom[key])
	}
	for _, key := range sortedKeys(r.Extensions) {
		add(extPrefix+key, r.Extensions[key])
	}
	return ps
}

// HasRole reports whether the launching user holds the given role. LTI role
// names are matched verbatim, including urn: forms.
func (r *LaunchRequest) HasRole(role string) bool {
	for _, have := range r.Roles {
		if have == role {
			return true
		}
	}
	return false
}

// Validate performs basic validation of the launch request
func (r *LaunchRequest) Validate() error {
	if r.MessageType != MessageTypeBasicLaunch {
		return ErrInvalidLaunchRequest{"lti_message_type must be " + MessageTypeBasicLaunch}
	}
	if r.Version == "" {
		return ErrInvalidLaunchRequest{"lti_version is required"}
	}
	if r.ResourceLinkID == "" {
		return ErrInvalidLaunchRequest{"resource_link_id is required"}
	}
	return nil
}

// ErrInvalidLaunchRequest is returned when a launch request is invalid
type ErrInvalidLaunchRequest struct {
	Message string
}

func (e ErrInvalidLaunchRequest) Error() string {
	return "invalid launch request: " + e.Message
}

func splitRoles(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, roleSeparator)
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			roles = append(roles, p)
		}
	}
	return roles
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Deterministic parameter order keeps signed launches reproducible.
	sort.Strings(keys)
	return keys
}
