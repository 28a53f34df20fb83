package verifier

import (
	"context"
	"fmt"
)

// SecretResolver resolves the shared secret for an OAuth consumer key.
// Implementations typically back onto whatever store holds Tool Consumer
// registrations; resolution is the caller's trust decision, the verifier
// only uses the returned secret as HMAC key material.
type SecretResolver interface {
	// ResolveConsumerSecret returns the shared secret for consumerKey.
	// It returns an error (conventionally wrapping ErrUnknownConsumer) when
	// the consumer is not registered.
	ResolveConsumerSecret(ctx context.Context, consumerKey string) (string, error)
}

// StaticSecretResolver is a SecretResolver backed by a fixed in-memory map,
// useful for tests, examples, and single-consumer tools
type StaticSecretResolver struct {
	secrets map[string]string
}

// NewStaticSecretResolver creates a StaticSecretResolver from a map of
// consumer key to shared secret. The map is copied.
func NewStaticSecretResolver(secrets map[string]string) *StaticSecretResolver {
	copied := make(map[string]string, len(secrets))
	for k, v := range secrets {
		copied[k] = v
	}
	return &StaticSecretResolver{secrets: copied}
}

// ResolveConsumerSecret returns the configured secret for consumerKey
func (r *StaticSecretResolver) ResolveConsumerSecret(ctx context.Context, consumerKey string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	secret, ok := r.secrets[consumerKey]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownConsumer, consumerKey)
	}
	return secret, nil
}
