package llm

import "context"

type purposeKey struct{}

// UnknownPurpose labels requests made without WithPurpose.
const UnknownPurpose = "unknown"

// WithPurpose tags ctx with what the request is for ("themed-workout",
// "practice-drill"). The logging decorator records it.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return UnknownPurpose
}
