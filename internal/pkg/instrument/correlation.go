package instrument

import "context"

const invalidCorrelationID = "[invalid_chain_id]"

type correlationKey struct{}

// SetCorrelationID stores the correlation ID on the context.
func SetCorrelationID(ctx context.Context, cID string) context.Context {
	return context.WithValue(ctx, correlationKey{}, cID)
}

// GetCorrelationID returns the correlation ID stored on the context, or
// "[invalid_chain_id]" when none is set.
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return invalidCorrelationID
	}
	if cID, ok := ctx.Value(correlationKey{}).(string); ok && cID != "" {
		return cID
	}
	return invalidCorrelationID
}
