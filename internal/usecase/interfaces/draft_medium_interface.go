package interfaces

import "context"

// IDraftMedium is the durable key-value slot drafts are written to.
//
// Get reports a missing key with ok=false and a nil error; absence is not a
// failure. Implementations: in-memory, Redis, DynamoDB.
type IDraftMedium interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
