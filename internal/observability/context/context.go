// Package context carries game session fields through context.Context for structured logging.
package context

import (
	"context"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// OperationKey holds the current operation name
	OperationKey ContextKey = "operation"
	// ComponentKey holds the current component name
	ComponentKey ContextKey = "component"
	// SessionIDKey holds the identifier of the game being played
	SessionIDKey ContextKey = "session_id"
	// PlayerKey holds the player's name once known
	PlayerKey ContextKey = "player"
)

// WithOperation adds an operation name to the context.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, OperationKey, operation)
}

// WithComponent adds a component name to the context.
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, ComponentKey, component)
}

// WithSessionID adds a game session ID to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

// WithPlayer adds the player's name to the context.
func WithPlayer(ctx context.Context, player string) context.Context {
	return context.WithValue(ctx, PlayerKey, player)
}

// GetOperation retrieves the operation name from context.
func GetOperation(ctx context.Context) string {
	return stringValue(ctx, OperationKey)
}

// GetComponent retrieves the component name from context.
func GetComponent(ctx context.Context) string {
	return stringValue(ctx, ComponentKey)
}

// GetSessionID retrieves the session ID from context.
func GetSessionID(ctx context.Context) string {
	return stringValue(ctx, SessionIDKey)
}

// GetPlayer retrieves the player's name from context.
func GetPlayer(ctx context.Context) string {
	return stringValue(ctx, PlayerKey)
}

func stringValue(ctx context.Context, key ContextKey) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

// ExtractContextFields extracts the session fields for structured logging, in a fixed order.
func ExtractContextFields(ctx context.Context) []any {
	var fields []any
	for _, key := range []ContextKey{OperationKey, ComponentKey, SessionIDKey, PlayerKey} {
		if v := stringValue(ctx, key); v != "" {
			fields = append(fields, string(key), v)
		}
	}
	return fields
}

// NewOperationContext creates a root context for a specific operation.
func NewOperationContext(operation string) context.Context {
	return WithOperation(context.Background(), operation)
}

// NewComponentContext creates a context for a specific component operation.
func NewComponentContext(operation, component string) context.Context {
	return WithComponent(NewOperationContext(operation), component)
}
