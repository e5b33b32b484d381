package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	ctx = WithOperation(ctx, "play")
	ctx = WithComponent(ctx, "driver")
	ctx = WithSessionID(ctx, "abc-123")
	ctx = WithPlayer(ctx, "ADA")

	assert.Equal(t, "play", GetOperation(ctx))
	assert.Equal(t, "driver", GetComponent(ctx))
	assert.Equal(t, "abc-123", GetSessionID(ctx))
	assert.Equal(t, "ADA", GetPlayer(ctx))
}

func TestMissingValues(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetOperation(ctx))
	assert.Empty(t, GetComponent(ctx))
	assert.Empty(t, GetSessionID(ctx))
	assert.Empty(t, GetPlayer(ctx))
}

func TestExtractContextFields(t *testing.T) {
	t.Run("extracts set fields in order", func(t *testing.T) {
		ctx := WithPlayer(WithSessionID(NewComponentContext("play", "console"), "s-1"), "ADA")

		fields := ExtractContextFields(ctx)

		assert.Equal(t, []any{
			"operation", "play",
			"component", "console",
			"session_id", "s-1",
			"player", "ADA",
		}, fields)
	})

	t.Run("skips empty fields", func(t *testing.T) {
		fields := ExtractContextFields(NewOperationContext("words"))

		assert.Equal(t, []any{"operation", "words"}, fields)
	})

	t.Run("empty context yields no fields", func(t *testing.T) {
		assert.Empty(t, ExtractContextFields(context.Background()))
	})
}
