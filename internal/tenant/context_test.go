package tenant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCode(t *testing.T) {
	ctx := WithCode(context.Background(), "CAABC123")

	code, ok := CodeFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "CAABC123", code)
}

func TestWithCode_EmptyNotStored(t *testing.T) {
	ctx := WithCode(context.Background(), "")

	_, ok := CodeFromContext(ctx)
	assert.False(t, ok)
}

func TestCodeFromContext_Absent(t *testing.T) {
	code, ok := CodeFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, code)
}

func TestWithCode_DoesNotLeakBetweenContexts(t *testing.T) {
	base := context.Background()
	ctxA := WithCode(base, "CAFIRM01")
	ctxB := WithCode(base, "CAFIRM02")

	codeA, _ := CodeFromContext(ctxA)
	codeB, _ := CodeFromContext(ctxB)
	assert.Equal(t, "CAFIRM01", codeA)
	assert.Equal(t, "CAFIRM02", codeB)

	_, ok := CodeFromContext(base)
	assert.False(t, ok)
}
