package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZerologLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(&buf, "warn")

	ctx := context.Background()
	log.Info(ctx, "should be suppressed")
	log.Warn(ctx, "visible warning", "view", "users")

	out := buf.String()
	assert.NotContains(t, out, "should be suppressed")
	assert.Contains(t, out, "visible warning")
	assert.Contains(t, out, "users")
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(&buf, "info").With("component", "api")

	log.Info(context.Background(), "request sent")
	assert.Contains(t, buf.String(), "api")
}

func TestPairs_OddArgs(t *testing.T) {
	m := pairs([]any{"a", 1, "dangling"})
	assert.Equal(t, 1, m["a"])
	assert.Equal(t, "dangling", m["!BADKEY"])
}
