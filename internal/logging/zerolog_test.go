package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologLogger_FieldsAndLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))
	ctx := context.Background()

	log.Debug(ctx, "dropped")
	log.With("component", "api").Warn(ctx, "slow", "status", 503, "err", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"component":"api"`)
	assert.Contains(t, out, `"status":503`)
	assert.Contains(t, out, `"err":"boom"`)
	assert.Contains(t, out, `"message":"slow"`)
}

func TestZerologLogger_OddArgs(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))
	log.Info(context.Background(), "odd", "lonely")
	assert.Contains(t, buf.String(), `"!BADKEY":"lonely"`)
}

func TestNew_SelectsImplementation(t *testing.T) {
	var buf bytes.Buffer
	assert.IsType(t, &ZerologLogger{}, New(FormatConsole, "info", &buf))
	assert.IsType(t, &SlogLogger{}, New(FormatJSON, "info", &buf))
	assert.IsType(t, &SlogLogger{}, New("whatever", "info", &buf))
}
