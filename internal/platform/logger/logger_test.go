package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger_MergesFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "nutrisnap", Out: &buf})

	l.With(map[string]any{"request_id": "r1"}).Info("plan computed", map[string]any{"goal": "lose", "err": errors.New("x")})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "nutrisnap", entry["app"])
	assert.Equal(t, "r1", entry["request_id"])
	assert.Equal(t, "lose", entry["goal"])
	assert.Equal(t, "x", entry["err"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "plan computed", entry["msg"])
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Out: &buf})

	l.Info("hidden", nil)
	l.Warn("shown", map[string]any{"k": 1})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg="shown"`)
	assert.Contains(t, out, "k=1")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestParse(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, FormatJSON, ParseFormat(" json "))
	assert.Equal(t, FormatText, ParseFormat("pretty"))
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Out: &buf})

	ctx := IntoContext(context.Background(), l)
	FromContext(ctx, nil).Info("from ctx", nil)
	assert.Contains(t, buf.String(), "from ctx")

	assert.NotNil(t, FromContext(context.Background(), nil))
}
