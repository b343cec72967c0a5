package lvglm_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvglm"
)

// TestLogger_DefaultIsSilent verifies that the default logger discards everything.
func TestLogger_DefaultIsSilent(t *testing.T) {
	lvglm.SetLogger(nil)
	l := lvglm.Logger()
	require.NotNil(t, l)
	require.False(t, l.Enabled(context.Background(), slog.LevelError))
}

// TestLogger_SetAndRestore checks that a configured logger receives records
// and that nil restores the silent default.
func TestLogger_SetAndRestore(t *testing.T) {
	var buf bytes.Buffer
	lvglm.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { lvglm.SetLogger(nil) })

	lvglm.Logger().Debug("ping", "k", 1)
	require.Contains(t, buf.String(), "msg=ping")
	require.Contains(t, buf.String(), "k=1")

	lvglm.SetLogger(nil)
	buf.Reset()
	lvglm.Logger().Debug("hidden")
	require.Empty(t, buf.String())
}
