package logger

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/maze-solver/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("plain output", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("SOLVER", "", &buf)
		require.NoError(t, err)

		l.Info("ready")
		l.Warn("slow")
		l.Error("broken")

		out := buf.String()
		assert.Contains(t, out, "[SOLVER] [INFO] ready")
		assert.Contains(t, out, "[SOLVER] [WARN] slow")
		assert.Contains(t, out, "[SOLVER] [ERROR] broken")
	})

	t.Run("coloured output", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("API", config.ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("listening")
		assert.Contains(t, buf.String(), config.ColorCyan+"[API]"+config.LogColorReset)
		assert.Contains(t, buf.String(), "listening")
	})

	t.Run("nil writer", func(t *testing.T) {
		_, err := New("APP", "", nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})
}
