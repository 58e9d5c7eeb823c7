package gif

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baduk-engine/sente/game"
	"github.com/baduk-engine/sente/game/goban"
)

func TestEncodeFlush(t *testing.T) {
	b, err := goban.New(5)
	require.NoError(t, err)

	var buf bytes.Buffer
	enc := NewEncoder(600, 800, &buf)

	require.NoError(t, enc.Encode(b, "Move 0"))
	require.NoError(t, b.Play(b.PointOf(3, 3), game.BlackP))
	require.NoError(t, enc.Encode(b, "Move 1: b C3"))

	require.NoError(t, enc.Flush())
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("GIF8")))
	assert.Equal(t, 2, len(enc.out.Image))
	assert.Equal(t, finalDelay, enc.out.Delay[1])
}
