package engine

import (
	"bytes"
	"sync"
	"testing"

	"github.com/minaorangina/splendor/catalog"
	"github.com/minaorangina/splendor/game"
	utils "github.com/minaorangina/splendor/internal"
	"github.com/stretchr/testify/require"
)

// TestBuffer is used in tests for io
type TestBuffer struct {
	buf bytes.Buffer
	m   sync.Mutex
}

func NewTestBuffer() *TestBuffer {
	return &TestBuffer{}
}

func (tb *TestBuffer) Read(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Read(p)
}

func (tb *TestBuffer) Write(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Write(p)
}

func (tb *TestBuffer) String() string {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.String()
}

func someGame(t *testing.T) *game.Game {
	t.Helper()

	cards, err := catalog.Default()
	require.NoError(t, err)
	g, err := game.New(2, game.WithRand(utils.SeededRand(1)), game.WithID("console-game"))
	require.NoError(t, err)
	require.NoError(t, g.Setup(cards))
	return g
}
