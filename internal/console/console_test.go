package console

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songe/minesweeper/internal/mines"
)

func newTestConsole(t *testing.T, in io.Reader) (*Console, *bytes.Buffer) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	var out bytes.Buffer
	c := New(log, mines.DefaultParams(), rand.New(rand.NewPCG(1, 2)), in, &out)
	require.NoError(t, c.NewGame(mines.DefaultParams()))
	return c, &out
}

func exec(c *Console, format string, args ...any) {
	c.Exec(fmt.Sprintf(format, args...))
}

func firstSafe(t *testing.T, b *mines.Board) mines.Cell {
	t.Helper()
	for _, cell := range b.Cells() {
		if !cell.Mined {
			return cell
		}
	}
	t.Fatal("no safe cell")
	return mines.Cell{}
}

func TestConsoleOpen(t *testing.T) {
	c, out := newTestConsole(t, nil)
	safe := firstSafe(t, c.Board())

	exec(c, "open %d %d", safe.X, safe.Y)

	cell, err := c.Board().Cell(safe.X, safe.Y)
	require.NoError(t, err)
	assert.True(t, cell.Revealed)
	assert.Contains(t, out.String(), "   0 1 2 3 4 5 6 7\n")
	assert.Contains(t, out.String(), "revealed: ")
}

func TestConsoleFlag(t *testing.T) {
	c, _ := newTestConsole(t, nil)
	exec(c, "f x=2 y=5")

	cell, err := c.Board().Cell(2, 5)
	require.NoError(t, err)
	assert.True(t, cell.Flagged)

	exec(c, "flag 2 5")
	cell, err = c.Board().Cell(2, 5)
	require.NoError(t, err)
	assert.False(t, cell.Flagged)
}

func TestConsoleReportsErrors(t *testing.T) {
	c, out := newTestConsole(t, nil)
	before := c.Board().Cells()

	exec(c, "open 8 0")
	assert.Contains(t, out.String(), "error: "+mines.ErrOutOfBounds.Error())

	exec(c, "open three four")
	assert.Contains(t, out.String(), "expected a position")

	exec(c, "dance")
	assert.Contains(t, out.String(), `unknown command "dance"`)

	assert.Equal(t, before, c.Board().Cells())
}

func TestConsoleWin(t *testing.T) {
	c, out := newTestConsole(t, nil)
	for _, m := range c.Board().MinedCells() {
		exec(c, "flag %d %d", m.X, m.Y)
	}
	assert.Equal(t, mines.Won, c.Board().Status())
	assert.Contains(t, out.String(), msgWin+"\n")
	assert.NotContains(t, out.String(), "cheated")
}

func TestConsoleCheatedWin(t *testing.T) {
	c, out := newTestConsole(t, nil)
	c.Exec("cheat")
	assert.Contains(t, out.String(), " m")

	for _, m := range c.Board().MinedCells() {
		exec(c, "flag %d %d", m.X, m.Y)
	}
	assert.Contains(t, out.String(), msgWinCheat)
}

func TestConsoleLose(t *testing.T) {
	c, out := newTestConsole(t, nil)
	m := c.Board().MinedCells()[0]
	exec(c, "o %d %d", m.X, m.Y)

	assert.Equal(t, mines.Lost, c.Board().Status())
	assert.Contains(t, out.String(), msgLose)
	assert.Contains(t, out.String(), " X")
}

func TestConsoleCheckOnUnsolvedBoardLoses(t *testing.T) {
	c, out := newTestConsole(t, nil)
	c.Exec("check")
	assert.Equal(t, mines.Lost, c.Board().Status())
	assert.Contains(t, out.String(), msgLose)
}

func TestConsoleToughLuck(t *testing.T) {
	c, out := newTestConsole(t, nil)
	c.Exec("new width=8 height=8 mine_count=10 forgiving=1")
	require.True(t, c.Board().Params().Forgiving)

	m := c.Board().MinedCells()[0]
	exec(c, "open %d %d", m.X, m.Y)

	assert.Equal(t, mines.InProgress, c.Board().Status())
	assert.Contains(t, out.String(), msgToughLuck)
	assert.NotContains(t, out.String(), msgLose)
}

func TestConsoleNewGame(t *testing.T) {
	c, out := newTestConsole(t, nil)
	old := c.Board()

	c.Exec("new 2 2 4")
	assert.Contains(t, out.String(), "error: ")
	assert.Same(t, old, c.Board())

	c.Exec("new beginner")
	assert.NotSame(t, old, c.Board())
	assert.Equal(t, 9, c.Board().Width())
	assert.Len(t, c.Board().MinedCells(), 10)

	out.Reset()
	m := old.MinedCells()[0]
	require.NoError(t, old.Reveal(m.X, m.Y))
	assert.Empty(t, out.String(), "old board still notifies the console")
}

func TestConsoleRun(t *testing.T) {
	in := strings.NewReader("open 99 99\nstatus\nquit\nopen 0 0\n")
	c, out := newTestConsole(t, in)

	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, out.String(), "> ")
	assert.Contains(t, out.String(), "error: ")
	assert.Empty(t, c.Board().RevealedCells())
}

func TestConsoleRunStopsAtEOF(t *testing.T) {
	c, _ := newTestConsole(t, strings.NewReader("help\n"))
	assert.NoError(t, c.Run(context.Background()))
}

func TestConsoleRunStopsWhenCanceled(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { w.Close() })
	c, _ := newTestConsole(t, r)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}
