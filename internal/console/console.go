// Package console is a line-oriented front end for a single player. It owns
// one board at a time and redraws it as text after every command.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/songe/minesweeper/internal/mines"
)

const (
	msgWin       = "You win!"
	msgWinCheat  = "You win! ...but you cheated. ಠ_ಠ"
	msgLose      = "You lose!"
	msgToughLuck = "Tough luck!"
)

const help = `commands:
  open x y      (o)  reveal a cell
  flag x y      (f)  toggle a flag
  check         (c)  claim the board is solved
  cheat              show where the mines are
  new [args]    (n)  start over: a preset, a seed like 16:16:40:0,
                     or width=W height=H mine_count=M [forgiving=1]
  show          (s)  redraw the board
  status             print the counters
  help          (h)  this text
  quit          (q)
`

type Console struct {
	log      *logrus.Logger
	rnd      *rand.Rand
	in       io.Reader
	out      io.Writer
	params   mines.GameParams
	board    *mines.Board
	cancel   func()
	dirty    bool
	messages []string
}

func New(
	log *logrus.Logger,
	params mines.GameParams,
	rnd *rand.Rand,
	in io.Reader,
	out io.Writer,
) *Console {
	return &Console{
		log:    log,
		rnd:    rnd,
		in:     in,
		out:    out,
		params: params,
	}
}

func (c *Console) Board() *mines.Board {
	return c.board
}

// NewGame replaces the current board. On error the old board is kept.
func (c *Console) NewGame(params mines.GameParams) error {
	board, err := mines.NewBoard(params, c.rnd)
	if err != nil {
		return err
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.board, c.params = board, params
	c.cancel = board.Subscribe(c.onEvent)
	c.dirty = true
	c.log.WithField("params", params.Seed()).Info("new game")
	return nil
}

func (c *Console) onEvent(e mines.Event) {
	switch e.Kind {
	case mines.CellsChanged, mines.BoardCheated:
		c.dirty = true
	case mines.GameRestarted:
		c.dirty = true
		c.notify(msgToughLuck)
	case mines.GameWon:
		if e.Assisted {
			c.notify(msgWinCheat)
		} else {
			c.notify(msgWin)
		}
	case mines.GameLost:
		c.notify(msgLose)
	}
}

// notify queues a message to print after the board is redrawn.
func (c *Console) notify(message string) {
	c.messages = append(c.messages, message)
}

// Run reads commands until quit, end of input or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	if c.board == nil {
		if err := c.NewGame(c.params); err != nil {
			return err
		}
	}
	c.flush()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	scanner := bufio.NewScanner(c.in)
	lines := make(chan string)
	// On cancellation this goroutine stays blocked in Scan until c.in
	// returns, which for stdin is never.
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(c.out, "> ")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return scanner.Err()
			}
			if quit := c.Exec(line); quit {
				return nil
			}
		}
	}
}

// Exec runs one command line and reports whether the session should end.
func (c *Console) Exec(line string) (quit bool) {
	if c.board == nil {
		if err := c.NewGame(c.params); err != nil {
			c.fail(err)
			return false
		}
	}
	defer c.flush()

	args := tokens(line)
	if len(args) == 0 {
		return false
	}
	command, args := strings.ToLower(args[0]), args[1:]

	c.log.WithFields(logrus.Fields{
		"command": command,
		"args":    args,
	}).Debug("command")

	switch command {
	case "open", "o":
		c.move(args, c.board.Reveal)
	case "flag", "f":
		c.move(args, c.board.ToggleFlag)
	case "check", "c":
		c.board.Validate(true)
	case "cheat":
		c.board.CheatRevealAll()
	case "new", "n":
		params, err := decodeGameParams(args, c.params)
		if err != nil {
			c.fail(err)
			return false
		}
		if err := c.NewGame(params); err != nil {
			c.fail(err)
		}
	case "show", "s":
		c.dirty = true
	case "status":
		c.status()
	case "help", "h", "?":
		fmt.Fprint(c.out, help)
	case "quit", "q", "exit":
		return true
	default:
		fmt.Fprintf(c.out, "unknown command %q, type help\n", command)
	}
	return false
}

func (c *Console) move(args []string, apply func(x, y int) error) {
	p, err := decodePosition(args)
	if err != nil {
		c.fail(err)
		return
	}
	if err := apply(p.X, p.Y); err != nil {
		c.fail(err)
	}
}

func (c *Console) fail(err error) {
	c.log.WithError(err).Debug("command failed")
	fmt.Fprintf(c.out, "error: %v\n", err)
}

func (c *Console) status() {
	counts := c.board.Counts()
	fmt.Fprintf(c.out,
		"revealed: %d  remaining: %d  flagged: %d  mines: %d  (%s)\n",
		counts.Revealed, counts.Remaining, counts.Flagged, counts.Mines,
		c.board.Status(),
	)
}

func (c *Console) flush() {
	if c.dirty {
		fmt.Fprint(c.out, c.board.String())
		c.status()
		c.dirty = false
	}
	for _, m := range c.messages {
		fmt.Fprintln(c.out, m)
	}
	c.messages = nil
}
