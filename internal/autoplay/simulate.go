package autoplay

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/songe/minesweeper/internal/mines"
	"golang.org/x/sync/errgroup"
)

var ErrNoGames = errors.New("nothing to simulate")

type Options struct {
	Games   int
	Workers int
	// Seed makes a run repeatable: game n always gets the same mines.
	Seed uint64
}

type Stats struct {
	Played   int `json:"played" yaml:"played"`
	Won      int `json:"won" yaml:"won"`
	Lost     int `json:"lost" yaml:"lost"`
	Restarts int `json:"restarts" yaml:"restarts"`
	Guesses  int `json:"guesses" yaml:"guesses"`
}

func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

func (s Stats) String() string {
	return fmt.Sprintf("played %d, won %d, lost %d (%.1f%%), restarts %d, guesses %d",
		s.Played, s.Won, s.Lost, 100*s.WinRate(), s.Restarts, s.Guesses,
	)
}

func (s Stats) Fields() logrus.Fields {
	return logrus.Fields{
		"played":   s.Played,
		"won":      s.Won,
		"lost":     s.Lost,
		"restarts": s.Restarts,
		"guesses":  s.Guesses,
	}
}

// Simulate plays opts.Games games with params on up to opts.Workers
// goroutines. Each game has its own board. On cancellation the games
// finished so far are returned along with ctx's error.
func Simulate(ctx context.Context, params mines.GameParams, opts Options) (Stats, error) {
	var stats Stats
	if err := params.Validate(); err != nil {
		return stats, err
	}
	if opts.Games <= 0 {
		return stats, ErrNoGames
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for n := range opts.Games {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			rnd := rand.New(rand.NewPCG(opts.Seed, uint64(n)))
			board, err := mines.NewBoard(params, rnd)
			if err != nil {
				return err
			}
			player := NewPlayer(board, rnd)
			status, err := player.Play()
			if err != nil {
				return fmt.Errorf("game %d: %w", n, err)
			}

			mu.Lock()
			defer mu.Unlock()
			stats.Played++
			stats.Restarts += player.Restarts()
			stats.Guesses += player.Guesses()
			if status == mines.Won {
				stats.Won++
			} else {
				stats.Lost++
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	Log.WithFields(stats.Fields()).Info("simulation done")
	return stats, err
}
