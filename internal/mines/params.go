package mines

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
)

var paramsDecoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

// GameParams describe a board. Forgiving turns on first-move forgiveness:
// hitting a mine with the very first reveal restarts the game instead of
// losing it.
type GameParams struct {
	Width     int  `schema:"width,required" json:"width" yaml:"width"`
	Height    int  `schema:"height,required" json:"height" yaml:"height"`
	MineCount int  `schema:"mine_count,required" json:"mine_count" yaml:"mine_count"`
	Forgiving bool `schema:"forgiving" json:"forgiving" yaml:"forgiving"`
}

func DefaultParams() GameParams {
	return GameParams{Width: 8, Height: 8, MineCount: 10}
}

var presets = map[string]GameParams{
	"default":      DefaultParams(),
	"beginner":     {Width: 9, Height: 9, MineCount: 10},
	"intermediate": {Width: 16, Height: 16, MineCount: 40},
	"expert":       {Width: 30, Height: 16, MineCount: 99},
}

func Preset(name string) (GameParams, bool) {
	p, ok := presets[strings.ToLower(name)]
	return p, ok
}

func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}

func (p GameParams) Unpack() (w int, h int, mc int, f bool) {
	return p.Width, p.Height, p.MineCount, p.Forgiving
}

// MaxDimension bounds both sides of a board.
const MaxDimension = 1000

func (p GameParams) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf(
			"%w: board must be at least 1x1 (have %dx%d)",
			ErrInvalidConfiguration, p.Width, p.Height,
		)
	case p.Width > MaxDimension || p.Height > MaxDimension:
		return fmt.Errorf(
			"%w: board must be at most %dx%d (have %dx%d)",
			ErrInvalidConfiguration, MaxDimension, MaxDimension, p.Width, p.Height,
		)
	case p.MineCount <= 0:
		return fmt.Errorf(
			"%w: mine count must be positive (have %d)",
			ErrInvalidConfiguration, p.MineCount,
		)
	case p.MineCount >= p.Width*p.Height:
		return fmt.Errorf(
			"%w: mine count must be less than %d (have %d)",
			ErrInvalidConfiguration, p.Width*p.Height, p.MineCount,
		)
	}
	return nil
}

func (p GameParams) Seed() string {
	f := 0
	if p.Forgiving {
		f = 1
	}
	return fmt.Sprintf("%d:%d:%d:%d", p.Width, p.Height, p.MineCount, f)
}

// ParseSeed reads a seed made by [GameParams.Seed]. The last field must be
// 0 or 1.
func ParseSeed(seed string) (*GameParams, error) {
	invalid := func(err error) error {
		return fmt.Errorf(`invalid game params seed (seed = "%s"): %w`, seed, err)
	}
	pieces := strings.Split(seed, ":")
	if len(pieces) != 4 {
		return nil, invalid(fmt.Errorf("expected 4 fields, have %d", len(pieces)))
	}
	var fields [4]int
	for i, piece := range pieces {
		n, err := strconv.Atoi(piece)
		if err != nil {
			return nil, invalid(err)
		}
		fields[i] = n
	}
	if fields[3] != 0 && fields[3] != 1 {
		return nil, invalid(fmt.Errorf("forgiving must be 0 or 1, have %d", fields[3]))
	}
	p := &GameParams{
		Width:     fields[0],
		Height:    fields[1],
		MineCount: fields[2],
		Forgiving: fields[3] == 1,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// DecodeGameParams reads width, height and mine_count (and optionally
// forgiving) from url-style values.
func DecodeGameParams(src map[string][]string) (GameParams, error) {
	var p GameParams
	if err := paramsDecoder.Decode(&p, src); err != nil {
		return p, fmt.Errorf("unable to decode game params: %w", err)
	}
	return p, p.Validate()
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}
