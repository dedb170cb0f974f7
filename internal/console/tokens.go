package console

import (
	"fmt"
	"iter"
	"strings"

	"github.com/gorilla/schema"
	"github.com/songe/minesweeper/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

// tokens splits a command line on spaces, dropping empty pieces.
func tokens(line string) []string {
	var result []string
	for _, piece := range byPiece(strings.TrimSpace(line), " ") {
		if piece = strings.TrimSpace(piece); piece != "" {
			result = append(result, piece)
		}
	}
	return result
}

// values turns command arguments into url-style values. Positional
// arguments take the names in order; key=value arguments set that key.
func values(args []string, names ...string) map[string][]string {
	result := make(map[string][]string)
	position := 0
	for _, arg := range args {
		if key, value, ok := strings.Cut(arg, "="); ok {
			result[key] = append(result[key], value)
			continue
		}
		if position < len(names) {
			result[names[position]] = append(result[names[position]], arg)
			position++
		}
	}
	return result
}

func decodePosition(args []string) (mines.Point, error) {
	var p mines.Point
	if err := decoder.Decode(&p, values(args, "x", "y")); err != nil {
		return p, fmt.Errorf("expected a position like \"3 4\" or \"x=3 y=4\": %w", err)
	}
	return p, nil
}

// decodeGameParams accepts nothing (keep current), a preset name, a seed
// such as 16:16:40:0, or width, height and mine count. Forgiveness carries
// over from current unless a seed or a forgiving value says otherwise.
func decodeGameParams(args []string, current mines.GameParams) (mines.GameParams, error) {
	if len(args) == 0 {
		return current, nil
	}
	if len(args) == 1 && !strings.Contains(args[0], "=") {
		if p, ok := mines.Preset(args[0]); ok {
			p.Forgiving = current.Forgiving
			return p, nil
		}
		if strings.Contains(args[0], ":") {
			p, err := mines.ParseSeed(args[0])
			if err != nil {
				return current, err
			}
			return *p, nil
		}
		return current, fmt.Errorf(
			"unknown preset %q (try %s)", args[0], strings.Join(mines.PresetNames(), ", "),
		)
	}
	src := values(args, "width", "height", "mine_count", "forgiving")
	if _, ok := src["forgiving"]; !ok && current.Forgiving {
		src["forgiving"] = []string{"1"}
	}
	return mines.DecodeGameParams(src)
}
