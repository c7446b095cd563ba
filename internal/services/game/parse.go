package game

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mcoot/gridgame-go/internal/model"
)

// ParseMove turns a raw player token into a move for the given game.
// Tokens are trimmed and case-insensitive. Drop games accept the column
// labels 1..width, stack games accept two tower letters, and both accept
// QUIT.
func ParseMove(game *model.Game, token string) (model.Move, error) {
	normalized := strings.ToUpper(strings.TrimSpace(token))
	if normalized == "" {
		return model.Move{}, fmt.Errorf("%w: empty input", model.ErrMalformedInput)
	}
	if normalized == model.QuitToken {
		return model.Move{Kind: model.MoveQuit}, nil
	}

	switch game.Kind {
	case model.GameKindFourInARow:
		return parseDrop(normalized, game.Board.Width)
	case model.GameKindHanoi:
		return parseStack(normalized, game.Towers)
	default:
		return model.Move{}, model.ErrUnknownGameKind
	}
}

func parseDrop(token string, width int) (model.Move, error) {
	label, err := strconv.Atoi(token)
	if err != nil || strconv.Itoa(label) != token {
		return model.Move{}, fmt.Errorf("%w: %q is not a column number", model.ErrMalformedInput, token)
	}
	if label < 1 || label > width {
		return model.Move{}, fmt.Errorf("%w: %d", model.ErrInvalidColumn, label)
	}
	return model.Move{Kind: model.MoveDrop, Column: label - 1}, nil
}

func parseStack(token string, towers model.Towers) (model.Move, error) {
	if utf8.RuneCountInString(token) != 2 {
		return model.Move{}, fmt.Errorf("%w: %q is not a tower pair", model.ErrMalformedInput, token)
	}
	runes := []rune(token)
	from, to := runes[0], runes[1]
	if towers.Index(from) < 0 || towers.Index(to) < 0 || from == to {
		return model.Move{}, fmt.Errorf("%w: %q is not a tower pair", model.ErrMalformedInput, token)
	}
	return model.Move{Kind: model.MoveStack, From: from, To: to}, nil
}

// TowerPairs lists every valid from/to pair, e.g. AB, AC, BA, ...
func TowerPairs(towers model.Towers) []string {
	var pairs []string
	for _, from := range towers.Names() {
		for _, to := range towers.Names() {
			if from != to {
				pairs = append(pairs, string([]rune{from, to}))
			}
		}
	}
	return pairs
}
