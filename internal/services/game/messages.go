package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mcoot/gridgame-go/internal/model"
)

// PromptText returns what the current player is asked before each move
func PromptText(game *model.Game) string {
	switch game.Kind {
	case model.GameKindFourInARow:
		return fmt.Sprintf("Player %s, enter 1 to %d or QUIT:", game.Turn, game.Board.Width)
	case model.GameKindHanoi:
		first := game.Towers.Names()
		example := string(first[0]) + string(first[1])
		return fmt.Sprintf("Enter the letter of \"from\" and \"to\" towers, or QUIT.\n(e.g., %s to move a disk from tower %c to tower %c.)",
			example, first[0], first[1])
	default:
		return "Enter a move or QUIT:"
	}
}

// UserMessage turns a recoverable move error into the text shown before
// re-prompting
func UserMessage(game *model.Game, err error) string {
	switch {
	case errors.Is(err, model.ErrColumnFull):
		return "That column is full, select another one."
	case errors.Is(err, model.ErrEmptySource):
		return "You selected a tower with no disks."
	case errors.Is(err, model.ErrRuleViolation):
		return "Can't put larger disks on top of smaller ones."
	case errors.Is(err, model.ErrInvalidColumn), errors.Is(err, model.ErrMalformedInput):
		if game.Kind == model.GameKindHanoi {
			return fmt.Sprintf("Enter one of %s.", joinChoices(TowerPairs(game.Towers)))
		}
		return fmt.Sprintf("Enter a number from 1 to %d.", game.Board.Width)
	case errors.Is(err, model.ErrGameOver):
		return "The game is over."
	default:
		return err.Error()
	}
}

// OutcomeMessage describes how a terminal game ended
func OutcomeMessage(game *model.Game) string {
	switch game.State {
	case model.GameStateWon:
		return fmt.Sprintf("Player %s has won!", game.Winner)
	case model.GameStateDraw:
		return "There is a tie!"
	case model.GameStateSolved:
		return "You have solved the puzzle! Well done!"
	case model.GameStateQuit:
		return "Thanks for playing!"
	default:
		return ""
	}
}

// joinChoices renders a list as "A, B or C"
func joinChoices(choices []string) string {
	switch len(choices) {
	case 0:
		return ""
	case 1:
		return choices[0]
	default:
		return strings.Join(choices[:len(choices)-1], ", ") + " or " + choices[len(choices)-1]
	}
}
