package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/gridgame-go/internal/middleware"
	"github.com/mcoot/gridgame-go/internal/model"
)

func newFourInARowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fourinarow",
		Aliases: []string{"four"},
		Short:   "Play four-in-a-row with two players",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			intro := fmt.Sprintf(`Four-in-a-Row

Two players take turns dropping tiles into one of %d columns, trying
to make four in a row horizontally, vertically or diagonally.
`, cfg.Width)
			return middleware.Recover(app.Logger, func() error {
				return playGame(cmd, model.GameKindFourInARow, intro)
			})
		},
	}

	cmd.Flags().IntVar(&flags.width, "width", flags.width, "Board width, 4 to 9 (env: GRIDGAME_WIDTH)")
	cmd.Flags().IntVar(&flags.height, "height", flags.height, "Board height, 4 to 9 (env: GRIDGAME_HEIGHT)")

	return cmd
}

func newHanoiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hanoi",
		Short: "Solve the Tower of Hanoi puzzle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			intro := `The Tower of Hanoi

Move the tower of disks, one disk at a time, to another tower. Larger
disks cannot rest on top of a smaller disk.

More info at https://en.wikipedia.org/wiki/Tower_of_Hanoi
`
			return middleware.Recover(app.Logger, func() error {
				return playGame(cmd, model.GameKindHanoi, intro)
			})
		},
	}

	cmd.Flags().IntVar(&flags.disks, "disks", flags.disks, "Number of disks, 1 to 9 (env: GRIDGAME_DISKS)")
	cmd.Flags().StringVar(&flags.towers, "towers", flags.towers, "Tower labels, starting tower first (env: GRIDGAME_TOWERS)")

	return cmd
}

// playGame creates a game and runs the turn loop against the terminal
func playGame(cmd *cobra.Command, kind model.GameKind, intro string) error {
	out := NewOutput(cfg.Output, cmd.OutOrStdout())
	if cfg.Output == OutputText {
		out.PrintMessage(intro)
	}

	g, err := app.GameController.CreateGame(cmd.Context(), kind, cfg.GameConfig())
	if err != nil {
		out.PrintError(err)
		return err
	}

	moves := middleware.LogMoves(app.Logger, app.Clock, NewConsoleMoves(cmd.InOrStdin(), out))
	runner := app.NewRunner(moves, out)
	if _, err := runner.Run(cmd.Context(), g.ID); err != nil {
		out.PrintError(err)
		return err
	}
	return nil
}
