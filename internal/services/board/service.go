package board

import (
	"log/slog"

	"github.com/mcoot/gridgame-go/internal/model"
)

// direction is a unit step used when scanning for a run of cells
type direction struct {
	dCol int
	dRow int
}

// Scan order: horizontal, vertical, diagonal down-right, diagonal down-left
var directions = []direction{
	{dCol: 1, dRow: 0},
	{dCol: 0, dRow: 1},
	{dCol: 1, dRow: 1},
	{dCol: -1, dRow: 1},
}

// Service provides drop-game board operations. Boards passed in are never
// mutated; moves return a new board.
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// CreateBoard initializes an empty board of the given dimensions
func (s *Service) CreateBoard(width, height int) (*model.Board, error) {
	if width < model.WinLength || height < model.WinLength {
		return nil, model.ErrInvalidConfig
	}
	return model.NewBoard(width, height), nil
}

// ApplyDropMove drops the player's disc into the column. The disc settles
// on the lowest empty row. Returns the landing row and the new board.
func (s *Service) ApplyDropMove(board *model.Board, column int, player model.Cell) (int, *model.Board, error) {
	if !board.IsValidColumn(column) {
		return -1, nil, model.ErrInvalidColumn
	}
	if !player.IsPlayer() {
		return -1, nil, model.ErrInvalidPlayer
	}

	cells := board.GetCol(column)
	for row := len(cells) - 1; row >= 0; row-- {
		if cells[row] != model.CellEmpty {
			continue
		}
		next := board.Clone()
		next.Set(model.Position{Col: column, Row: row}, player)

		s.logger.Debug("disc dropped",
			slog.String("player", player.String()),
			slog.Int("col", column),
			slog.Int("row", row),
		)
		return row, next, nil
	}

	return -1, nil, model.ErrColumnFull
}

// CheckWinner returns true if the player has WinLength cells in a row in
// any direction
func (s *Service) CheckWinner(board *model.Board, player model.Cell) bool {
	if !player.IsPlayer() {
		return false
	}
	for _, d := range directions {
		for row := 0; row < board.Height; row++ {
			for col := 0; col < board.Width; col++ {
				end := model.Position{
					Col: col + d.dCol*(model.WinLength-1),
					Row: row + d.dRow*(model.WinLength-1),
				}
				if !board.IsValidPosition(end) {
					continue
				}
				if isRun(board, model.Position{Col: col, Row: row}, d, player) {
					return true
				}
			}
		}
	}
	return false
}

func isRun(board *model.Board, start model.Position, d direction, player model.Cell) bool {
	for i := 0; i < model.WinLength; i++ {
		pos := model.Position{Col: start.Col + d.dCol*i, Row: start.Row + d.dRow*i}
		if board.Get(pos) != player {
			return false
		}
	}
	return true
}

// IsDraw returns true if no cell on the board is empty
func (s *Service) IsDraw(board *model.Board) bool {
	return board.IsFull()
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateBoard(width, height int) (*model.Board, error)
	ApplyDropMove(board *model.Board, column int, player model.Cell) (int, *model.Board, error)
	CheckWinner(board *model.Board, player model.Cell) bool
	IsDraw(board *model.Board) bool
}

var _ ServiceInterface = (*Service)(nil)
