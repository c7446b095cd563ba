package board

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gridgame-go/internal/model"
	"github.com/mcoot/gridgame-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(testutil.NopLogger())
}

// parseBoard builds a board from rows of X, O and '.' (top row first)
func parseBoard(rows ...string) *model.Board {
	board := model.NewBoard(len(rows[0]), len(rows))
	for row, line := range rows {
		for col, ch := range line {
			switch ch {
			case 'X':
				board.Set(model.Position{Col: col, Row: row}, model.PlayerA)
			case 'O':
				board.Set(model.Position{Col: col, Row: row}, model.PlayerB)
			}
		}
	}
	return board
}

// mirror flips the board left to right
func mirror(board *model.Board) *model.Board {
	result := model.NewBoard(board.Width, board.Height)
	for row := 0; row < board.Height; row++ {
		for col := 0; col < board.Width; col++ {
			result.Set(model.Position{Col: board.Width - 1 - col, Row: row}, board.Get(model.Position{Col: col, Row: row}))
		}
	}
	return result
}

// assertGravity checks that no disc sits above an empty cell
func (s *ServiceSuite) assertGravity(board *model.Board) {
	for col := 0; col < board.Width; col++ {
		seenDisc := false
		for row := 0; row < board.Height; row++ {
			empty := board.IsEmpty(model.Position{Col: col, Row: row})
			if seenDisc {
				s.False(empty, "empty cell below a disc at col %d row %d", col, row)
			}
			if !empty {
				seenDisc = true
			}
		}
	}
}

// CreateBoard tests

func (s *ServiceSuite) TestCreateBoardSucceeds() {
	board, err := s.service.CreateBoard(7, 6)
	s.Require().NoError(err)

	s.Equal(7, board.Width)
	s.Equal(6, board.Height)
	s.Equal(42, board.EmptyCount())
}

func (s *ServiceSuite) TestCreateBoardTooSmall() {
	_, err := s.service.CreateBoard(3, 6)
	s.ErrorIs(err, model.ErrInvalidConfig)
}

// ApplyDropMove tests

func (s *ServiceSuite) TestDropLandsOnBottomRow() {
	board := model.NewBoard(7, 6)

	row, next, err := s.service.ApplyDropMove(board, 3, model.PlayerA)
	s.Require().NoError(err)

	s.Equal(5, row)
	s.Equal(model.PlayerA, next.Get(model.Position{Col: 3, Row: 5}))
}

func (s *ServiceSuite) TestDropStacksOnExistingDisc() {
	board := model.NewBoard(7, 6)
	_, board, _ = s.service.ApplyDropMove(board, 2, model.PlayerA)

	row, next, err := s.service.ApplyDropMove(board, 2, model.PlayerB)
	s.Require().NoError(err)

	s.Equal(4, row)
	s.Equal(model.PlayerB, next.Get(model.Position{Col: 2, Row: 4}))
	s.Equal(model.PlayerA, next.Get(model.Position{Col: 2, Row: 5}))
}

func (s *ServiceSuite) TestDropDoesNotMutateInput() {
	board := model.NewBoard(7, 6)

	_, next, err := s.service.ApplyDropMove(board, 0, model.PlayerA)
	s.Require().NoError(err)

	s.Equal(42, board.EmptyCount())
	s.Equal(41, next.EmptyCount())
}

func (s *ServiceSuite) TestDropInvalidColumn() {
	board := model.NewBoard(7, 6)

	_, _, err := s.service.ApplyDropMove(board, 7, model.PlayerA)
	s.ErrorIs(err, model.ErrInvalidColumn)

	_, _, err = s.service.ApplyDropMove(board, -1, model.PlayerA)
	s.ErrorIs(err, model.ErrInvalidColumn)
}

func (s *ServiceSuite) TestDropInvalidPlayer() {
	board := model.NewBoard(7, 6)

	_, _, err := s.service.ApplyDropMove(board, 0, model.CellEmpty)
	s.ErrorIs(err, model.ErrInvalidPlayer)
}

func (s *ServiceSuite) TestDropColumnFullLeavesBoardUnchanged() {
	board := model.NewBoard(7, 6)
	player := model.PlayerA
	for i := 0; i < 6; i++ {
		_, board, _ = s.service.ApplyDropMove(board, 4, player)
		player = player.Other()
	}
	before := board.Clone()

	row, next, err := s.service.ApplyDropMove(board, 4, player)
	s.ErrorIs(err, model.ErrColumnFull)
	s.Equal(-1, row)
	s.Nil(next)
	s.Equal(before, board)
}

func (s *ServiceSuite) TestGravityHoldsAfterEveryMove() {
	board := model.NewBoard(7, 6)
	player := model.PlayerA
	columns := []int{3, 3, 2, 4, 4, 0, 6, 6, 6, 1, 5, 3, 3, 2}
	for _, col := range columns {
		_, next, err := s.service.ApplyDropMove(board, col, player)
		s.Require().NoError(err)
		board = next
		player = player.Other()
		s.assertGravity(board)
	}
}

// CheckWinner tests

func (s *ServiceSuite) TestHorizontalWinFromDrops() {
	board := model.NewBoard(7, 6)
	for col := 0; col < 4; col++ {
		row, next, err := s.service.ApplyDropMove(board, col, model.PlayerA)
		s.Require().NoError(err)
		s.Equal(5, row)
		board = next
	}

	s.True(s.service.CheckWinner(board, model.PlayerA))
	s.False(s.service.CheckWinner(board, model.PlayerB))
}

func (s *ServiceSuite) TestVerticalWin() {
	board := parseBoard(
		".......",
		".......",
		"..O....",
		"..O....",
		"..O....",
		"..OX.XX",
	)
	s.True(s.service.CheckWinner(board, model.PlayerB))
	s.False(s.service.CheckWinner(board, model.PlayerA))
}

func (s *ServiceSuite) TestDiagonalDownRightWin() {
	board := parseBoard(
		".......",
		".......",
		"X......",
		"OX.....",
		"OOX....",
		"OOOX...",
	)
	s.True(s.service.CheckWinner(board, model.PlayerA))
}

func (s *ServiceSuite) TestDiagonalDownLeftWin() {
	board := parseBoard(
		".......",
		".......",
		"......X",
		".....XO",
		"....XOO",
		"...XOOO",
	)
	s.True(s.service.CheckWinner(board, model.PlayerA))
}

func (s *ServiceSuite) TestRunOfThreeIsNotAWin() {
	board := parseBoard(
		".......",
		".......",
		".......",
		".......",
		".......",
		"XXX.XXX",
	)
	s.False(s.service.CheckWinner(board, model.PlayerA))
}

func (s *ServiceSuite) TestEmptyCellNeverWins() {
	board := model.NewBoard(7, 6)
	s.False(s.service.CheckWinner(board, model.CellEmpty))
}

func (s *ServiceSuite) TestWinnerSymmetricUnderMirroring() {
	boards := []*model.Board{
		parseBoard(
			".......",
			".......",
			".......",
			".......",
			".......",
			"XXXX...",
		),
		parseBoard(
			".......",
			".......",
			"X......",
			"OX.....",
			"OOX....",
			"OOOX...",
		),
		parseBoard(
			".......",
			".......",
			"......X",
			".....XO",
			"....XOO",
			"...XOOO",
		),
		parseBoard(
			".......",
			".......",
			".......",
			".......",
			"..O....",
			"XXOX.XO",
		),
	}
	for _, board := range boards {
		for _, player := range []model.Cell{model.PlayerA, model.PlayerB} {
			s.Equal(s.service.CheckWinner(board, player), s.service.CheckWinner(mirror(board), player))
		}
	}
}

func (s *ServiceSuite) TestCheckWinnerIsIdempotent() {
	board := parseBoard(
		".......",
		".......",
		".......",
		".......",
		".......",
		".XXXX..",
	)
	first := s.service.CheckWinner(board, model.PlayerA)
	s.Equal(first, s.service.CheckWinner(board, model.PlayerA))
	s.Equal(first, s.service.CheckWinner(board, model.PlayerA))
}

func (s *ServiceSuite) TestWinOnSmallestBoard() {
	board := parseBoard(
		"X...",
		".X..",
		"..X.",
		"...X",
	)
	s.True(s.service.CheckWinner(board, model.PlayerA))
}

// IsDraw tests

func (s *ServiceSuite) TestIsDrawEmpty() {
	s.False(s.service.IsDraw(model.NewBoard(7, 6)))
}

func (s *ServiceSuite) TestIsDrawPartial() {
	board := parseBoard(
		".......",
		"OOXXOOX",
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
		"OOXXOOX",
	)
	s.False(s.service.IsDraw(board))
}

func (s *ServiceSuite) TestFullBoardWithoutRunIsDraw() {
	board := parseBoard(
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
		"OOXXOOX",
	)
	s.True(s.service.IsDraw(board))
	s.True(s.service.IsDraw(board))
	s.False(s.service.CheckWinner(board, model.PlayerA))
	s.False(s.service.CheckWinner(board, model.PlayerB))
}
