package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/gridgame-go/internal/model"
	"github.com/mcoot/gridgame-go/internal/services/game"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

var _ game.Renderer = (*Output)(nil)

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// RenderGame draws the board or towers
func (o *Output) RenderGame(g *model.Game) {
	if o.format == OutputJSON {
		o.printJSON(NewGameSnapshot(g))
		return
	}
	switch g.Kind {
	case model.GameKindFourInARow:
		o.printBoard(g.Board)
	case model.GameKindHanoi:
		o.printTowers(g.Towers)
	}
}

// Message implements game.Renderer
func (o *Output) Message(msg string) {
	o.PrintMessage(msg)
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		o.printLine(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

// PrintPrompt asks for the next move
func (o *Output) PrintPrompt(prompt string) {
	if o.format == OutputJSON {
		o.printLine(map[string]string{"prompt": prompt})
	} else {
		fmt.Fprintln(o.w, prompt)
		fmt.Fprint(o.w, "> ")
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == OutputJSON {
		o.printLine(map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		})
	} else {
		fmt.Fprintf(o.w, "Error: %s\n", err)
	}
}

// printJSON writes data as indented JSON. Only string maps and the snapshot
// types below are passed in, so encoding cannot fail; a failed write to the
// terminal has nowhere better to be reported.
func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

// printLine writes data as compact single-line JSON
func (o *Output) printLine(data any) {
	_ = json.NewEncoder(o.w).Encode(data)
}

// GameSnapshot is the JSON view of a game
type GameSnapshot struct {
	ID        string       `json:"id"`
	Kind      string       `json:"kind"`
	State     string       `json:"state"`
	Turn      string       `json:"turn,omitempty"`
	Winner    *string      `json:"winner,omitempty"`
	MoveCount int          `json:"move_count"`
	Board     *Board       `json:"board,omitempty"`
	Towers    []Tower      `json:"towers,omitempty"`
	History   []MoveRecord `json:"history"`
}

// Board is the JSON view of a drop board, top row first
type Board struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Cells  [][]string `json:"cells"`
}

// Tower is the JSON view of one tower, bottom disk first
type Tower struct {
	Name  string `json:"name"`
	Disks []int  `json:"disks"`
}

// MoveRecord is the JSON view of an applied move
type MoveRecord struct {
	Number int    `json:"number"`
	Player string `json:"player,omitempty"`
	Move   string `json:"move"`
	Row    *int   `json:"row,omitempty"`
}

// NewGameSnapshot converts a game to its JSON view
func NewGameSnapshot(g *model.Game) GameSnapshot {
	s := GameSnapshot{
		ID:        string(g.ID),
		Kind:      string(g.Kind),
		State:     string(g.State),
		MoveCount: g.MoveCount,
		History:   make([]MoveRecord, 0, len(g.History)),
	}
	if g.Kind == model.GameKindFourInARow && !g.IsTerminal() {
		s.Turn = g.Turn.String()
	}
	if g.Winner.IsPlayer() {
		winner := g.Winner.String()
		s.Winner = &winner
	}

	if g.Board != nil {
		b := &Board{Width: g.Board.Width, Height: g.Board.Height}
		for _, row := range g.Board.Snapshot() {
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = c.String()
			}
			b.Cells = append(b.Cells, cells)
		}
		s.Board = b
	}

	for _, t := range g.Towers {
		disks := append([]int{}, t.Disks...)
		s.Towers = append(s.Towers, Tower{Name: string(t.Name), Disks: disks})
	}

	for _, rec := range g.History {
		mr := MoveRecord{Number: rec.Number, Move: rec.Move.String()}
		if g.Kind == model.GameKindFourInARow {
			mr.Player = rec.Player.String()
			row := rec.Row
			mr.Row = &row
		}
		s.History = append(s.History, mr)
	}

	return s
}

// printBoard draws the grid with 1-based column labels
func (o *Output) printBoard(b *model.Board) {
	if b == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(" ")
	for col := 0; col < b.Width; col++ {
		sb.WriteString(strconv.Itoa(col + 1))
	}
	sb.WriteString("\n")

	border := "+" + strings.Repeat("-", b.Width) + "+\n"
	sb.WriteString(border)
	for _, row := range b.Snapshot() {
		sb.WriteString("|")
		for _, c := range row {
			sb.WriteString(c.String())
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	fmt.Fprint(o.w, sb.String())
}

// printTowers draws each disk as @@_2@@ centred on a || pole, with the
// tower labels underneath
func (o *Output) printTowers(towers model.Towers) {
	disks := towers.DiskCount()
	var sb strings.Builder
	for _, level := range towers.Levels(disks + 1) {
		cells := make([]string, len(level))
		for i, width := range level {
			cells[i] = diskGlyph(width, disks)
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteString("\n")
	}

	pad := strings.Repeat(" ", disks)
	labels := make([]string, len(towers))
	for i, t := range towers {
		labels[i] = pad + " " + string(t.Name) + pad
	}
	sb.WriteString(strings.TrimRight(strings.Join(labels, " "), " "))
	sb.WriteString("\n")

	fmt.Fprint(o.w, sb.String())
}

func diskGlyph(width, total int) string {
	space := strings.Repeat(" ", total-width)
	if width == 0 {
		return space + "||" + space
	}
	label := strconv.Itoa(width)
	if len(label) < 2 {
		label = "_" + label
	}
	disk := strings.Repeat("@", width)
	return space + disk + label + disk + space
}
