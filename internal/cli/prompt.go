package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/gridgame-go/internal/model"
	"github.com/mcoot/gridgame-go/internal/services/game"
)

// maxLineLength caps how much of one input line is kept. Longer lines are
// drained and rejected as malformed.
const maxLineLength = 1024

type readResult struct {
	line string
	err  error
}

// ConsoleMoves reads one move per line from the terminal
type ConsoleMoves struct {
	reader *bufio.Reader
	out    *Output

	// pending holds a read that outlived a cancelled NextMove, so the line
	// is not lost
	pending chan readResult
}

var _ game.MoveProvider = (*ConsoleMoves)(nil)

// NewConsoleMoves creates a move provider reading from r and prompting on out
func NewConsoleMoves(r io.Reader, out *Output) *ConsoleMoves {
	return &ConsoleMoves{
		reader: bufio.NewReader(r),
		out:    out,
	}
}

// NextMove prompts and waits for a line or for ctx to be done. Returns
// io.EOF when input ends.
func (m *ConsoleMoves) NextMove(ctx context.Context, g *model.Game, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.out.PrintPrompt(prompt)

	if m.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := m.readLine()
			ch <- readResult{line: line, err: err}
		}()
		m.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-m.pending:
		m.pending = nil
		return res.line, res.err
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is still returned before io.EOF.
func (m *ConsoleMoves) readLine() (string, error) {
	var (
		line      []byte
		truncated bool
	)
	for {
		chunk, err := m.reader.ReadSlice('\n')
		if len(line)+len(chunk) > maxLineLength {
			truncated = true
		} else {
			line = append(line, chunk...)
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !(errors.Is(err, io.EOF) && (len(line) > 0 || truncated)) {
			return "", err
		}
		break
	}

	if truncated {
		return "", fmt.Errorf("%w: line longer than %d bytes", model.ErrMalformedInput, maxLineLength)
	}
	return strings.TrimRight(string(line), "\r\n"), nil
}
