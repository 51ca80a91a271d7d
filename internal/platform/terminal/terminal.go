// Package terminal provides a line-oriented front end for Threes.
// It prints the board after every move and reads one command per line,
// which makes it usable over plain pipes where a full-screen TUI is not.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-threes/internal/games/threes"
)

// Prompt is printed when a line is not a move command.
const Prompt = "Enter either W, A, S or D"

// Result summarises a line-mode session.
type Result struct {
	Score    int
	Moves    int
	Rejected int
	Finished bool // False when input ended before the game was over
}

// Session plays a single game over a reader and writer.
type Session struct {
	board  *threes.Board
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
}

// NewSession creates a session for board. A nil logger discards log output.
func NewSession(board *threes.Board, r io.Reader, w io.Writer, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		board:  board,
		in:     bufio.NewScanner(r),
		out:    w,
		logger: logger,
	}
}

// ParseCommand maps a line of input to a direction.
// Commands are single letters and case-insensitive.
func ParseCommand(line string) (threes.Direction, bool) {
	switch strings.ToUpper(strings.TrimSpace(line)) {
	case "W":
		return threes.DirUp, true
	case "A":
		return threes.DirLeft, true
	case "S":
		return threes.DirDown, true
	case "D":
		return threes.DirRight, true
	}
	return 0, false
}

// FormatGrid renders the grid with one row per line, tab separated,
// and X for empty cells.
func FormatGrid(grid threes.Grid) string {
	var sb strings.Builder
	for _, row := range grid {
		sb.WriteByte('\n')
		for _, v := range row {
			if v == 0 {
				sb.WriteString("X")
			} else {
				sb.WriteString(strconv.FormatUint(uint64(v), 10))
			}
			sb.WriteByte('\t')
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Run plays until the board has no moves or the input ends.
func (s *Session) Run() (Result, error) {
	var res Result

	for s.board.HasMoves() {
		if err := s.printBoard(); err != nil {
			return res, err
		}

		dir, ok, err := s.readMove()
		if err != nil {
			return res, err
		}
		if !ok {
			s.logger.Debug("input closed", "moves", res.Moves)
			res.Score = s.board.Score()
			return res, nil
		}

		if !s.board.Move(dir) {
			res.Rejected++
			s.logger.Debug("move rejected", "dir", dir)
			if _, err := fmt.Fprintln(s.out, threes.StatusInvalidMove); err != nil {
				return res, fmt.Errorf("write status: %w", err)
			}
			continue
		}
		res.Moves++
	}

	res.Finished = true
	res.Score = s.board.Score()

	if _, err := io.WriteString(s.out, FormatGrid(s.board.Grid())); err != nil {
		return res, fmt.Errorf("write board: %w", err)
	}
	if _, err := fmt.Fprintf(s.out, "%s\nYou scored: %d\n", threes.StatusGameOver, res.Score); err != nil {
		return res, fmt.Errorf("write result: %w", err)
	}
	s.logger.Info("game over", "score", res.Score, "moves", res.Moves, "high", s.board.HighCard())
	return res, nil
}

func (s *Session) printBoard() error {
	if _, err := io.WriteString(s.out, FormatGrid(s.board.Grid())); err != nil {
		return fmt.Errorf("write board: %w", err)
	}
	if _, err := fmt.Fprintf(s.out, "Next card: %d\n", s.board.NextCard()); err != nil {
		return fmt.Errorf("write next card: %w", err)
	}
	return nil
}

// readMove reads lines until one holds a valid command.
// ok is false once the input is exhausted.
func (s *Session) readMove() (dir threes.Direction, ok bool, err error) {
	for s.in.Scan() {
		if dir, ok := ParseCommand(s.in.Text()); ok {
			return dir, true, nil
		}
		if _, err := fmt.Fprintln(s.out, Prompt); err != nil {
			return 0, false, fmt.Errorf("write prompt: %w", err)
		}
	}
	if err := s.in.Err(); err != nil {
		return 0, false, fmt.Errorf("read input: %w", err)
	}
	return 0, false, nil
}
