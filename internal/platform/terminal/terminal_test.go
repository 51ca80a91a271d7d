package terminal

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/vovakirdan/tui-threes/internal/games/threes"
)

// nearlyStuck only moves left or right; after a left move with a 1 as the
// next card no moves remain.
var nearlyStuck = threes.Grid{
	{192, 384, 1, 1},
	{6, 3, 1, 3},
	{192, 48, 1, 2},
	{6, 12, 24, 6},
}

func stuckBoard() *threes.Board {
	return threes.RestoreBoard(rand.New(rand.NewSource(1)), threes.DefaultRules(), nearlyStuck, 1)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		dir  threes.Direction
		ok   bool
	}{
		{"w", threes.DirUp, true},
		{"W", threes.DirUp, true},
		{"a", threes.DirLeft, true},
		{"S", threes.DirDown, true},
		{" d \r", threes.DirRight, true},
		{"", 0, false},
		{"ww", 0, false},
		{"up", 0, false},
		{"x", 0, false},
	}

	for _, tt := range tests {
		dir, ok := ParseCommand(tt.line)
		if ok != tt.ok || (ok && dir != tt.dir) {
			t.Errorf("ParseCommand(%q) = (%s, %v), want (%s, %v)", tt.line, dir, ok, tt.dir, tt.ok)
		}
	}
}

func TestFormatGrid(t *testing.T) {
	grid := threes.Grid{
		{0, 1, 2, 3},
		{},
		{6, 0, 0, 0},
		{0, 0, 0, 768},
	}
	want := "\nX\t1\t2\t3\t" +
		"\nX\tX\tX\tX\t" +
		"\n6\tX\tX\tX\t" +
		"\nX\tX\tX\t768\t\n"

	if got := FormatGrid(grid); got != want {
		t.Errorf("FormatGrid() = %q, want %q", got, want)
	}
}

func TestRunUntilGameOver(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("x\nleft\na\n")

	res, err := NewSession(stuckBoard(), in, &out, nil).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !res.Finished || res.Moves != 1 || res.Rejected != 0 {
		t.Errorf("Run() = %+v, want one move and a finished game", res)
	}
	if res.Score != 11322 {
		t.Errorf("Score = %d, want 11322", res.Score)
	}

	text := out.String()
	if n := strings.Count(text, Prompt); n != 2 {
		t.Errorf("prompt printed %d times, want 2", n)
	}
	if !strings.Contains(text, "Next card: 1\n") {
		t.Error("output should show the next card")
	}
	if !strings.HasSuffix(text, "Game over!\nYou scored: 11322\n") {
		t.Errorf("output should end with the result, got %q", text)
	}
}

func TestRunInvalidMove(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("w\ns\na\n")

	res, err := NewSession(stuckBoard(), in, &out, nil).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Rejected != 2 || res.Moves != 1 {
		t.Errorf("Run() = %+v, want 2 rejected and 1 move", res)
	}
	if n := strings.Count(out.String(), threes.StatusInvalidMove); n != 2 {
		t.Errorf("%q printed %d times, want 2", threes.StatusInvalidMove, n)
	}
	// The board is printed again after every rejected move
	if n := strings.Count(out.String(), "Next card:"); n != 3 {
		t.Errorf("board printed %d times, want 3", n)
	}
}

func TestRunEndOfInput(t *testing.T) {
	var out bytes.Buffer

	res, err := NewSession(stuckBoard(), strings.NewReader("q\n"), &out, nil).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Finished {
		t.Error("game should not be finished when input ends")
	}
	if res.Moves != 0 {
		t.Errorf("Moves = %d, want 0", res.Moves)
	}
	if strings.Contains(out.String(), threes.StatusGameOver) {
		t.Error("game over should not be printed when input ends")
	}
}

func TestRunReadError(t *testing.T) {
	boom := errors.New("boom")
	var out bytes.Buffer

	_, err := NewSession(stuckBoard(), iotest.ErrReader(boom), &out, nil).Run()
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want %v", err, boom)
	}
}
