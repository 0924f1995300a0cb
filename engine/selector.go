package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minaorangina/splendor/protocol"
)

const (
	chooseRowText  = "Player %d, choose a row of cards: "
	chooseSlotText = "Choose a card in that row (0-3 open, 4 deck top, 5 reserved): "
)

// ConsoleSelector asks for a row and a slot on the console.
// Bad input is reported, never retried.
type ConsoleSelector struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsoleSelector(in io.Reader, out io.Writer) *ConsoleSelector {
	return &ConsoleSelector{in: bufio.NewScanner(in), out: out}
}

func (s *ConsoleSelector) Select(playerID int) (protocol.Selection, error) {
	row, err := s.readInt(fmt.Sprintf(chooseRowText, playerID))
	if err != nil {
		return protocol.Selection{}, err
	}
	slot, err := s.readInt(chooseSlotText)
	if err != nil {
		return protocol.Selection{}, err
	}
	return protocol.Selection{Row: row, Slot: slot}, nil
}

func (s *ConsoleSelector) readInt(prompt string) (int, error) {
	SendText(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("reading selection: %w", io.EOF)
	}
	return parseInt(s.in.Text())
}

func parseInt(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, protocol.Errorf(protocol.InvalidArgument,
			"couldn't read %q as a whole number", strings.TrimSpace(text))
	}
	return n, nil
}
