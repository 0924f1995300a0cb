package engine

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/minaorangina/splendor/deck"
	"github.com/minaorangina/splendor/game"
	"github.com/minaorangina/splendor/protocol"
	"go.uber.org/zap"
)

const (
	welcomeText      = "Splendor rules console. Type \"help\" for commands.\n"
	promptText       = "> "
	errorText        = "Error: %s\n"
	goodbyeText      = "Bye!\n"
	boughtText       = "Player %d bought %s\n"
	cantAffordText   = "Player %d can't afford %s\n"
	reservedCardText = "Player %d reserved %s\n"
	invitedText      = "Player %d invited %s\n"
	noInviteText     = "No aristocrat will visit player %d yet\n"
	okText           = "OK\n"
	helpText         = `Commands (colours: r d o e s, gold x):
  take3 <player> <colour> [colour] [colour]   take up to three different gems
  take2 <player> <colour>                     take two gems of one colour
  return <player> <colour>                    give a token back to the bank
  buy <player> [row slot]                     buy a card, prompts when no position is given
  reserve <player> [row slot]                 reserve a card and take a gold token
  invite <player>                             invite the first aristocrat the player qualifies for
  refill                                      deal new cards into empty slots
  board                                       show the board
  player <player>                             show a player
  quit
Slots 0-3 are the open cards of a tier row, 4 is the top of its deck, 5 is reserved card <row>.
`
)

// Console runs commands against a game. Any player may act at any time.
type Console struct {
	game     *game.Game
	in       *bufio.Scanner
	out      io.Writer
	selector *ConsoleSelector
	log      *zap.Logger
}

// NewConsole reads commands from in. Position prompts share the same input.
func NewConsole(g *game.Game, in io.Reader, out io.Writer, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	scanner := bufio.NewScanner(in)
	return &Console{
		game:     g,
		in:       scanner,
		out:      out,
		selector: &ConsoleSelector{in: scanner, out: out},
		log:      log,
	}
}

// Run reads commands until quit or the end of input. Rejected commands are
// reported and the console carries on.
func (c *Console) Run() error {
	SendText(c.out, welcomeText)
	for {
		SendText(c.out, promptText)
		if !c.in.Scan() {
			return c.in.Err()
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}

		quit, err := c.Execute(line)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			c.log.Info("command rejected", zap.String("command", line), zap.Error(err))
			SendText(c.out, errorText, err)
			continue
		}
		if quit {
			SendText(c.out, goodbyeText)
			return nil
		}
	}
}

// Execute runs one command line and reports whether it asked to quit
func (c *Console) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	c.log.Debug("command received", zap.String("command", cmd), zap.Strings("args", args))

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		SendText(c.out, helpText)
		return false, nil
	case "board":
		SendText(c.out, RenderBoard(c.game))
		return false, nil
	case "refill":
		c.game.RefillDisplay()
		SendText(c.out, okText)
		return false, nil
	}

	if len(args) == 0 {
		return false, protocol.Errorf(protocol.InvalidArgument, "%s needs a player id, see help", cmd)
	}
	playerID, err := parseInt(args[0])
	if err != nil {
		return false, err
	}
	args = args[1:]

	switch cmd {
	case "player":
		p, err := c.game.Player(playerID)
		if err != nil {
			return false, err
		}
		SendText(c.out, RenderPlayer(p))
	case "take3":
		err = c.takeThree(playerID, args)
	case "take2":
		err = c.withColor(args, func(color deck.Color) error { return c.game.DrawTwoSame(color, playerID) })
	case "return":
		err = c.withColor(args, func(color deck.Color) error { return c.game.ReturnToken(color, playerID) })
	case "buy":
		err = c.buy(playerID, args)
	case "reserve":
		err = c.reserve(playerID, args)
	case "invite":
		err = c.invite(playerID)
	default:
		err = protocol.Errorf(protocol.InvalidArgument, "unknown command %q, see help", cmd)
	}
	return false, err
}

func (c *Console) takeThree(playerID int, codes []string) error {
	if !charsUnique(strings.Join(codes, "")) {
		return protocol.Errorf(protocol.InvalidArgument, "pick different colours, got %s", strings.Join(codes, " "))
	}
	colors, err := parseColors(codes)
	if err != nil {
		return err
	}
	if err := c.game.DrawThreeDistinct(colors, playerID); err != nil {
		return err
	}
	SendText(c.out, okText)
	return nil
}

func (c *Console) withColor(codes []string, action func(deck.Color) error) error {
	if len(codes) != 1 {
		return protocol.Errorf(protocol.InvalidArgument, "expected one colour, got %d", len(codes))
	}
	colors, err := parseColors(codes)
	if err != nil {
		return err
	}
	if err := action(colors[0]); err != nil {
		return err
	}
	SendText(c.out, okText)
	return nil
}

func (c *Console) buy(playerID int, args []string) error {
	card, sel, err := c.choose(playerID, args)
	if err != nil {
		return err
	}
	bought, err := c.game.ExecutePurchase(card, sel, playerID)
	if err != nil {
		return err
	}
	if !bought {
		SendText(c.out, cantAffordText, playerID, card)
		return nil
	}
	SendText(c.out, boughtText, playerID, card)
	return nil
}

func (c *Console) reserve(playerID int, args []string) error {
	card, sel, err := c.choose(playerID, args)
	if err != nil {
		return err
	}
	reserved, err := c.game.ExecuteReservation(card, sel, playerID)
	if err != nil {
		return err
	}
	SendText(c.out, reservedCardText, playerID, reserved)
	return nil
}

func (c *Console) invite(playerID int) error {
	noble, err := c.game.InviteEligibleNoble(playerID)
	if err != nil {
		return err
	}
	if noble == nil {
		SendText(c.out, noInviteText, playerID)
		return nil
	}
	SendText(c.out, invitedText, playerID, noble)
	return nil
}

// choose takes the position from args, or prompts for it
func (c *Console) choose(playerID int, args []string) (*deck.Card, protocol.Selection, error) {
	switch len(args) {
	case 0:
		return c.game.ResolveSelection(playerID, c.selector)
	case 2:
		row, err := parseInt(args[0])
		if err != nil {
			return nil, protocol.Selection{}, err
		}
		slot, err := parseInt(args[1])
		if err != nil {
			return nil, protocol.Selection{}, err
		}
		sel := protocol.Selection{Row: row, Slot: slot}
		card, err := c.game.Resolve(playerID, sel)
		return card, sel, err
	default:
		return nil, protocol.Selection{}, protocol.Errorf(protocol.InvalidArgument,
			"expected a row and a slot, got %d values", len(args))
	}
}
