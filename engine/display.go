package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/splendor/deck"
	"github.com/minaorangina/splendor/game"
)

const (
	cardWidth  = 19
	cardHeight = 10

	tierHeaderText  = "Tier %d (%d in deck)\n"
	noblesText      = "Aristocrats\n"
	bankText        = "Bank: %s\n"
	playerText      = "Player %d\n"
	tokensText      = "  tokens:   %s\n"
	powerText       = "  cards:    %s\n"
	ownedText       = "  owned:    %s\n"
	reservedText    = "  reserved: %s\n"
	emptySlotMarker = "-"
)

var costLabels = [deck.NumGems]string{"rub", "dia", "onx", "emd", "sap"}

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// RenderCard draws a card as a 10 line box. A nil card is drawn as blank space of the same size.
func RenderCard(c *deck.Card) string {
	return strings.Join(cardLines(c), "\n")
}

func cardLines(c *deck.Card) []string {
	if c == nil {
		lines := make([]string, cardHeight)
		for i := range lines {
			lines[i] = strings.Repeat(" ", cardWidth)
		}
		return lines
	}

	points := "   "
	if c.Points() > 0 {
		points = fmt.Sprintf(" %d ", c.Points())
	}
	rank := " R" + strings.Repeat("I", c.Tier()) + strings.Repeat(" ", game.NumTiers-c.Tier()) + " "
	cost := c.Cost()

	lines := []string{
		"╔═════════════════╗",
		fmt.Sprintf("║ %s       %s ║", c.Category().ShortName(), points),
		fmt.Sprintf("║    +    %s  ║", rank),
		"║   /_\\           ║",
	}
	art := []string{"  :<_>:  ", " /=====\\ ", " :_[I]_: ", "::::::::: ", "          "}
	for i, label := range costLabels {
		lines = append(lines, fmt.Sprintf("║%-10s%2d %s ║", art[i], cost[i], label))
	}
	return append(lines, "╚═════════════════╝")
}

// renderRow puts cards side by side
func renderRow(cards []*deck.Card) string {
	rows := make([]string, cardHeight)
	for _, c := range cards {
		for i, line := range cardLines(c) {
			rows[i] += line + " "
		}
	}
	for i := range rows {
		rows[i] = strings.TrimRight(rows[i], " ")
	}
	return strings.Join(rows, "\n") + "\n"
}

// RenderBoard draws the bank, the three tiers and the aristocrat row
func RenderBoard(g *game.Game) string {
	var b strings.Builder
	open := g.OpenCards()
	sizes := g.DeckSizes()

	SendText(&b, bankText, formatTokens(g.Tokens()))
	for row := game.NumTiers - 1; row >= 0; row-- {
		SendText(&b, tierHeaderText, row+1, sizes[row])
		b.WriteString(renderRow(open[row]))
	}
	b.WriteString(noblesText)
	b.WriteString(renderRow(open[game.NobleRow]))
	return b.String()
}

// RenderPlayer summarises a player in a few lines
func RenderPlayer(p *game.Player) string {
	var b strings.Builder
	SendText(&b, playerText, p.ID)
	SendText(&b, tokensText, formatTokens(p.Tokens()))

	var power deck.Tokens
	cardPower := p.CardPower()
	copy(power[:], cardPower[:])
	SendText(&b, powerText, formatTokens(power))

	owned := []string{}
	for _, c := range p.Cards() {
		owned = append(owned, c.String())
	}
	if len(owned) == 0 {
		owned = append(owned, emptySlotMarker)
	}
	SendText(&b, ownedText, strings.Join(owned, " "))

	reserved := []string{}
	for _, c := range p.Reserved() {
		if c == nil {
			reserved = append(reserved, emptySlotMarker)
			continue
		}
		reserved = append(reserved, c.String())
	}
	SendText(&b, reservedText, strings.Join(reserved, " "))
	return b.String()
}

func formatTokens(t deck.Tokens) string {
	parts := make([]string, 0, len(t))
	for i, n := range t {
		parts = append(parts, fmt.Sprintf("%s %d", deck.Color(i).Code(), n))
	}
	return strings.Join(parts, "  ")
}
