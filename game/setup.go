package game

import (
	"github.com/minaorangina/splendor/deck"
	"github.com/minaorangina/splendor/protocol"
	"go.uber.org/zap"
)

const (
	tier1Size = 40
	tier2Size = 30
	tier3Size = 20

	// RegularCards is the number of development cards at the head of a catalog
	RegularCards = tier1Size + tier2Size + tier3Size

	goldTokens = 5
)

// gems per colour in the bank, by player count
var bankSizes = map[int]int{2: 4, 3: 5, 4: 7}

// Setup readies the bank, the decks and the players
func (g *Game) Setup(cards []*deck.Card) error {
	g.ConfigureTokens()
	if err := g.ConfigureDecks(cards); err != nil {
		return err
	}
	g.ConfigurePlayers()

	sizes := g.DeckSizes()
	g.log.Info("game set up",
		zap.Int("players", g.playerCount),
		zap.Ints("deckSizes", sizes[:]),
	)
	return nil
}

func (g *Game) ConfigureTokens() {
	g.tokens = deck.Uniform(bankSizes[g.playerCount], goldTokens)
}

// SplitTiers partitions a catalog by position: 40 tier 1 cards, 30 tier 2,
// 20 tier 3, and aristocrats for the rest
func SplitTiers(cards []*deck.Card) ([NumTiers]deck.Deck, deck.Deck) {
	var tiers [NumTiers]deck.Deck
	bounds := []int{0, tier1Size, tier1Size + tier2Size, RegularCards}
	for i := range tiers {
		lo, hi := min(bounds[i], len(cards)), min(bounds[i+1], len(cards))
		tiers[i] = append(deck.Deck{}, cards[lo:hi]...)
	}

	nobles := deck.Deck{}
	if len(cards) > RegularCards {
		nobles = append(nobles, cards[RegularCards:]...)
	}
	return tiers, nobles
}

// ConfigureDecks splits and shuffles the catalog, then deals the face-up cards
func (g *Game) ConfigureDecks(cards []*deck.Card) error {
	need := RegularCards + g.playerCount + 1
	if len(cards) < need {
		return protocol.Errorf(protocol.InvalidArgument,
			"catalog has %d cards, a %d player game needs at least %d", len(cards), g.playerCount, need)
	}
	for i, c := range cards {
		if c == nil {
			return protocol.Errorf(protocol.InvalidArgument, "catalog entry %d is empty", i)
		}
		want := tierAt(i)
		if want == 0 && !c.IsAristocrat() {
			return protocol.Errorf(protocol.InvalidArgument, "catalog entry %d should be an aristocrat, got %s", i, c)
		}
		if c.Tier() != want {
			return protocol.Errorf(protocol.InvalidArgument,
				"catalog entry %d should be a tier %d card, got %s", i, want, c)
		}
	}

	tiers, nobles := SplitTiers(cards)
	for i := range tiers {
		tiers[i].Shuffle(g.rng)
	}
	nobles.Shuffle(g.rng)

	for i := range tiers {
		g.openCards[i] = tiers[i].Draw(DisplayWidth)
	}
	g.openCards[NobleRow] = nobles.Draw(g.playerCount + 1)
	g.tiers = tiers
	g.nobles = nobles

	return nil
}

// tierAt is the tier expected at catalog position i, 0 for aristocrats
func tierAt(i int) int {
	switch {
	case i < tier1Size:
		return 1
	case i < tier1Size+tier2Size:
		return 2
	case i < RegularCards:
		return 3
	}
	return 0
}

func (g *Game) ConfigurePlayers() {
	g.players = make([]*Player, 0, g.playerCount)
	for i := 0; i < g.playerCount; i++ {
		g.players = append(g.players, NewPlayer(i))
	}
}
