package game

import (
	"time"

	"github.com/minaorangina/splendor/deck"
	"github.com/minaorangina/splendor/protocol"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

const (
	minPlayers = 2
	maxPlayers = 4

	// NumTiers is the number of development card tiers
	NumTiers = 3
	// DisplayWidth is the number of face-up cards per tier
	DisplayWidth = 4
	// NobleRow is the index of the aristocrat row in the open cards
	NobleRow = NumTiers
)

var (
	ErrTooFewPlayers  = protocol.Errorf(protocol.InvalidArgument, "minimum of %d players required", minPlayers)
	ErrTooManyPlayers = protocol.Errorf(protocol.InvalidArgument, "maximum of %d players allowed", maxPlayers)
)

// Game holds the shared bank, the decks, the face-up cards and the players.
// It is not safe for concurrent use.
type Game struct {
	id          string
	playerCount int
	tokens      deck.Tokens
	tiers       [NumTiers]deck.Deck
	nobles      deck.Deck
	openCards   [NumTiers + 1][]*deck.Card
	players     []*Player
	rng         deck.Shuffler
	log         *zap.Logger
}

type Option func(*Game)

func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithRand sets the source used to shuffle the decks
func WithRand(r deck.Shuffler) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

func WithID(id string) Option {
	return func(g *Game) {
		if id != "" {
			g.id = id
		}
	}
}

// New constructs a game for 2 to 4 players. Call Setup before playing.
func New(playerCount int, opts ...Option) (*Game, error) {
	if playerCount < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if playerCount > maxPlayers {
		return nil, ErrTooManyPlayers
	}

	g := &Game{
		id:          uuid.NewV4().String(),
		playerCount: playerCount,
		players:     []*Player{},
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With(zap.String("game", g.id))

	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) PlayerCount() int {
	return g.playerCount
}

// Tokens returns the bank
func (g *Game) Tokens() deck.Tokens {
	return g.tokens
}

func (g *Game) DeckSizes() [NumTiers]int {
	var sizes [NumTiers]int
	for i, d := range g.tiers {
		sizes[i] = d.Len()
	}
	return sizes
}

// OpenCards returns a copy of the face-up grid: three tier rows and the aristocrat row
func (g *Game) OpenCards() [][]*deck.Card {
	grid := make([][]*deck.Card, len(g.openCards))
	for i, row := range g.openCards {
		grid[i] = make([]*deck.Card, len(row))
		copy(grid[i], row)
	}
	return grid
}

// Player looks up a seat
func (g *Game) Player(id int) (*Player, error) {
	if id < 0 || id >= len(g.players) {
		return nil, protocol.Errorf(protocol.NotFound, "no player with id %d", id)
	}
	return g.players[id], nil
}

func (g *Game) Players() []*Player {
	ps := make([]*Player, len(g.players))
	copy(ps, g.players)
	return ps
}

// TokenTotals adds every player's tokens to the bank. It is constant for the life of a game.
func (g *Game) TokenTotals() deck.Tokens {
	total := g.tokens
	for _, p := range g.players {
		total = total.Add(p.Tokens())
	}
	return total
}
