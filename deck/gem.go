package deck

import (
	"github.com/minaorangina/splendor/protocol"
)

// Color represents a gem colour. Gold is the wildcard token colour and,
// on cards, the category of aristocrats.
type Color int

const (
	Ruby Color = iota
	Diamond
	Onyx
	Emerald
	Sapphire
	Gold
)

const (
	// NumGems is the number of real gem colours
	NumGems = 5
	// NumTokenColors counts the real gems plus gold
	NumTokenColors = 6
)

// Aristocrat is the card category of invite-only bonus cards
const Aristocrat = Gold

var (
	colorNames = []string{"ruby", "diamond", "onyx", "emerald", "sapphire", "gold"}
	colorCodes = []string{"r", "d", "o", "e", "s", "x"}
	shortNames = []string{"ruby ", "diamd", "onyx ", "emrld", "saphi", "artcr"}
)

// Gems lists the five real colours in index order
var Gems = []Color{Ruby, Diamond, Onyx, Emerald, Sapphire}

func (c Color) String() string {
	if !c.Valid() {
		return "invalid"
	}
	return colorNames[c]
}

// Code is the single-character catalog code
func (c Color) Code() string {
	if !c.Valid() {
		return "?"
	}
	return colorCodes[c]
}

// ShortName is the five-character label used on rendered cards
func (c Color) ShortName() string {
	if !c.Valid() {
		return "     "
	}
	return shortNames[c]
}

func (c Color) Valid() bool {
	return c >= Ruby && c <= Gold
}

// IsGem reports whether c is one of the five real colours
func (c Color) IsGem() bool {
	return c >= Ruby && c < Gold
}

// ColorFromCode maps a catalog code to its colour
func ColorFromCode(code string) (Color, error) {
	for i, cc := range colorCodes {
		if cc == code {
			return Color(i), nil
		}
	}
	return 0, protocol.Errorf(protocol.InvalidArgument, "%q isn't a valid colour code", code)
}

// Cost is the price of a card in the five real colours
type Cost [NumGems]int

// Tokens counts tokens per colour, gold last
type Tokens [NumTokenColors]int

func (t Tokens) Add(o Tokens) Tokens {
	for i := range t {
		t[i] += o[i]
	}
	return t
}

func (t Tokens) Sub(o Tokens) Tokens {
	for i := range t {
		t[i] -= o[i]
	}
	return t
}

func (t Tokens) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Uniform returns a token vector with gems of each real colour and gold wildcards
func Uniform(gems, gold int) Tokens {
	return Tokens{gems, gems, gems, gems, gems, gold}
}
