package deck

// Shuffler is a source of random permutations, e.g. *rand.Rand from golang.org/x/exp/rand
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is a stack of cards. The last card is the top.
type Deck []*Card

// Shuffle permutes the deck in place
func (d *Deck) Shuffle(r Shuffler) {
	actualDeck := *d
	r.Shuffle(len(actualDeck), func(i, j int) {
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	})
}

func (d Deck) Len() int {
	return len(d)
}

// Top returns the top card without removing it
func (d Deck) Top() (*Card, bool) {
	if len(d) == 0 {
		return nil, false
	}
	return d[len(d)-1], true
}

// Pop removes and returns the top card
func (d *Deck) Pop() (*Card, bool) {
	top, ok := d.Top()
	if !ok {
		return nil, false
	}
	*d = (*d)[:len(*d)-1]
	return top, true
}

// Draw pops n cards one at a time, so the old top comes first.
// It draws nothing when n is out of range.
func (d *Deck) Draw(n int) []*Card {
	if n < 0 || n > len(*d) {
		return []*Card{}
	}
	drawn := make([]*Card, 0, n)
	for i := 0; i < n; i++ {
		c, _ := d.Pop()
		drawn = append(drawn, c)
	}
	return drawn
}
