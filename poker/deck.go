package poker

import "math/rand"

// Deck represents a standard 52-card deck, or a subset of it with dead
// cards excluded. It is used by the equity oracle to Monte Carlo
// complete boards with fewer than five known cards.
type Deck struct {
	cards [52]Card
	next  int
	live  int // number of usable slots; 0 means "use all 52"
	rng   *rand.Rand
}

// NewDeck creates a new shuffled 52-card deck using the supplied RNG.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	i := 0
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}
	d.Shuffle()
	return d
}

// NewDeckExcluding creates a shuffled deck with the given dead cards
// removed, so the equity oracle never deals a blocked card.
func NewDeckExcluding(rng *rand.Rand, dead Hand) *Deck {
	d := &Deck{rng: rng}
	i := 0
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			c := NewCard(rank, suit)
			if dead.HasCard(c) {
				continue
			}
			d.cards[i] = c
			i++
		}
	}
	d.live = i
	d.Shuffle()
	return d
}

// Shuffle reshuffles the deck using Fisher-Yates and resets the deal
// cursor.
func (d *Deck) Shuffle() {
	d.next = 0
	n := d.size()
	for i := n - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.Intn(i + 1)
		} else {
			j = rand.Intn(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

func (d *Deck) size() int {
	if d.live > 0 {
		return d.live
	}
	return 52
}

// Deal deals n cards from the deck, or nil if fewer than n remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > d.size() {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealOne deals a single card, or 0 if the deck is exhausted.
func (d *Deck) DealOne() Card {
	if d.next >= d.size() {
		return 0
	}
	card := d.cards[d.next]
	d.next++
	return card
}

// CardsRemaining reports how many cards are left to deal.
func (d *Deck) CardsRemaining() int {
	return d.size() - d.next
}

// Reset reshuffles the deck and resets the deal cursor.
func (d *Deck) Reset() {
	d.Shuffle()
}
