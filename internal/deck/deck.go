package deck

import (
	"errors"

	"github.com/samdwyer/aegean/internal/random"
)

// ErrEmptyDeck indicates a deck was built with no cards.
var ErrEmptyDeck = errors.New("deck needs at least one card")

// Deck is a value type: the full card set plus the queue of cards left in the
// current pass. Operations return a new Deck and never modify the receiver's
// backing arrays, so old game states stay valid.
type Deck struct {
	cards []Card
	queue []Card
}

// New returns a deck over cards with an empty queue. The first Draw shuffles.
func New(cards []Card) (Deck, error) {
	if len(cards) == 0 {
		return Deck{}, ErrEmptyDeck
	}
	all := make([]Card, len(cards))
	copy(all, cards)
	return Deck{cards: all}, nil
}

// Shuffled returns the deck with a fresh uniform permutation of every card queued.
func (d Deck) Shuffled(src random.Source) Deck {
	queue := make([]Card, len(d.cards))
	copy(queue, d.cards)
	random.Shuffle(src, len(queue), func(i, j int) { queue[i], queue[j] = queue[j], queue[i] })
	return Deck{cards: d.cards, queue: queue}
}

// Draw pops the head of the queue, reshuffling the full set first when the
// current pass is exhausted. Draw never blocks and never fails on a deck
// built by New.
func (d Deck) Draw(src random.Source) (Card, Deck) {
	if len(d.queue) == 0 {
		d = d.Shuffled(src)
	}
	return d.queue[0], Deck{cards: d.cards, queue: d.queue[1:]}
}

// Remaining returns the number of cards left in the current pass.
func (d Deck) Remaining() int {
	return len(d.queue)
}

// Size returns the number of cards in the full set.
func (d Deck) Size() int {
	return len(d.cards)
}

// Peek returns the queued cards in draw order. The slice is a copy.
func (d Deck) Peek() []Card {
	out := make([]Card, len(d.queue))
	copy(out, d.queue)
	return out
}
