package core

import (
	"math/rand"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
)

// windowSize is the length of one pre-shuffled sequence: two bags of seven.
const windowSize = 2 * KindCount

// Bag deals piece kinds so that every aligned run of seven draws contains
// each kind exactly once. It keeps the sequence being dealt plus the
// already-shuffled one after it, so a preview never has to trigger a refill.
type Bag struct {
	rng     *rand.Rand
	current [windowSize]Kind
	next    [windowSize]Kind
	cursor  int
}

// NewBag creates a bag drawing its shuffles from rng.
func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{rng: rng}
	b.current = b.generate()
	b.next = b.generate()
	return b
}

// generate builds one sequence from two independently shuffled bags.
func (b *Bag) generate() [windowSize]Kind {
	var seq [windowSize]Kind
	for half := 0; half < 2; half++ {
		bag := Kinds
		b.rng.Shuffle(len(bag), func(i, j int) {
			bag[i], bag[j] = bag[j], bag[i]
		})
		copy(seq[half*KindCount:], bag[:])
	}
	return seq
}

// Next deals the next kind, refilling first when the current sequence is spent.
func (b *Bag) Next() Kind {
	if b.cursor == windowSize {
		b.refill()
	}
	k := b.current[b.cursor]
	b.cursor++
	return k
}

// refill promotes the queued sequence and shuffles a new one behind it.
func (b *Bag) refill() {
	b.current = b.next
	b.next = b.generate()
	b.cursor = 0
}

// Peek returns the next n kinds without dealing them. n is capped at the
// length of one sequence.
func (b *Bag) Peek(n int) []Kind {
	n = platformcore.Clamp(n, 0, windowSize)
	out := make([]Kind, n)
	for i := range out {
		idx := b.cursor + i
		if idx < windowSize {
			out[i] = b.current[idx]
		} else {
			out[i] = b.next[idx-windowSize]
		}
	}
	return out
}
