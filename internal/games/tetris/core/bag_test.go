package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

func TestBagFairness(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		b := core.NewBag(rand.New(rand.NewSource(seed)))
		for run := 0; run < 10; run++ {
			seen := make(map[core.Kind]int, core.KindCount)
			for i := 0; i < core.KindCount; i++ {
				seen[b.Next()]++
			}
			for _, k := range core.Kinds {
				if seen[k] != 1 {
					t.Fatalf("seed %d run %d: kind %v dealt %d times, expected once", seed, run, k, seen[k])
				}
			}
		}
	}
}

func TestBagPeekMatchesDeal(t *testing.T) {
	// Peeking from every cursor position, including across the refill, must
	// show exactly what is dealt next.
	b := core.NewBag(rand.New(rand.NewSource(7)))
	for step := 0; step < 30; step++ {
		peeked := b.Peek(5)

		clone := core.NewBag(rand.New(rand.NewSource(7)))
		for i := 0; i < step; i++ {
			clone.Next()
		}
		for i, want := range peeked {
			if got := clone.Next(); got != want {
				t.Fatalf("step %d: Peek(5)[%d] = %v but dealt %v", step, i, want, got)
			}
		}

		b.Next()
	}
}

func TestBagPeekDoesNotAdvance(t *testing.T) {
	b := core.NewBag(rand.New(rand.NewSource(3)))
	first := b.Peek(3)
	second := b.Peek(3)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Peek changed between calls: %v vs %v", first, second)
		}
	}
	if b.Cursor() != 0 {
		t.Errorf("Cursor() = %d after peeking, expected 0", b.Cursor())
	}
}

func TestBagRefillResetsCursor(t *testing.T) {
	b := core.NewBag(rand.New(rand.NewSource(11)))
	for i := 0; i < 14; i++ {
		b.Next()
	}
	if b.Cursor() != 14 {
		t.Fatalf("Cursor() = %d, expected 14", b.Cursor())
	}

	b.Next()
	if b.Cursor() != 1 {
		t.Errorf("Cursor() = %d after refill, expected 1", b.Cursor())
	}
}

func TestBagPeekCapped(t *testing.T) {
	b := core.NewBag(rand.New(rand.NewSource(5)))
	if got := len(b.Peek(40)); got != 14 {
		t.Errorf("len(Peek(40)) = %d, expected 14", got)
	}
	if got := len(b.Peek(-1)); got != 0 {
		t.Errorf("len(Peek(-1)) = %d, expected 0", got)
	}
}

func TestBagDeterministic(t *testing.T) {
	a := core.NewBag(rand.New(rand.NewSource(42)))
	b := core.NewBag(rand.New(rand.NewSource(42)))
	for i := 0; i < 50; i++ {
		if ka, kb := a.Next(), b.Next(); ka != kb {
			t.Fatalf("draw %d: %v vs %v with the same seed", i, ka, kb)
		}
	}
}
