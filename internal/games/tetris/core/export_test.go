package core

// Orientations returns the kind's rotation cycle starting at Up.
func Orientations(k Kind) []Orientation {
	cycle := []Orientation{OrientUp}
	for o := nextRotation(k, OrientUp).next; o != OrientUp; o = nextRotation(k, o).next {
		cycle = append(cycle, o)
	}
	return cycle
}

// Cursor returns how many kinds of the current sequence have been dealt.
func (b *Bag) Cursor() int {
	return b.cursor
}
