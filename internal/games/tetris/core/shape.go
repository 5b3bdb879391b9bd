// Package core provides the falling-block simulation for the tetris game.
// This package is UI-agnostic and deterministic for a given seed.
package core

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven piece shapes.
type Kind uint8

const (
	KindI Kind = iota // line
	KindO             // square
	KindL
	KindJ
	KindS
	KindZ
	KindT
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

// Kinds lists every kind in bag order.
var Kinds = [KindCount]Kind{KindI, KindO, KindL, KindJ, KindS, KindZ, KindT}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindT:
		return "T"
	default:
		return "?"
	}
}

// Color returns the display color of the kind.
func (k Kind) Color() platformcore.Color {
	switch k {
	case KindI:
		return platformcore.ColorCyan
	case KindO:
		return platformcore.ColorBrightYellow
	case KindL:
		return platformcore.ColorOrange
	case KindJ:
		return platformcore.ColorBrightBlue
	case KindS:
		return platformcore.ColorBrightGreen
	case KindZ:
		return platformcore.ColorBrightRed
	case KindT:
		return platformcore.ColorMagenta
	default:
		return platformcore.ColorDefault
	}
}

// Orientation is one of the four rotation states.
type Orientation uint8

const (
	OrientUp Orientation = iota
	OrientRight
	OrientDown
	OrientLeft
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientUp:
		return "Up"
	case OrientRight:
		return "Right"
	case OrientDown:
		return "Down"
	case OrientLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Coord is a board-space or relative position. Y grows downward.
type Coord struct {
	X, Y int
}

// C is shorthand for constructing a Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the component-wise sum.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

type shapeKey struct {
	kind   Kind
	orient Orientation
}

// shapes holds the relative cell offsets for every reachable (kind, orientation).
// The square only defines Up; the line and the S/Z pieces only Up and Left.
var shapes = map[shapeKey][4]Coord{
	{KindI, OrientUp}:   {C(0, 0), C(0, 1), C(0, 2), C(0, 3)},
	{KindI, OrientLeft}: {C(0, 0), C(1, 0), C(2, 0), C(3, 0)},

	{KindO, OrientUp}: {C(0, 0), C(0, 1), C(1, 0), C(1, 1)},

	{KindL, OrientUp}:    {C(0, 0), C(0, 1), C(0, 2), C(1, 2)},
	{KindL, OrientRight}: {C(0, 0), C(0, 1), C(1, 0), C(2, 0)},
	{KindL, OrientDown}:  {C(0, 0), C(1, 0), C(1, 1), C(1, 2)},
	{KindL, OrientLeft}:  {C(0, 1), C(1, 1), C(2, 1), C(2, 0)},

	{KindJ, OrientUp}:    {C(1, 0), C(1, 1), C(1, 2), C(0, 2)},
	{KindJ, OrientRight}: {C(0, 0), C(0, 1), C(1, 1), C(2, 1)},
	{KindJ, OrientDown}:  {C(0, 0), C(1, 0), C(0, 1), C(0, 2)},
	{KindJ, OrientLeft}:  {C(0, 0), C(1, 0), C(2, 0), C(2, 1)},

	{KindS, OrientUp}:   {C(0, 0), C(0, 1), C(1, 1), C(1, 2)},
	{KindS, OrientLeft}: {C(0, 1), C(1, 1), C(1, 0), C(2, 0)},

	{KindZ, OrientUp}:   {C(1, 0), C(1, 1), C(0, 1), C(0, 2)},
	{KindZ, OrientLeft}: {C(0, 0), C(1, 0), C(1, 1), C(2, 1)},

	{KindT, OrientUp}:    {C(1, 0), C(0, 1), C(1, 1), C(2, 1)},
	{KindT, OrientRight}: {C(0, 0), C(0, 1), C(0, 2), C(1, 1)},
	{KindT, OrientDown}:  {C(0, 0), C(1, 0), C(2, 0), C(1, 1)},
	{KindT, OrientLeft}:  {C(1, 0), C(1, 1), C(1, 2), C(0, 1)},
}

// transition is one edge of a kind's rotation cycle. Kick moves the anchor so
// the shape turns in place: every kick keeps at least one cell of the piece
// where it was (the cell it pivots on), and the kicks around any cycle sum to
// zero so four turns of L, J or T, or two of I, S or Z, restore the piece.
type transition struct {
	next Orientation
	kick Coord
}

var rotations = map[shapeKey]transition{
	{KindI, OrientUp}:   {OrientLeft, C(-2, 1)},
	{KindI, OrientLeft}: {OrientUp, C(2, -1)},

	{KindO, OrientUp}: {OrientUp, C(0, 0)},

	{KindL, OrientUp}:    {OrientRight, C(-1, 1)},
	{KindL, OrientRight}: {OrientDown, C(0, -1)},
	{KindL, OrientDown}:  {OrientLeft, C(0, 0)},
	{KindL, OrientLeft}:  {OrientUp, C(1, 0)},

	{KindJ, OrientUp}:    {OrientRight, C(0, 0)},
	{KindJ, OrientRight}: {OrientDown, C(1, 0)},
	{KindJ, OrientDown}:  {OrientLeft, C(-1, 1)},
	{KindJ, OrientLeft}:  {OrientUp, C(0, -1)},

	{KindS, OrientUp}:   {OrientLeft, C(-1, 0)},
	{KindS, OrientLeft}: {OrientUp, C(1, 0)},

	{KindZ, OrientUp}:   {OrientLeft, C(-1, 0)},
	{KindZ, OrientLeft}: {OrientUp, C(1, 0)},

	{KindT, OrientUp}:    {OrientRight, C(1, 0)},
	{KindT, OrientRight}: {OrientDown, C(-1, 1)},
	{KindT, OrientDown}:  {OrientLeft, C(0, -1)},
	{KindT, OrientLeft}:  {OrientUp, C(0, 0)},
}

// Shape returns the relative offsets of a kind in an orientation.
// Asking for a combination outside the kind's rotation cycle is a bug and panics.
func Shape(k Kind, o Orientation) [4]Coord {
	offsets, ok := shapes[shapeKey{k, o}]
	if !ok {
		panic(fmt.Sprintf("tetris: undefined shape %v/%v", k, o))
	}
	return offsets
}

// nextRotation returns the rotation edge leaving (k, o).
func nextRotation(k Kind, o Orientation) transition {
	t, ok := rotations[shapeKey{k, o}]
	if !ok {
		panic(fmt.Sprintf("tetris: no rotation from %v/%v", k, o))
	}
	return t
}
