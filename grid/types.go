// Package grid defines core types, sentinel errors, and cell kinds
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a row or column outside [0, N).
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrInvalidAssignment indicates an illegal Start/Target/Obstacle edit.
	ErrInvalidAssignment = errors.New("grid: invalid cell assignment")
	// ErrMissingEndpoints indicates a search was requested without both Start and Target.
	ErrMissingEndpoints = errors.New("grid: start and target must both be set")
	// ErrInvalidDimension indicates a non-positive grid dimension.
	ErrInvalidDimension = errors.New("grid: dimension must be positive")
	// ErrEmptyGrid indicates a layout with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: layout must have at least one row and one column")
	// ErrNonSquare indicates a layout whose rows differ in length or whose
	// row count differs from its column count.
	ErrNonSquare = errors.New("grid: layout must be square")
	// ErrUnknownGlyph indicates a layout character with no matching Kind.
	ErrUnknownGlyph = errors.New("grid: unknown layout glyph")
)

// Kind classifies a cell. Kinds are mutually exclusive.
type Kind uint8

const (
	// Empty is a free, unexplored cell.
	Empty Kind = iota
	// Start is the unique search origin.
	Start
	// Target is the unique search destination.
	Target
	// Obstacle is impassable and never produced by the neighbor policy.
	Obstacle
	// Visited marks a cell a running search has reached (the frontier trail).
	Visited
	// Path marks a cell on the reconstructed route.
	Path
)

var kindNames = [...]string{
	Empty:    "empty",
	Start:    "start",
	Target:   "target",
	Obstacle: "obstacle",
	Visited:  "visited",
	Path:     "path",
}

var kindGlyphs = [...]byte{
	Empty:    '.',
	Start:    'S',
	Target:   'T',
	Obstacle: '#',
	Visited:  'o',
	Path:     '*',
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return int(k) < len(kindNames) }

// String returns the lower-case name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Glyph returns the single-character layout symbol of k.
func (k Kind) Glyph() byte {
	if !k.Valid() {
		return '?'
	}
	return kindGlyphs[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("grid: cannot marshal %s", k)
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind maps a kind name ("empty", "start", ...) back to a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return Empty, fmt.Errorf("%w: unknown kind %q", ErrInvalidAssignment, name)
}

// kindFromGlyph maps a layout symbol back to a Kind.
func kindFromGlyph(c byte) (Kind, bool) {
	for k, g := range kindGlyphs {
		if g == c {
			return Kind(k), true
		}
	}
	return Empty, false
}

// Position identifies a cell by row and column. It is the cell's identity.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a read-only snapshot of one grid position and its search bookkeeping.
type Cell struct {
	Position Position // Identity within the grid
	Kind     Kind     // Current classification
	G        float64  // Accumulated path cost from Start
	H        float64  // Heuristic estimate to Target
}

// F returns the priority G + H.
func (c Cell) F() float64 { return c.G + c.H }

// Grid is an N×N matrix of cells stored row-major.
//
// start and target hold row-major indices of the endpoints (-1 when unset);
// the endpoints are tracked by identity so that Path marking never loses them.
// parent holds, per cell, the row-major index of its predecessor in the
// current search (-1 for none).
type Grid struct {
	n      int
	cells  []Cell
	parent []int
	start  int
	target int
}
