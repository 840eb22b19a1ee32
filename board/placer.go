package board

import (
	"errors"

	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when every tile on the board is excluded.
var ErrBoardFull = errors.New("board: no free tile")

// DefaultMaxAttempts bounds rejection sampling before falling back to a
// scan of the free tiles.
const DefaultMaxAttempts = 256

// Source is the random source consumed by a Placer.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded PCG source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(uint64(seed)))
}

// Placer produces random tiles that satisfy an exclusion predicate.
type Placer struct {
	board       Board
	rng         Source
	maxAttempts int
}

// NewPlacer creates a placer for b. maxAttempts <= 0 uses DefaultMaxAttempts.
func NewPlacer(b Board, rng Source, maxAttempts int) *Placer {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Placer{board: b, rng: rng, maxAttempts: maxAttempts}
}

// Board returns the board the placer samples from.
func (p *Placer) Board() Board { return p.board }

// Place returns a uniformly random tile for which excluded is false.
// Sampling is bounded by the placer's attempt limit; past it the free tiles
// are enumerated and one is chosen uniformly. ErrBoardFull is returned when
// no tile is free.
func (p *Placer) Place(excluded func(Tile) bool) (Tile, error) {
	for i := 0; i < p.maxAttempts; i++ {
		t := Tile{
			X: p.rng.Intn(p.board.width),
			Y: p.rng.Intn(p.board.height),
		}
		if !excluded(t) {
			return t, nil
		}
	}

	free := p.freeTiles(excluded)
	if len(free) == 0 {
		return Tile{}, ErrBoardFull
	}
	return free[p.rng.Intn(len(free))], nil
}

// freeTiles lists every tile not matched by excluded, in row-major order.
func (p *Placer) freeTiles(excluded func(Tile) bool) []Tile {
	var free []Tile
	for y := 0; y < p.board.height; y++ {
		for x := 0; x < p.board.width; x++ {
			t := Tile{X: x, Y: y}
			if !excluded(t) {
				free = append(free, t)
			}
		}
	}
	return free
}
