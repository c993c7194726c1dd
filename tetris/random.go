package tetris

import "fmt"

// Mode selects how the randomizer picks shapes.
type Mode uint8

const (
	// ModeSimple draws each shape independently.
	ModeSimple Mode = iota
	// ModeBag deals shapes from a shuffled bag holding k copies of each.
	ModeBag
)

func (m Mode) String() string {
	switch m {
	case ModeSimple:
		return "simple"
	case ModeBag:
		return "bag"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode name as printed by String back to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "simple":
		return ModeSimple, nil
	case "bag":
		return ModeBag, nil
	default:
		return 0, fmt.Errorf("tetris: unknown randomizer mode %q", name)
	}
}

const defaultSeed = 12345

// Randomizer produces shape ids from a linear congruential generator.
// The sequence is fully determined by the seed.
type Randomizer struct {
	n      int
	mode   Mode
	copies int

	state uint32

	bag []int
	pos int
}

// NewRandomizer returns a randomizer over n shapes. copies is the number of
// times each shape appears in one bag and is ignored in ModeSimple.
func NewRandomizer(n int, mode Mode, copies int, seed uint32) *Randomizer {
	if n <= 0 {
		panic("tetris: randomizer needs at least one shape")
	}
	if copies <= 0 {
		copies = 1
	}
	r := &Randomizer{n: n, mode: mode, copies: copies}
	if mode == ModeBag {
		r.bag = make([]int, n*copies)
	}
	r.Reseed(seed)
	return r
}

// Reseed restarts the sequence. A pending bag is discarded.
func (r *Randomizer) Reseed(seed uint32) {
	if seed == 0 {
		seed = defaultSeed
	}
	r.state = seed
	r.pos = len(r.bag)
}

// Next returns the next shape id in [0, n).
func (r *Randomizer) Next() int {
	if r.mode != ModeBag {
		return r.intn(r.n)
	}
	if r.pos >= len(r.bag) {
		r.refill()
	}
	id := r.bag[r.pos]
	r.pos++
	return id
}

func (r *Randomizer) refill() {
	i := 0
	for id := 0; id < r.n; id++ {
		for k := 0; k < r.copies; k++ {
			r.bag[i] = id
			i++
		}
	}
	for j := len(r.bag) - 1; j > 0; j-- {
		k := r.intn(j + 1)
		r.bag[j], r.bag[k] = r.bag[k], r.bag[j]
	}
	r.pos = 0
}

func (r *Randomizer) intn(n int) int {
	r.state = r.state*1103515245 + 12345
	return int((r.state >> 16) % uint32(n))
}
