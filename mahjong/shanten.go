package mahjong

import "sync"

// ShantenFinder computes the minimum completion distance across the three
// winning-hand shapes: standard 4 sets + pair, seven pairs, and thirteen
// orphans. Results are memoized under the histogram content key, so a
// long-lived finder amortizes repeated lookups from the improving-tile
// search. Safe for concurrent use.
type ShantenFinder struct {
	mu    sync.RWMutex
	cache map[string]int
}

// defaultFinder backs Hand.Shanten; hands share one memoization table.
var defaultFinder = NewShantenFinder()

func NewShantenFinder() *ShantenFinder {
	return &ShantenFinder{cache: make(map[string]int, 4096)}
}

// Shanten evaluates the hand's concealed portion, counting each declared
// meld as an already-complete set. Only 13 and 14 tile hands have a
// meaningful shanten.
func (f *ShantenFinder) Shanten(hand *Hand) (int, error) {
	if n := hand.CountTiles(); n != 13 && n != 14 {
		return 0, newError(CodeBadHandSize, "shanten needs a 13 or 14 tile hand, got %d", n)
	}
	concealed := hand.Array34(true)
	return f.Shanten34(concealed, len(hand.openShapes)), nil
}

// Shanten34 computes shanten for a raw concealed histogram with fixedMelds
// declared sets. Seven pairs and thirteen orphans require a fully concealed
// hand, so any declared meld disqualifies them.
func (f *ShantenFinder) Shanten34(h [tileKinds]int, fixedMelds int) int {
	key := histogramKey(h, fixedMelds)
	f.mu.RLock()
	if v, ok := f.cache[key]; ok {
		f.mu.RUnlock()
		return v
	}
	f.mu.RUnlock()

	best := shantenStandard(h, fixedMelds)
	if fixedMelds == 0 {
		if v := shantenSevenPairs(h); v < best {
			best = v
		}
		if v := shantenThirteenOrphans(h); v < best {
			best = v
		}
	}

	f.mu.Lock()
	f.cache[key] = best
	f.mu.Unlock()
	return best
}

// shantenStandard searches the 4-sets-plus-pair shape. Declared melds seed
// the completed-set count and are never re-examined.
func shantenStandard(h [tileKinds]int, fixedMelds int) int {
	best := 8 // worst case for the standard shape
	dfsStandard(&h, fixedMelds, 0, 0, &best)
	return best
}

// dfsStandard peels the first occupied bucket as a set, a pair head, a
// partial set, or a lone tile. sets counts complete melds (declared ones
// included), pair is 0/1 for the reserved head, partials counts taatsu.
// Partial blocks are capped so total blocks never exceed what the hand can
// still use: shanten = 8 - 2*sets - min(partials, 4-sets) - pair.
func dfsStandard(h *[tileKinds]int, sets, pair, partials int, best *int) {
	if sets > 4 {
		return
	}

	usable := partials
	if limit := 4 - sets; usable > limit {
		usable = limit
	}
	if sh := 8 - 2*sets - usable - pair; sh < *best {
		*best = sh
	}

	i := -1
	for k := 0; k < tileKinds; k++ {
		if h[k] > 0 {
			i = k
			break
		}
	}
	if i == -1 {
		return
	}
	tt := TileType(i)

	if !tt.IsNumbered() {
		if h[i] >= 3 {
			h[i] -= 3
			dfsStandard(h, sets+1, pair, partials, best)
			h[i] += 3
		}
		if h[i] >= 2 {
			if pair == 0 {
				h[i] -= 2
				dfsStandard(h, sets, 1, partials, best)
				h[i] += 2
			}
			// a pair not reserved for the head is still a partial triplet
			h[i] -= 2
			dfsStandard(h, sets, pair, partials+1, best)
			h[i] += 2
		}
		h[i]--
		dfsStandard(h, sets, pair, partials, best)
		h[i]++
		return
	}

	// triplet
	if h[i] >= 3 {
		h[i] -= 3
		dfsStandard(h, sets+1, pair, partials, best)
		h[i] += 3
	}

	// run of three
	if i+2 < tileKinds && tt.suit() == TileType(i+2).suit() {
		if h[i] > 0 && h[i+1] > 0 && h[i+2] > 0 {
			h[i]--
			h[i+1]--
			h[i+2]--
			dfsStandard(h, sets+1, pair, partials, best)
			h[i]++
			h[i+1]++
			h[i+2]++
		}
	}

	// pair: as the reserved head, or as a partial triplet
	if h[i] >= 2 {
		if pair == 0 {
			h[i] -= 2
			dfsStandard(h, sets, 1, partials, best)
			h[i] += 2
		}
		h[i] -= 2
		dfsStandard(h, sets, pair, partials+1, best)
		h[i] += 2
	}

	// adjacent partial set
	if i+1 < tileKinds && tt.suit() == TileType(i+1).suit() {
		if h[i] > 0 && h[i+1] > 0 {
			h[i]--
			h[i+1]--
			dfsStandard(h, sets, pair, partials+1, best)
			h[i]++
			h[i+1]++
		}
	}

	// gapped partial set
	if i+2 < tileKinds && tt.suit() == TileType(i+2).suit() {
		if h[i] > 0 && h[i+2] > 0 {
			h[i]--
			h[i+2]--
			dfsStandard(h, sets, pair, partials+1, best)
			h[i]++
			h[i+2]++
		}
	}

	// lone tile
	h[i]--
	dfsStandard(h, sets, pair, partials, best)
	h[i]++
}

// shantenSevenPairs: 6 - pairs, penalized when there are too few distinct
// kinds left to ever reach seven pairs. Each kind contributes at most one
// pair: the seven pairs must be of distinct tiles, so copies beyond the
// second are dead weight.
func shantenSevenPairs(h [tileKinds]int) int {
	pairs := 0
	distinct := 0
	for _, c := range h {
		if c > 0 {
			distinct++
		}
		if c >= 2 {
			pairs++
		}
	}
	sh := 6 - pairs
	if distinct < 7 {
		sh += 7 - distinct
	}
	return sh
}

// shantenThirteenOrphans: one of each terminal/honor kind plus any
// duplicate among them.
func shantenThirteenOrphans(h [tileKinds]int) int {
	distinct := 0
	pair := false
	for _, tt := range kokushiTiles {
		if h[int(tt)] > 0 {
			distinct++
			if h[int(tt)] >= 2 {
				pair = true
			}
		}
	}
	sh := 13 - distinct
	if pair {
		sh--
	}
	return sh
}

// histogramKey is the content key for memoization: 34 bucket counts plus
// the declared-meld count.
func histogramKey(h [tileKinds]int, fixedMelds int) string {
	var b [tileKinds + 1]byte
	for i := 0; i < tileKinds; i++ {
		b[i] = byte(h[i])
	}
	b[tileKinds] = byte(fixedMelds)
	return string(b[:])
}
