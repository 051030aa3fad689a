package mahjong

import "sort"

// Improvement is one row of the improving-tile search: discarding Discard
// (nil for a 13-tile hand) makes every tile in Tiles advance the hand.
// Acceptance is the total number of copies of those tiles theoretically
// still drawable.
type Improvement struct {
	Discard    *Tile
	Tiles      []Tile
	Acceptance int
}

// FindImprovingTiles answers "what should I do next". A 13-tile hand yields
// a single row listing the draws that lower its shanten. A 14-tile hand
// yields one row per discard that does not raise shanten, best acceptance
// first; a hand that is already complete yields no rows. The hand's visible
// state is unchanged on return, though internal caches are recomputed.
func (h *Hand) FindImprovingTiles() ([]Improvement, error) {
	currentShanten, err := h.Shanten()
	if err != nil {
		return nil, err
	}

	switch h.CountTiles() {
	case 13:
		tiles, acceptance := h.improvingTiles13(currentShanten)
		return []Improvement{{Tiles: tiles, Acceptance: acceptance}}, nil
	default:
		if currentShanten < 0 {
			// complete hand, nothing to discard for
			return nil, nil
		}

		var rows []Improvement
		concealed := h.Array34(true)
		for id := 1; id <= tileKinds; id++ {
			if concealed[id-1] == 0 {
				continue
			}
			taken, ok := h.takeTile(TileType(id - 1))
			if !ok {
				continue
			}
			if reduced, err := h.Shanten(); err == nil && reduced <= currentShanten {
				tiles, acceptance := h.improvingTiles13(currentShanten)
				discard := taken
				discard.IsDraw = false
				rows = append(rows, Improvement{Discard: &discard, Tiles: tiles, Acceptance: acceptance})
			}
			h.AddTile(taken)
		}

		// best discard first; ties keep discovery order
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Acceptance > rows[j].Acceptance })
		return rows, nil
	}
}

// improvingTiles13 tries candidate draws against a 13-tile hand and keeps
// the ones that strictly lower shanten. Candidates are each concealed
// tile's identifier and its neighbors within two steps of the same suit;
// the 13 terminal/honor kinds are always tried as well, since thirteen
// orphans progress can be missed by the neighbor heuristic.
func (h *Hand) improvingTiles13(currentShanten int) ([]Tile, int) {
	tryIDs := make([]int, 0, tileKinds)
	seen := [tileKinds + 1]bool{}
	add := func(id int) {
		if id > 0 && !seen[id] {
			seen[id] = true
			tryIDs = append(tryIDs, id)
		}
	}

	for _, t := range h.tiles {
		if t.IsOpen {
			continue
		}
		add(t.ID())
		add(t.PrevID(1))
		add(t.PrevID(2))
		add(t.NextID(1))
		add(t.NextID(2))
	}
	for _, tt := range kokushiTiles {
		add(int(tt) + 1)
	}

	visible := h.Array34(false)
	var accepted []Tile
	acceptance := 0
	for _, id := range tryIDs {
		if visible[id-1] >= 4 {
			// no copies left to draw
			continue
		}
		drawn, _ := TileFromID(id)
		h.AddTile(drawn)
		newShanten, err := h.Shanten()
		h.takeTile(drawn.Type)
		if err == nil && newShanten < currentShanten {
			accepted = append(accepted, drawn)
			acceptance += 4 - visible[id-1]
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool { return accepted[i].Less(accepted[j]) })
	return accepted, acceptance
}
