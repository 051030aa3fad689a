package mahjong

import (
	"sort"
	"strings"
)

// shantenUnset marks the shanten cache as stale; real shanten values lie in
// [-1, 8].
const shantenUnset = 99

const (
	minPhysicalTiles = 13
	maxPhysicalTiles = 18 // 13 base + 4 extra from kans + 1 draw
	maxLogicalTiles  = 14
)

// Hand is a player's tiles plus the melds declared from them. Derived views
// (the 34-bucket histograms and the shanten value) are cached and reset on
// every structural mutation.
type Hand struct {
	tiles      []Tile
	openShapes []OpenShape

	array34          *[tileKinds]int
	array34Concealed *[tileKinds]int
	shanten          int
}

// NewHand builds a hand from an explicit tile list without validating it.
func NewHand(tiles []Tile) *Hand {
	h := &Hand{tiles: append([]Tile(nil), tiles...), shanten: shantenUnset}
	h.sortTiles()
	return h
}

// HandFromText parses standard hand notation, e.g. "123m123p12345s22z".
// Suit letters trail their digits, so the string is read right to left; the
// first tile met while scanning backward (the physically last one written)
// is flagged as the drawn tile. With forceReturn the parsed hand is returned
// even when validation fails, letting the caller decide.
func HandFromText(representation string, forceReturn bool) (*Hand, error) {
	var tiles []Tile
	color := byte(0)
	for i := len(representation) - 1; i >= 0; i-- {
		ch := representation[i]
		switch {
		case ch >= 'a' && ch <= 'z':
			color = ch
		case ch >= '0' && ch <= '9':
			if color == 0 {
				return nil, newError(CodeBadNotation, "digit run in %q has no suit letter", representation)
			}
			tile, err := ParseTile(string([]byte{ch, color}))
			if err != nil {
				return nil, err
			}
			if len(tiles) == 0 {
				// the last tile written in the representation is the draw
				tile.IsDraw = true
			}
			tiles = append(tiles, tile)
		default:
			return nil, newError(CodeBadNotation, "unexpected character %q in %q", string(ch), representation)
		}
	}

	hand := NewHand(tiles)
	if forceReturn || hand.Validate() {
		return hand, nil
	}
	return nil, newError(CodeInvalidHand, "couldn't parse hand representation %q", representation)
}

// TilesFromText parses notation into a plain tile list with no hand
// constraints and no draw marking. Used for dora indicators and discards.
func TilesFromText(representation string) ([]Tile, error) {
	var tiles []Tile
	color := byte(0)
	for i := len(representation) - 1; i >= 0; i-- {
		ch := representation[i]
		switch {
		case ch >= 'a' && ch <= 'z':
			color = ch
		case ch >= '0' && ch <= '9':
			if color == 0 {
				return nil, newError(CodeBadNotation, "digit run in %q has no suit letter", representation)
			}
			tile, err := ParseTile(string([]byte{ch, color}))
			if err != nil {
				return nil, err
			}
			tiles = append(tiles, tile)
		default:
			return nil, newError(CodeBadNotation, "unexpected character %q in %q", string(ch), representation)
		}
	}
	sort.SliceStable(tiles, func(i, j int) bool { return tiles[i].Less(tiles[j]) })
	return tiles, nil
}

// RandomHand is a placeholder for dealing practice hands.
func RandomHand(count int) (*Hand, error) {
	if count < 13 || count > 14 {
		return nil, newError(CodeBadHandSize, "only 13 or 14 tile hands allowed, got %d", count)
	}
	return nil, newError(CodeNotSupported, "random hand generation is not implemented")
}

// Validate checks the tile-count invariants: no bucket above 4 copies,
// physical count within [13,18], logical count at most 14. Cross-hand
// consistency is the table layer's concern.
func (h *Hand) Validate() bool {
	total := 0
	array34 := h.Array34(false)
	for _, count := range array34 {
		total += count
		if count > 4 {
			return false
		}
	}
	if total < minPhysicalTiles || total > maxPhysicalTiles {
		return false
	}
	return h.CountTiles() <= maxLogicalTiles
}

// Array34 is the 34-bucket histogram of the hand. With removeOpen the tiles
// locked into declared melds are excluded, which is the view the improving
// tile search reasons about. Both views are cached until the next mutation.
func (h *Hand) Array34(removeOpen bool) [tileKinds]int {
	cached := &h.array34
	if removeOpen {
		cached = &h.array34Concealed
	}
	if *cached != nil {
		return **cached
	}

	var array34 [tileKinds]int
	for _, t := range h.tiles {
		if removeOpen && t.IsOpen {
			continue
		}
		array34[t.ID()-1]++
	}
	*cached = &array34
	return array34
}

// AddTile inserts a tile keeping canonical order.
func (h *Hand) AddTile(tile Tile) {
	h.tiles = append(h.tiles, tile)
	h.sortTiles()
	h.resetCaches()
}

// RemoveTile removes the first concealed instance matching the tile's
// identifier. Tiles committed to open melds are never removed. Removing a
// tile that is not in the hand is a no-op.
func (h *Hand) RemoveTile(tile Tile) {
	h.takeTile(tile.Type)
}

// RemoveTileByID removes by dense identifier.
func (h *Hand) RemoveTileByID(id int) error {
	tile, err := TileFromID(id)
	if err != nil {
		return err
	}
	h.RemoveTile(tile)
	return nil
}

// takeTile removes and returns the first concealed instance of the given
// type, preferring one without the draw flag so speculative trials disturb
// as little state as possible.
func (h *Hand) takeTile(tt TileType) (Tile, bool) {
	found := -1
	for i, t := range h.tiles {
		if t.Type != tt || t.IsOpen {
			continue
		}
		if !t.IsDraw {
			found = i
			break
		}
		if found == -1 {
			found = i
		}
	}
	if found == -1 {
		return Tile{}, false
	}
	taken := h.tiles[found]
	h.tiles = append(h.tiles[:found], h.tiles[found+1:]...)
	h.resetCaches()
	return taken, true
}

// AddOpenShape applies a declared meld: one concealed instance per
// declared value is flipped open with the meld kind. The lookup is
// all-or-nothing, so an unbacked declaration leaves the hand untouched and
// returns a typed error for the caller to reject the action.
func (h *Hand) AddOpenShape(shape OpenShape) error {
	used := make(map[int]bool, len(shape.Tiles))
	indexes := make([]int, 0, len(shape.Tiles))
	for _, tt := range shape.Tiles {
		found := -1
		for i, t := range h.tiles {
			if used[i] || t.Type != tt || t.IsOpen {
				continue
			}
			found = i
			break
		}
		if found == -1 {
			return newError(CodeBadMeld, "declared meld tile %v not among concealed tiles", tt)
		}
		used[found] = true
		indexes = append(indexes, found)
	}

	for _, i := range indexes {
		h.tiles[i].IsOpen = true
		h.tiles[i].OpenKind = shape.Kind
	}
	h.openShapes = append(h.openShapes, shape)
	h.resetCaches()
	return nil
}

// OpenShapes returns the declared melds in declaration order.
func (h *Hand) OpenShapes() []OpenShape {
	return append([]OpenShape(nil), h.openShapes...)
}

// IsClosed reports whether no melds have been declared.
func (h *Hand) IsClosed() bool {
	return len(h.openShapes) == 0
}

// CountTiles is the logical hand size, usually 13 or 14: each complete kan
// occupies four physical slots but counts as three tiles structurally.
func (h *Hand) CountTiles() int {
	kanTiles := 0
	for _, t := range h.tiles {
		if t.IsOpen && t.OpenKind == MeldKan {
			kanTiles++
		}
	}
	return len(h.tiles) - kanTiles/4
}

// Tiles returns a copy of the tile list in canonical order.
func (h *Hand) Tiles() []Tile {
	return append([]Tile(nil), h.tiles...)
}

// DrawnTile returns the tile flagged as this turn's draw.
func (h *Hand) DrawnTile() (Tile, error) {
	for _, t := range h.tiles {
		if t.IsDraw {
			return t, nil
		}
	}
	return Tile{}, newError(CodeNoDrawnTile, "no tile in this hand is flagged as drawn")
}

// String renders the grouped notation: digit runs terminated by their suit
// letter, in canonical order. Parsing a canonical concealed hand and
// rendering it again reproduces the input exactly.
func (h *Hand) String() string {
	var out strings.Builder
	color := byte(0)
	for _, t := range h.tiles {
		if c := t.Type.suitChar(); c != color {
			if color != 0 {
				out.WriteByte(color)
			}
			color = c
		}
		out.WriteByte(byte('0' + t.Type.Number()))
	}
	if color != 0 {
		out.WriteByte(color)
	}
	return out.String()
}

// Tokens renders one letter+digit token per tile, with the drawn tile moved
// to the end regardless of numeric order. Consumers that need positional
// tile lists use this instead of the grouped notation.
func (h *Hand) Tokens() []string {
	tokens := make([]string, 0, len(h.tiles))
	var drawn *string
	for _, t := range h.tiles {
		token := string([]byte{t.Type.suitChar(), byte('0' + t.Type.Number())})
		if t.IsDraw && drawn == nil {
			drawn = &token
			continue
		}
		tokens = append(tokens, token)
	}
	if drawn != nil {
		tokens = append(tokens, *drawn)
	}
	return tokens
}

// Shanten computes (and caches) the completion distance of this hand: -1 is
// a winning hand, 0 is tenpai. The cache is reset by every mutation.
func (h *Hand) Shanten() (int, error) {
	if h.shanten != shantenUnset {
		return h.shanten, nil
	}
	value, err := defaultFinder.Shanten(h)
	if err != nil {
		return 0, err
	}
	h.shanten = value
	return value, nil
}

func (h *Hand) sortTiles() {
	sort.SliceStable(h.tiles, func(i, j int) bool { return h.tiles[i].Less(h.tiles[j]) })
}

// resetCaches drops every derived view. Both adding and removing tiles go
// through here; the shanten cache must never survive a mutation.
func (h *Hand) resetCaches() {
	h.array34 = nil
	h.array34Concealed = nil
	h.shanten = shantenUnset
}
