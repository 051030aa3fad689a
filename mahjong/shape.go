package mahjong

// OpenShape is a declared meld: a run of three, a triplet, or a quad. It
// holds the declared tile values, not references into the hand's storage,
// and never changes after construction.
type OpenShape struct {
	Kind  MeldKind
	Tiles []TileType // 3 for chi/pon, 4 for kan (one slot logically redundant)
}

// NewChi declares a run of three consecutive tiles of one numeric suit.
// The tiles may be given in any order.
func NewChi(a, b, c Tile) (OpenShape, error) {
	ts := []TileType{a.Type, b.Type, c.Type}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if ts[j] < ts[i] {
				ts[i], ts[j] = ts[j], ts[i]
			}
		}
	}
	if !ts[0].IsNumbered() || ts[0].suit() != ts[2].suit() || ts[1] != ts[0]+1 || ts[2] != ts[0]+2 {
		return OpenShape{}, newError(CodeBadMeld, "%v %v %v is not a run", a, b, c)
	}
	return OpenShape{Kind: MeldChi, Tiles: ts}, nil
}

// NewPon declares a triplet of the given tile.
func NewPon(t Tile) OpenShape {
	return OpenShape{Kind: MeldPon, Tiles: []TileType{t.Type, t.Type, t.Type}}
}

// NewKan declares a quad of the given tile.
func NewKan(t Tile) OpenShape {
	return OpenShape{Kind: MeldKan, Tiles: []TileType{t.Type, t.Type, t.Type, t.Type}}
}
