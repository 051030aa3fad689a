package mahjong

// TileType enumerates the 34 distinct riichi tiles in canonical order:
// man 1-9, pin 1-9, sou 1-9, then the seven honors.
type TileType int

const (
	// 万子 (0-8)
	Man1 TileType = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9

	// 筒子 (9-17)
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9

	// 索子 (18-26)
	So1
	So2
	So3
	So4
	So5
	So6
	So7
	So8
	So9

	// 字牌 (27-33)
	East
	South
	West
	North
	White
	Green
	Red
)

const tileKinds = 34

// MeldKind marks which declared meld an open tile belongs to.
type MeldKind int

const (
	MeldNone MeldKind = iota
	MeldChi
	MeldPon
	MeldKan
)

// Tile is one physical tile instance. Type decides identity for all shanten
// math; the flags only describe the instance's role inside its hand.
type Tile struct {
	Type     TileType
	IsDraw   bool     // the tile drawn this turn, at most one per hand
	IsOpen   bool     // locked into a declared meld
	OpenKind MeldKind // which meld kind, meaningful only when IsOpen
}

var kokushiTiles = [13]TileType{
	Man1, Man9,
	Pin1, Pin9,
	So1, So9,
	East, South, West, North,
	White, Green, Red,
}

func (t TileType) IsNumbered() bool {
	return t >= Man1 && t <= So9
}

func (t TileType) IsHonor() bool {
	return t >= East && t <= Red
}

// IsTerminalOrHonor reports whether the tile counts for thirteen orphans.
func (t TileType) IsTerminalOrHonor() bool {
	if t.IsHonor() {
		return true
	}
	n := t.Number()
	return n == 1 || n == 9
}

// suit returns 0/1/2 for man/pin/sou and -1 for honors.
func (t TileType) suit() int {
	switch {
	case t >= Man1 && t <= Man9:
		return 0
	case t >= Pin1 && t <= Pin9:
		return 1
	case t >= So1 && t <= So9:
		return 2
	default:
		return -1
	}
}

// Number is the rank 1-9 for numbered tiles, 1-7 for honors.
func (t TileType) Number() int {
	if t.IsHonor() {
		return int(t-East) + 1
	}
	return int(t)%9 + 1
}

// suitChar is the notation letter: m/p/s for suits, z for honors.
func (t TileType) suitChar() byte {
	switch t.suit() {
	case 0:
		return 'm'
	case 1:
		return 'p'
	case 2:
		return 's'
	default:
		return 'z'
	}
}

func (t TileType) String() string {
	return string([]byte{byte('0' + t.Number()), t.suitChar()})
}

// ID is the dense identifier in [1,34]: 1-9 man, 10-18 pin, 19-27 sou,
// 28-34 honors.
func (t Tile) ID() int {
	return int(t.Type) + 1
}

// TileFromID is the inverse of ID.
func TileFromID(id int) (Tile, error) {
	if id < 1 || id > tileKinds {
		return Tile{}, newError(CodeBadTileID, "tile id %d outside [1,34]", id)
	}
	return Tile{Type: TileType(id - 1)}, nil
}

// ParseTile reads two-character notation: digit then suit letter, e.g. "5p"
// or "3z" for the third honor.
func ParseTile(repr string) (Tile, error) {
	if len(repr) != 2 {
		return Tile{}, newError(CodeBadTile, "tile notation %q must be digit+letter", repr)
	}
	d, c := repr[0], repr[1]
	if d < '1' || d > '9' {
		return Tile{}, newError(CodeBadTile, "tile notation %q has no valid digit", repr)
	}
	n := int(d - '0')
	switch c {
	case 'm':
		return Tile{Type: Man1 + TileType(n-1)}, nil
	case 'p':
		return Tile{Type: Pin1 + TileType(n-1)}, nil
	case 's':
		return Tile{Type: So1 + TileType(n-1)}, nil
	case 'z':
		if n > 7 {
			return Tile{}, newError(CodeBadTile, "honor tile %q outside 1-7", repr)
		}
		return Tile{Type: East + TileType(n-1)}, nil
	default:
		return Tile{}, newError(CodeBadTile, "unknown suit letter %q", string(c))
	}
}

// NextID is the id of the tile n steps up in the same numeric suit, 0 when
// stepping would leave the suit. Honors are never sequence-adjacent.
func (t Tile) NextID(n int) int {
	if !t.Type.IsNumbered() {
		return 0
	}
	next := t.Type + TileType(n)
	if next.suit() != t.Type.suit() {
		return 0
	}
	return int(next) + 1
}

// PrevID mirrors NextID, stepping down.
func (t Tile) PrevID(n int) int {
	if !t.Type.IsNumbered() {
		return 0
	}
	prev := t.Type - TileType(n)
	if prev < Man1 || prev.suit() != t.Type.suit() {
		return 0
	}
	return int(prev) + 1
}

// Less orders tiles by suit group then rank, the canonical display order.
func (t Tile) Less(other Tile) bool {
	return t.Type < other.Type
}

func (t Tile) String() string {
	return t.Type.String()
}
