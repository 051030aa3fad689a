// Package table holds a single player's view of the game state: their own
// hand plus everything publicly visible at the table. It deserializes from
// a map of named fields and delegates all hand validation to the mahjong
// package.
package table

import (
	"riichi/mahjong"
)

// Wind codes: 1 = east, 2 = south, 3 = west, 4 = north.
const (
	WindEast = iota + 1
	WindSouth
	WindWest
	WindNorth
)

// Table is a snapshot of the game from one seat's perspective.
type Table struct {
	MyHand   *mahjong.Hand
	MyRiichi bool

	// player to the right
	ShimochaDiscards   []mahjong.Tile
	ShimochaOpenShapes []mahjong.OpenShape
	ShimochaRiichi     bool
	// player to the left
	KamichaDiscards   []mahjong.Tile
	KamichaOpenShapes []mahjong.OpenShape
	KamichaRiichi     bool
	// opposite player
	ToimenDiscards   []mahjong.Tile
	ToimenOpenShapes []mahjong.OpenShape
	ToimenRiichi     bool

	PrevalentWind int
	MySeatWind    int
	WindRound     int
	TotalRound    int

	DoraIndicators []mahjong.Tile

	RiichiSticksInPot int
	Tsumibo           int
}

// FromMap builds a table from named fields, as delivered by an API request
// body. "my_hand" is the hand in text notation and is the only field that
// can fail: parse errors from the hand layer propagate typed. Unknown keys
// are ignored.
func FromMap(params map[string]any) (*Table, error) {
	t := &Table{}

	for key, value := range params {
		switch key {
		case "my_hand":
			s, ok := value.(string)
			if !ok {
				continue
			}
			hand, err := mahjong.HandFromText(s, false)
			if err != nil {
				return nil, err
			}
			t.MyHand = hand
		case "my_riichi":
			if b, ok := value.(bool); ok {
				t.MyRiichi = b
			}
		case "prevalent_wind":
			t.PrevalentWind = intField(value)
		case "my_seat_wind":
			t.MySeatWind = intField(value)
		case "wind_round":
			t.WindRound = intField(value)
		case "total_round":
			t.TotalRound = intField(value)
		case "riichi_sticks_in_pot":
			t.RiichiSticksInPot = intField(value)
		case "tsumibo":
			t.Tsumibo = intField(value)
		case "dora_indicators":
			s, ok := value.(string)
			if !ok {
				continue
			}
			tiles, err := mahjong.TilesFromText(s)
			if err != nil {
				return nil, err
			}
			t.DoraIndicators = tiles
		}
	}

	return t, nil
}

// intField tolerates the numeric types JSON decoding produces.
func intField(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
