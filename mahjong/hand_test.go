package mahjong

import (
	"strings"
	"testing"
)

func mustHand(t *testing.T, repr string) *Hand {
	t.Helper()
	hand, err := HandFromText(repr, false)
	if err != nil {
		t.Fatalf("parse %q: %v", repr, err)
	}
	return hand
}

func TestFromTextRoundTrip(t *testing.T) {
	rep := "123m123p12345s22z"
	hand := mustHand(t, rep)
	if got := hand.String(); got != rep {
		t.Fatalf("round trip: expected %q, got %q", rep, got)
	}
}

func TestValidationOK(t *testing.T) {
	hand := mustHand(t, "123m123p12345s22z")
	if !hand.Validate() {
		t.Fatal("hand should validate")
	}
}

func TestValidationFiveSameTiles(t *testing.T) {
	hand, err := HandFromText("123m123p11111s22z", true)
	if err != nil {
		t.Fatalf("force parse: %v", err)
	}
	if hand.Validate() {
		t.Fatal("five copies of one tile must not validate")
	}
}

func TestValidationTooManyTiles(t *testing.T) {
	hand, err := HandFromText("123456789m123456789p12345s22z", true)
	if err != nil {
		t.Fatalf("force parse: %v", err)
	}
	if hand.Validate() {
		t.Fatal("oversized hand must not validate")
	}
}

func TestValidationNotEnoughTiles(t *testing.T) {
	hand, err := HandFromText("123456m", true)
	if err != nil {
		t.Fatalf("force parse: %v", err)
	}
	if hand.Validate() {
		t.Fatal("undersized hand must not validate")
	}
}

func TestStrictParseFailsWithCode(t *testing.T) {
	_, err := HandFromText("123456m", false)
	rerr, ok := err.(*RiichiError)
	if !ok {
		t.Fatalf("expected *RiichiError, got %v", err)
	}
	if rerr.Code != CodeInvalidHand {
		t.Fatalf("expected code %d, got %d", CodeInvalidHand, rerr.Code)
	}
}

func TestParseUnterminatedDigitRun(t *testing.T) {
	_, err := HandFromText("123m45", false)
	rerr, ok := err.(*RiichiError)
	if !ok || rerr.Code != CodeBadNotation {
		t.Fatalf("expected notation error, got %v", err)
	}
}

func TestCountTiles(t *testing.T) {
	if got := mustHand(t, "237m13478s45699p").CountTiles(); got != 13 {
		t.Fatalf("expected 13 tiles, got %d", got)
	}
	if got := mustHand(t, "1237m13478s45699p").CountTiles(); got != 14 {
		t.Fatalf("expected 14 tiles, got %d", got)
	}
}

func TestRemoveTile(t *testing.T) {
	hand := mustHand(t, "1237m13478s45699p")
	tile, _ := ParseTile("1m")
	hand.RemoveTile(tile)

	if got := hand.CountTiles(); got != 13 {
		t.Fatalf("expected 13 tiles after removal, got %d", got)
	}
	if got := hand.String(); got != "237m45699p13478s" {
		t.Fatalf("expected 237m45699p13478s, got %q", got)
	}
}

func TestRemoveTileByID(t *testing.T) {
	hand := mustHand(t, "1237m13478s45699p")
	if err := hand.RemoveTileByID(1); err != nil {
		t.Fatalf("remove by id: %v", err)
	}
	if got := hand.String(); got != "237m45699p13478s" {
		t.Fatalf("expected 237m45699p13478s, got %q", got)
	}
	if err := hand.RemoveTileByID(35); err == nil {
		t.Fatal("expected error for id 35")
	}
}

func TestRemoveMissingTileIsNoop(t *testing.T) {
	hand := mustHand(t, "123m123p12345s22z")
	tile, _ := ParseTile("9m")
	hand.RemoveTile(tile)
	if got := hand.String(); got != "123m123p12345s22z" {
		t.Fatalf("removal of absent tile changed hand to %q", got)
	}
}

func TestDrawnTileIsLastWritten(t *testing.T) {
	hand := mustHand(t, "237m13478s45699p1z")
	drawn, err := hand.DrawnTile()
	if err != nil {
		t.Fatalf("drawn tile: %v", err)
	}
	if drawn.Type != East {
		t.Fatalf("expected 1z as drawn tile, got %v", drawn)
	}
}

func TestDrawnTileMissing(t *testing.T) {
	hand := NewHand(nil)
	_, err := hand.DrawnTile()
	rerr, ok := err.(*RiichiError)
	if !ok || rerr.Code != CodeNoDrawnTile {
		t.Fatalf("expected no-drawn-tile error, got %v", err)
	}
}

func TestTokensPutDrawLast(t *testing.T) {
	hand := mustHand(t, "237m13478s45699p1z")
	tokens := hand.Tokens()
	if len(tokens) != 14 {
		t.Fatalf("expected 14 tokens, got %d", len(tokens))
	}
	if tokens[len(tokens)-1] != "z1" {
		t.Fatalf("drawn tile must be the last token, got %v", tokens)
	}
	joined := strings.Join(tokens[:len(tokens)-1], " ")
	if strings.Contains(joined, "z1") {
		t.Fatalf("drawn tile appeared before the end: %v", tokens)
	}
}

func TestTokensDistinguishDrawUnlikeString(t *testing.T) {
	a := mustHand(t, "123m123p12345s22z") // draw 2z
	b := mustHand(t, "22z123m123p12345s") // draw 5s

	// the grouped notation collapses both to the same canonical form
	if a.String() != b.String() {
		t.Fatalf("canonical forms differ: %q vs %q", a.String(), b.String())
	}

	// the token form keeps the draw last, so it separates them
	at, bt := a.Tokens(), b.Tokens()
	if at[len(at)-1] != "z2" || bt[len(bt)-1] != "s5" {
		t.Fatalf("expected draws z2 and s5, got %q and %q", at[len(at)-1], bt[len(bt)-1])
	}
	if strings.Join(at, "") == strings.Join(bt, "") {
		t.Fatal("token forms must differ for different draws")
	}
}

func TestShantenCacheResetOnAdd(t *testing.T) {
	hand := mustHand(t, "123m123p12345s22z")
	sh, err := hand.Shanten()
	if err != nil {
		t.Fatalf("shanten: %v", err)
	}
	if sh != 0 {
		t.Fatalf("expected tenpai, got %d", sh)
	}

	// drawing the winning tile must be visible without manual cache resets
	tile, _ := ParseTile("3s")
	hand.AddTile(tile)
	sh, err = hand.Shanten()
	if err != nil {
		t.Fatalf("shanten after draw: %v", err)
	}
	if sh != -1 {
		t.Fatalf("expected complete hand, got %d", sh)
	}
}

func TestAddOpenShapePon(t *testing.T) {
	rep := "444m123p12345s22z"
	hand := mustHand(t, rep)
	four, _ := ParseTile("4m")

	if err := hand.AddOpenShape(NewPon(four)); err != nil {
		t.Fatalf("declare pon: %v", err)
	}

	open := 0
	for _, tile := range hand.Tiles() {
		if tile.IsOpen {
			open++
			if tile.OpenKind != MeldPon {
				t.Fatalf("open tile has kind %v, expected pon", tile.OpenKind)
			}
		}
	}
	if open != 3 {
		t.Fatalf("expected exactly 3 open tiles, got %d", open)
	}
	if got := len(hand.OpenShapes()); got != 1 {
		t.Fatalf("expected 1 open shape, got %d", got)
	}
	if hand.IsClosed() {
		t.Fatal("hand with a declared meld is not closed")
	}
	if got := hand.String(); got != rep {
		t.Fatalf("serialization changed by meld: %q", got)
	}

	concealed := hand.Array34(true)
	if concealed[3] != 0 {
		t.Fatalf("open 4m still in concealed histogram: %d", concealed[3])
	}
	full := hand.Array34(false)
	if full[3] != 3 {
		t.Fatalf("full histogram lost tiles: %d", full[3])
	}
}

func TestAddOpenShapeUnbacked(t *testing.T) {
	hand := mustHand(t, "123m123p12345s22z")
	nine, _ := ParseTile("9m")
	err := hand.AddOpenShape(NewPon(nine))
	rerr, ok := err.(*RiichiError)
	if !ok || rerr.Code != CodeBadMeld {
		t.Fatalf("expected meld error, got %v", err)
	}
	// all-or-nothing: nothing may be flipped open
	for _, tile := range hand.Tiles() {
		if tile.IsOpen {
			t.Fatal("failed meld left open tiles behind")
		}
	}
	if !hand.IsClosed() {
		t.Fatal("failed meld recorded a shape")
	}
}

func TestOpenTileNotReusable(t *testing.T) {
	hand := mustHand(t, "444m123p12345s22z")
	four, _ := ParseTile("4m")
	if err := hand.AddOpenShape(NewPon(four)); err != nil {
		t.Fatalf("first pon: %v", err)
	}
	if err := hand.AddOpenShape(NewPon(four)); err == nil {
		t.Fatal("tiles already open must not back another meld")
	}
}

func TestKanCountsAsThreeTiles(t *testing.T) {
	hand, err := HandFromText("4444m123p12345s22z", true)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	four, _ := ParseTile("4m")
	if err := hand.AddOpenShape(NewKan(four)); err != nil {
		t.Fatalf("declare kan: %v", err)
	}
	if got := hand.CountTiles(); got != 13 {
		t.Fatalf("kan hand logical size: expected 13, got %d", got)
	}
	if !hand.Validate() {
		t.Fatal("kan hand should validate")
	}
}

func TestNewChi(t *testing.T) {
	t1, _ := ParseTile("3p")
	t2, _ := ParseTile("1p")
	t3, _ := ParseTile("2p")
	shape, err := NewChi(t1, t2, t3)
	if err != nil {
		t.Fatalf("chi: %v", err)
	}
	if shape.Kind != MeldChi || shape.Tiles[0] != Pin1 || shape.Tiles[2] != Pin3 {
		t.Fatalf("unexpected chi shape: %+v", shape)
	}

	h1, _ := ParseTile("1z")
	h2, _ := ParseTile("2z")
	h3, _ := ParseTile("3z")
	if _, err := NewChi(h1, h2, h3); err == nil {
		t.Fatal("honors cannot form a run")
	}
	m9, _ := ParseTile("9m")
	p1, _ := ParseTile("1p")
	p2, _ := ParseTile("2p")
	if _, err := NewChi(m9, p1, p2); err == nil {
		t.Fatal("runs cannot cross suits")
	}
}

func TestRandomHandStub(t *testing.T) {
	if _, err := RandomHand(12); err == nil {
		t.Fatal("expected error for 12 tile request")
	}
	_, err := RandomHand(13)
	rerr, ok := err.(*RiichiError)
	if !ok || rerr.Code != CodeNotSupported {
		t.Fatalf("expected not-supported error, got %v", err)
	}
}
