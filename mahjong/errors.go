package mahjong

import "fmt"

// Error codes carried by RiichiError.
const (
	CodeInvalidHand  = 100 // hand fails count/duplicate validation
	CodeBadTile      = 101 // malformed tile notation
	CodeBadNotation  = 102 // malformed hand notation
	CodeBadTileID    = 103 // tile identifier outside [1,34]
	CodeNoDrawnTile  = 104 // no tile in the hand is flagged as drawn
	CodeBadMeld      = 105 // declared meld not backed by concealed tiles
	CodeBadHandSize  = 106 // shanten query on a hand that is not 13 or 14 tiles
	CodeNotSupported = 107
)

// RiichiError is the typed error returned by parsing, validation and meld
// application. The numeric code lets callers distinguish failure kinds
// without string matching.
type RiichiError struct {
	Code    int
	Message string
}

func (e *RiichiError) Error() string {
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

func newError(code int, format string, args ...any) *RiichiError {
	return &RiichiError{Code: code, Message: fmt.Sprintf(format, args...)}
}
