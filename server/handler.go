package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"riichi/mahjong"
	"riichi/table"
)

// Response is the uniform envelope for every payload.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

const (
	CodeSuccess      = 0
	CodeInvalidParam = 10001
	CodeServerError  = 10005

	MsgSuccess = "success"
)

func newResponse(code int, message string, data any) *Response {
	return &Response{Code: code, Message: message, Data: data}
}

// AnalyzeResult is the answer for one table snapshot.
type AnalyzeResult struct {
	Hand         string           `json:"hand"`
	Tokens       []string         `json:"tokens"`
	Closed       bool             `json:"closed"`
	Riichi       bool             `json:"riichi"`
	Shanten      int              `json:"shanten"`
	Improvements []ImprovementRow `json:"improvements"`
}

// ImprovementRow mirrors mahjong.Improvement in wire form. Discard is
// empty for a 13-tile hand's single row.
type ImprovementRow struct {
	Discard    string   `json:"discard,omitempty"`
	Tiles      []string `json:"tiles"`
	Acceptance int      `json:"acceptance"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var params map[string]any
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusOK, newResponse(CodeInvalidParam, "invalid request body", nil))
		return
	}

	result, err := s.analyze(params)
	if err != nil {
		var rerr *mahjong.RiichiError
		if errors.As(err, &rerr) {
			c.JSON(http.StatusOK, newResponse(CodeInvalidParam, rerr.Message, gin.H{"errorCode": rerr.Code}))
			return
		}
		c.JSON(http.StatusOK, newResponse(CodeServerError, err.Error(), nil))
		return
	}
	c.JSON(http.StatusOK, newResponse(CodeSuccess, MsgSuccess, result))
}

// analyze runs the shanten and improving-tile search for the snapshot in
// params. Results are cached under the joined token form: unlike the grouped
// notation, it pins down which tile is the draw, so two hands with the same
// multiset but different draws never share an entry.
func (s *Server) analyze(params map[string]any) (*AnalyzeResult, error) {
	tbl, err := table.FromMap(params)
	if err != nil {
		return nil, err
	}
	if tbl.MyHand == nil {
		return nil, &mahjong.RiichiError{Code: mahjong.CodeBadNotation, Message: "my_hand is required"}
	}

	key := strings.Join(tbl.MyHand.Tokens(), "")
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			if cached, ok := v.(*AnalyzeResult); ok {
				out := *cached
				out.Riichi = tbl.MyRiichi
				return &out, nil
			}
		}
	}

	shanten, err := tbl.MyHand.Shanten()
	if err != nil {
		return nil, err
	}
	improvements, err := tbl.MyHand.FindImprovingTiles()
	if err != nil {
		return nil, err
	}

	rows := make([]ImprovementRow, 0, len(improvements))
	for _, imp := range improvements {
		row := ImprovementRow{
			Tiles:      make([]string, 0, len(imp.Tiles)),
			Acceptance: imp.Acceptance,
		}
		if imp.Discard != nil {
			row.Discard = imp.Discard.String()
		}
		for _, t := range imp.Tiles {
			row.Tiles = append(row.Tiles, t.String())
		}
		rows = append(rows, row)
	}

	result := &AnalyzeResult{
		Hand:         tbl.MyHand.String(),
		Tokens:       tbl.MyHand.Tokens(),
		Closed:       tbl.MyHand.IsClosed(),
		Riichi:       tbl.MyRiichi,
		Shanten:      shanten,
		Improvements: rows,
	}
	if s.cache != nil {
		s.cache.Set(key, result)
	}
	return result, nil
}
