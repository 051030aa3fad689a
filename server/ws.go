package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"riichi/common/log"
	"riichi/mahjong"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWebSocket serves interactive analysis: the client sends one table
// snapshot per message and receives the analysis envelope back.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var params map[string]any
		if err := conn.ReadJSON(&params); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("websocket read: %v", err)
			}
			return
		}

		result, err := s.analyze(params)
		var payload *Response
		if err != nil {
			var rerr *mahjong.RiichiError
			if errors.As(err, &rerr) {
				payload = newResponse(CodeInvalidParam, rerr.Message, gin.H{"errorCode": rerr.Code})
			} else {
				payload = newResponse(CodeServerError, err.Error(), nil)
			}
		} else {
			payload = newResponse(CodeSuccess, MsgSuccess, result)
		}

		if err := conn.WriteJSON(payload); err != nil {
			log.Error("websocket write: %v", err)
			return
		}
	}
}
