package wsclient

import (
	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

func NewClient(c *websocket.Conn) *WsClient {
	return &WsClient{
		conn: c,
	}
}

type WsClient struct {
	conn *websocket.Conn
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

// Dispatch drains inbound frames until the client goes away; the board is a
// listen-only subscriber.
func (c *WsClient) Dispatch() {
	for {
		if c.conn == nil {
			return
		}
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				log.WithError(err).Error("failed to read ws message")
			}
			break
		}
	}
}
