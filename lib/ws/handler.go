package ws

import (
	wsclient "onboard-tools-backend/lib/ws/client"
	connectionhub "onboard-tools-backend/lib/ws/hub/connection-hub"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(app *fiber.App) {
	app.Get("/", websocket.New(boardHandler))
}

// @Summary Board event stream
// @Tags Websocket
// @Description Pushes applicant transition and stale-stage events to connected boards
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 403
// @Failure 500
// @router /ws [get]
func boardHandler(c *websocket.Conn) {
	client := wsclient.NewClient(c)
	clientID := connectionhub.Instance.AddClient(c)
	defer func() {
		connectionhub.Instance.DeleteClient(clientID)
	}()
	client.Dispatch()
}
