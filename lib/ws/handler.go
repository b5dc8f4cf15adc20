package ws

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	boardhub "recruitment-backend/lib/ws/board-hub"
)

func InitWs(app *fiber.App) {
	app.Use("board/:position_id", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		ctx.Locals("positionID", ctx.Params("position_id"))
		return ctx.Next()
	})
	app.Get("board/:position_id", websocket.New(boardHandler))
}

// @Summary Live board updates
// @Tags Websocket
// @Description Pushes board events for one position while candidates move through its pipeline
// @Param   Authorization		header		string		true		"Authorization token"
// @Param   position_id         path        string      true        "position ID"
// @Success 200 {object} wsmodels.BoardEvent
// @Failure 400
// @Failure 403
// @router /ws/board/{position_id} [get]
func boardHandler(c *websocket.Conn) {
	positionID := c.Locals("positionID").(string)
	connID := uuid.NewString()
	boardhub.Instance.Subscribe(positionID, connID, c)
	defer func() {
		boardhub.Instance.Unsubscribe(positionID, connID)
	}()
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
