package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/nush-eats/storefront-app/notifier"
	"github.com/nush-eats/storefront-app/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSController struct {
	Hub *notifier.Hub
}

func NewWSController(hub *notifier.Hub) *WSController {
	return &WSController{Hub: hub}
}

// Handle upgrades the connection and keeps it registered until the
// client goes away. The server never expects messages from the client;
// the read loop only detects the close.
func (wc *WSController) Handle(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade failed: %v", err)
		return
	}

	wc.Hub.Register(ws)
	utils.InfoLogger.Printf("Admin observer connected (%d online)", wc.Hub.ClientCount())

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	wc.Hub.Unregister(ws)
	utils.InfoLogger.Printf("Admin observer disconnected (%d online)", wc.Hub.ClientCount())
}
