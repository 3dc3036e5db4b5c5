package websocket

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// FeedHandler upgrades the connection and streams settled matches until
// the client goes away. The feed is read only, incoming messages are
// discarded.
func FeedHandler(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Println("WebSocket upgrade failed:", err)
		return err
	}

	client := registerClient(ws)
	log.Println("Feed client connected")
	go listenClient(client)

	return nil
}

func listenClient(c *feedClient) {
	defer func() {
		log.Println("Feed client disconnected")
		unregisterClient(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}
