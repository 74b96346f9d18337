package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches an upgraded connection to the hub and blocks until it closes.
func ServeWs(hub *Hub, c *websocket.Conn) {
	client := &Client{Hub: hub, Conn: c, Remote: c.RemoteAddr().String(), Send: make(chan []byte, sendBuffer)}
	if !hub.join(client) {
		c.Close()
		return
	}

	go client.writePump()
	client.readPump()
}
