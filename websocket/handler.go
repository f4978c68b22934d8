package websocket

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin is enforced by the CORS layer; the socket itself only
		// carries broadcast data to authenticated clients.
		return true
	},
}

// HandleWebSocket upgrades the connection for the live-update feed. The
// client authenticates by passing its JWT as a query parameter since browser
// WebSocket APIs cannot set headers.
func HandleWebSocket(c echo.Context, hub *Hub) error {
	token := c.QueryParam("token")
	claims, err := middleware.ParseToken(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return err
	}

	client := &Client{UserID: claims.UserID, Conn: conn}
	hub.Register(client)

	// Read loop exists only to detect disconnects; inbound messages are
	// discarded.
	go func() {
		defer hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}
