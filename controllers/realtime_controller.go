package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/daniel-odulate22/NutriTrack-API/middlewares"
	"github.com/daniel-odulate22/NutriTrack-API/services"
)

const keepAliveInterval = 25 * time.Second

type RealtimeController struct {
	hub *services.ReminderHub
}

func NewRealtimeController(hub *services.ReminderHub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RemindersWS upgrades the connection and keeps it registered with the hub
// until the client goes away. The route sits behind the auth middleware, so
// the principal is already on the context. Every frame written to the
// connection goes through the client so pings never interleave with hub
// broadcasts.
func (rc *RealtimeController) RemindersWS(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	client := services.NewWSClient(principal.ID, conn)
	rc.hub.Register(client)
	defer rc.hub.Unregister(client)

	stop := make(chan struct{})
	defer close(stop)
	go keepAlive(client, stop)

	// the read loop only exists to notice the client closing
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// keepAlive pings through proxies that drop idle connections.
func keepAlive(client *services.WSClient, stop <-chan struct{}) {
	t := time.NewTicker(keepAliveInterval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			if err := client.Ping(); err != nil {
				return
			}
		}
	}
}
