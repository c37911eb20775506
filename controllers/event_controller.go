package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"blog-admin/realtime"
)

// wsClient implements realtime.Client by wrapping a websocket connection.
type wsClient struct {
	conn *websocket.Conn
}

func (c *wsClient) Send(message []byte) bool {
	if c == nil || c.conn == nil {
		return false
	}
	c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
		return false
	}
	return true
}

func (c *wsClient) Close() {
	if c != nil && c.conn != nil {
		_ = c.conn.Close()
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS is handled at the gin level; allow the upgrade from any origin.
		return true
	},
}

type IEventController interface {
	Stream(ctx *gin.Context)
}

type EventController struct {
	hub *realtime.Hub
}

func NewEventController(hub *realtime.Hub) IEventController {
	return &EventController{hub: hub}
}

// Stream upgrades the request to a websocket and subscribes it to entity
// change events until the client disconnects. The auth middleware has
// already resolved the token (via the query parameter fallback).
func (c *EventController) Stream(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Println("websocket upgrade error:", err)
		return
	}

	client := &wsClient{conn: conn}
	c.hub.Register(client)
	defer func() {
		c.hub.Unregister(client)
		client.Close()
	}()

	conn.SetReadLimit(1024)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	pingTicker := time.NewTicker(30 * time.Second)
	done := make(chan struct{})
	defer func() {
		close(done)
		pingTicker.Stop()
	}()
	go func() {
		for {
			select {
			case <-done:
				return
			case <-pingTicker.C:
				if err := conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(5*time.Second)); err != nil {
					return
				}
			}
		}
	}()

	// Drain inbound messages; the feed is write-only from our side.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
