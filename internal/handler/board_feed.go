package handler

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"project-tracker-api/internal/domain"
)

const (
	feedWriteWait  = 10 * time.Second
	feedPongWait   = 60 * time.Second
	feedPingPeriod = (feedPongWait * 9) / 10
)

var feedUpgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// FeedEvent is the wire format for board feed messages.
type FeedEvent struct {
	Type      string    `json:"type"`
	ItemID    string    `json:"itemId"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

// BoardFeedHandler broadcasts confirmed status changes to connected
// websocket clients. It satisfies boardsync.Notifier.
type BoardFeedHandler struct {
	logger *zap.Logger

	clientsMu sync.RWMutex
	clients   map[*feedClient]bool

	register   chan *feedClient
	unregister chan *feedClient
	broadcast  chan []byte
}

func NewBoardFeedHandler(logger *zap.Logger) *BoardFeedHandler {
	h := &BoardFeedHandler{
		logger:     logger,
		clients:    make(map[*feedClient]bool),
		register:   make(chan *feedClient),
		unregister: make(chan *feedClient),
		broadcast:  make(chan []byte, 256),
	}
	go h.run()
	return h
}

func (h *BoardFeedHandler) run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMu.Lock()
			h.clients[client] = true
			h.clientsMu.Unlock()
			h.logger.Info("Feed client connected")

		case client := <-h.unregister:
			h.clientsMu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.clientsMu.Unlock()
			h.logger.Info("Feed client disconnected")

		case message := <-h.broadcast:
			h.clientsMu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// slow client, drop the event rather than block the feed
				}
			}
			h.clientsMu.RUnlock()
		}
	}
}

// PublishStatusChange fans a confirmed cross-column move out to
// every connected feed client.
func (h *BoardFeedHandler) PublishStatusChange(change domain.StatusChange) {
	payload, err := json.Marshal(FeedEvent{
		Type:      "STATUS_CHANGE",
		ItemID:    change.ItemID,
		From:      string(change.From),
		To:        string(change.To),
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		h.logger.Error("Failed to encode feed event", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("Feed broadcast buffer full, dropping event",
			zap.String("itemId", change.ItemID))
	}
}

// ClientCount reports the number of connected feed clients.
func (h *BoardFeedHandler) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// HandleFeed godoc
// @Summary      Board event feed
// @Description  Upgrades to a websocket that streams confirmed status changes
// @Tags         board
// @Success      101 {string} string "Switching Protocols"
// @Router       /board/feed [get]
func (h *BoardFeedHandler) HandleFeed(c *gin.Context) {
	conn, err := feedUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade feed connection", zap.Error(err))
		return
	}

	client := &feedClient{
		conn: conn,
		send: make(chan []byte, 64),
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

func (h *BoardFeedHandler) readPump(client *feedClient) {
	defer func() {
		h.unregister <- client
		client.conn.Close()
	}()

	client.conn.SetReadLimit(512)
	client.conn.SetReadDeadline(time.Now().Add(feedPongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(feedPongWait))
		return nil
	})

	// the feed is one-way, incoming frames are only read to detect close
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *BoardFeedHandler) writePump(client *feedClient) {
	ticker := time.NewTicker(feedPingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
