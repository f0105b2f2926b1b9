package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/tylacb11-spec/lienquan-sub000/models"
)

// Message types pushed into a save's room.
const (
	MessageNews  = "NEWS"
	MessageToast = "TOAST"
)

// Message is the wire envelope for everything the hub pushes.
type Message struct {
	Type    string `json:"type"`
	Room    string `json:"room,omitempty"`
	Payload any    `json:"payload"`
}

// ToastPayload is the body of a MessageToast.
type ToastPayload struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Hub fans engine events out to websocket clients, one room per save
// slot. It implements the game service's Broadcaster.
type Hub struct {
	log *slog.Logger

	register   chan *Client
	unregister chan *Client

	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		log:        log,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
	}
}

// Run processes client registration until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.room] == nil {
				h.rooms[client.room] = make(map[*Client]bool)
			}
			h.rooms[client.room][client] = true
			h.mu.Unlock()
			h.log.Debug("client joined room", slog.String("room", client.room))

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.room]; ok {
				if clients[client] {
					delete(clients, client)
					client.closeSend()
					if len(clients) == 0 {
						delete(h.rooms, client.room)
					}
				}
			}
			h.mu.Unlock()
			h.log.Debug("client left room", slog.String("room", client.room))
		}
	}
}

// BroadcastNews pushes a news item into a room.
func (h *Hub) BroadcastNews(room string, item models.NewsItem) {
	h.broadcast(room, Message{Type: MessageNews, Room: room, Payload: item})
}

// BroadcastToast pushes a toast into a room.
func (h *Hub) BroadcastToast(room string, message, severity string) {
	h.broadcast(room, Message{Type: MessageToast, Room: room, Payload: ToastPayload{Message: message, Severity: severity}})
}

func (h *Hub) broadcast(room string, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error("marshal broadcast message", slog.Any("error", err))
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[room] {
		select {
		case client.send <- data:
		default:
			// Slow client; drop the message rather than block the engine.
		}
	}
}
