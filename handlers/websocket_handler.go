package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/tylacb11-spec/lienquan-sub000/middleware"
	"github.com/tylacb11-spec/lienquan-sub000/realtime"
	"github.com/tylacb11-spec/lienquan-sub000/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict Origin once the frontend domain is fixed.
		return true
	},
}

type WebSocketHandler struct {
	hub *realtime.Hub
	log *slog.Logger
}

func NewWebSocketHandler(hub *realtime.Hub, log *slog.Logger) *WebSocketHandler {
	if log == nil {
		log = slog.Default()
	}
	return &WebSocketHandler{hub: hub, log: log}
}

// ServeWs subscribes the caller to the event stream of one save slot.
// Clients connect to /ws/saves/{slot}; the room is scoped to the
// authenticated user, so two users on the same slot never share events.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	slot, err := urlParamInt(r, "slot")
	if err != nil {
		http.Error(w, "invalid save slot", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("websocket upgrade failed", slog.Any("error", err))
		return
	}

	room := services.SaveRoom(userID, slot)
	realtime.NewClient(h.hub, conn, room)
	h.log.Debug("websocket client connected", slog.String("room", room))
}
