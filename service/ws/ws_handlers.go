package ws

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/interviewbook/interviewbook-server/cmd/models"
	"github.com/interviewbook/interviewbook-server/cmd/utils"
	"gorm.io/gorm"
)

// EventsHandler streams booking events to connected admin dashboards.
type EventsHandler struct {
	db  *gorm.DB
	hub *models.Hub
}

func NewEventsHandler(db *gorm.DB, hub *models.Hub) *EventsHandler {
	return &EventsHandler{db: db, hub: hub}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *EventsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/ws/bookings", utils.RequireAdmin(h.db, h.HandleWebSocket))
}

func (h *EventsHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	log.Printf("Admin %d connected to booking feed", userID)

	client := &models.ClientConnection{
		Hub:    h.hub,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		UserID: userID,
	}

	h.hub.Register <- client

	go client.WritePump()
	go h.readUntilClose(client)
}

// readUntilClose drains the connection so pings/pongs and close frames are
// processed; the feed itself is one-way.
func (h *EventsHandler) readUntilClose(client *models.ClientConnection) {
	defer func() {
		h.hub.Unregister <- client
		client.Conn.Close()
	}()

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket read error: %v", err)
			}
			return
		}
	}
}
