package notifier

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/nush-eats/storefront-app/models"
	"github.com/nush-eats/storefront-app/utils"
)

const EventNewOrder = "NEW_ORDER"

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub holds the set of live admin observer connections. Membership is
// in-memory only: a restart empties the set and there is no replay for
// observers that connect after an event was sent.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// Register adds a connection after a successful upgrade.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

// Unregister removes a connection and closes it. Normal and abnormal
// closes are treated the same.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// ClientCount returns the number of currently connected observers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// BroadcastNewOrder pushes a NEW_ORDER event to every connected
// observer. Delivery is best effort, at most once per connection; a
// failed write skips that connection only, removal happens via its
// close event.
func (h *Hub) BroadcastNewOrder(order *models.OrderWithDetails) {
	h.broadcast(Message{Type: EventNewOrder, Data: order})
}

func (h *Hub) broadcast(msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling %s event: %v", msg.Type, err)
		return
	}

	utils.InfoLogger.Printf("Broadcasting %s to %d clients", msg.Type, len(h.clients))

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending %s to client: %v", msg.Type, err)
			continue
		}
	}
}
