package realtime

import (
	"log"
	"sync"

	"symposium-api/metrics"

	"github.com/gorilla/websocket"
)

var (
	eventClients = make(map[uint]map[*websocket.Conn]bool) // Map of event ID to connected clients
	broadcast    = make(chan RegistrationUpdate)           // Broadcast channel for updates
	mutex        sync.Mutex                                // Mutex to protect eventClients map
)

// Update kinds pushed on the live feed
const (
	UpdateRegistered  = "registered"
	UpdateVerified    = "verified"
	UpdateEligibility = "eligibility"
)

// RegistrationUpdate represents a change to an event's registrations
type RegistrationUpdate struct {
	EventID    uint        `json:"event_id"`
	UpdateType string      `json:"update_type"`
	Payload    interface{} `json:"payload"`
}

// RegisterClient adds a WebSocket client to a specific event's feed
func RegisterClient(eventID uint, conn *websocket.Conn) {
	mutex.Lock()
	if eventClients[eventID] == nil {
		eventClients[eventID] = make(map[*websocket.Conn]bool)
	}
	eventClients[eventID][conn] = true
	mutex.Unlock()
	metrics.WebsocketClients.Inc()
}

// UnregisterClient removes a WebSocket client from a specific event's feed
func UnregisterClient(eventID uint, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := eventClients[eventID]; exists {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(eventClients, eventID)
		}
	}
	mutex.Unlock()
	metrics.WebsocketClients.Dec()
}

// BroadcastUpdate sends an update to all clients watching an event
func BroadcastUpdate(update RegistrationUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		if clients, exists := eventClients[update.EventID]; exists {
			for client := range clients {
				if err := client.WriteJSON(update); err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
				}
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
