package registrations

import (
	"log"
	"net/http"
	"strconv"

	"symposium-api/database"
	"symposium-api/realtime"
	"symposium-api/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is enforced at the HTTP layer
	},
}

// LiveEventRegistrations streams registration updates for an event
// @Summary Live registration feed
// @Description Upgrades to a WebSocket and pushes registered/verified/eligibility updates for one event
// @Tags Registrations
// @Param eventId path int true "Event ID"
// @Success 101 {string} string "Switching Protocols"
// @Failure 400,404 {object} map[string]string
// @Router /registrations/live/{eventId} [get]
func LiveEventRegistrations(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("eventId"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}
	if !services.EventExists(database.DB, uint(eventID)) {
		respondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	realtime.RegisterClient(uint(eventID), conn)
	defer func() {
		realtime.UnregisterClient(uint(eventID), conn)
		conn.Close()
	}()

	// Hold the connection open; clients only receive
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
