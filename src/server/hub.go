package server

import (
	"encoding/json"
	"net/http"

	"stock-dashboard/src/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Hub Pattern Implementation
// -----------------------------------------------------------------------------

// handleWebsockets is the main Hub loop
func (s *DashboardServer) handleWebsockets() {
	for {
		select {
		case client := <-s.register:
			s.clients[client] = struct{}{}
			s.stateMutex.Lock()
			s.connections = len(s.clients)
			state := s.latestState
			s.stateMutex.Unlock()

			// Send initial state on connect
			if state != nil {
				client.send <- state
			}

		case client := <-s.unregister:
			if _, ok := s.clients[client]; ok {
				delete(s.clients, client)
				close(client.send)
				s.stateMutex.Lock()
				s.connections = len(s.clients)
				s.stateMutex.Unlock()
			}

		case message := <-s.broadcast:
			// Update state and broadcast
			s.stateMutex.Lock()
			s.latestState = message
			s.stateMutex.Unlock()

			for client := range s.clients {
				select {
				case client.send <- message:
					// Message sent successfully
				default:
					// Client too slow, disconnect to prevent Hub blocking
					delete(s.clients, client)
					close(client.send)
				}
			}

			// Pruning may have shrunk the client set
			s.stateMutex.Lock()
			s.connections = len(s.clients)
			s.stateMutex.Unlock()
		}
	}
}

// -----------------------------------------------------------------------------
// Data Exchange Interface Implementation
// -----------------------------------------------------------------------------

// UpdateAllDatas replaces the internal state without broadcasting.
func (s *DashboardServer) UpdateAllDatas(state *models.MLatestData) {
	s.stateMutex.Lock()
	state.Type = "UPDATE"
	s.latestState = state
	s.stateMutex.Unlock()
}

// -----------------------------------------------------------------------------

// Broadcast queues a full dashboard state for all connected clients.
// The state is built by the pipeline before entering the channel, so the
// Hub loop never does data processing.
func (s *DashboardServer) Broadcast(state *models.MLatestData) {
	state.Type = "UPDATE"
	s.broadcast <- state
}

// -----------------------------------------------------------------------------
// WebSocket Handlers
// -----------------------------------------------------------------------------

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Info("Failed to upgrade websocket: %v", err)
		return
	}

	client := &Client{
		hub:  s,
		conn: conn,
		// Buffered channel to prevent blocking the Hub loop
		send: make(chan interface{}, 256),
	}

	s.register <- client

	// Start goroutines for reading/writing
	go client.writePump()
	go client.readPump()
}

// -----------------------------------------------------------------------------
// Client Message Handling
// -----------------------------------------------------------------------------

func (s *DashboardServer) HandleClientMessage(client *Client, message []byte) {
	var cmd models.MSubscribeCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		s.Logger.Info("Failed to parse client command: %v, disconnecting client", err)
		client.conn.Close()
		return
	}

	if cmd.Command != "subscribe" {
		return
	}

	s.stateMutex.RLock()
	response := s.filteredResponse(cmd.Symbols)
	s.stateMutex.RUnlock()

	// Use select to avoid blocking if client's send buffer is full
	select {
	case client.send <- response:
	default:
		// Client buffer full; the Hub loop prunes slow clients on broadcast
	}
}

// -----------------------------------------------------------------------------
// Response Filtering
// -----------------------------------------------------------------------------

// filteredResponse returns the current state restricted to the requested
// symbols. An empty subscription means everything. Caller holds stateMutex.
func (s *DashboardServer) filteredResponse(symbols []string) *models.MLatestData {
	filtered := make(map[string]models.MSymbolState)

	if len(symbols) == 0 {
		filtered = s.latestState.Symbols
	} else {
		for _, sym := range symbols {
			if state, exists := s.latestState.Symbols[sym]; exists {
				filtered[sym] = state
			}
		}
	}

	return &models.MLatestData{
		Type:      "INITIAL",
		Symbols:   filtered,
		Timestamp: s.latestState.Timestamp,
		Metrics:   s.latestState.Metrics,
	}
}
