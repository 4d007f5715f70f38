package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/blincar/blincar/internal/pkg/constants"
	"github.com/blincar/blincar/internal/pkg/logger"
	"github.com/blincar/blincar/internal/pkg/models"
)

// Claims represents the JWT claims used for WebSocket authentication
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Client is one live WebSocket connection for a user. A user may hold
// several clients at once (multiple devices or tabs).
type Client struct {
	UserID uuid.UUID
	Role   string
	Conn   *websocket.Conn

	mu     sync.Mutex
	closed bool
	send   chan models.WSMessage
}

// enqueue offers a message to the client's outbound buffer without
// blocking. A full buffer means the frame is dropped. The mutex keeps
// the offer and close mutually exclusive: an enqueue racing a
// disconnect sees the closed flag and becomes a no-op instead of a
// send on a closed channel.
func (c *Client) enqueue(msg models.WSMessage) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// close shuts the outbound buffer exactly once
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// writePump drains the outbound buffer onto the wire. It exits when the
// buffer is closed or a write fails.
func (c *Client) writePump() {
	for msg := range c.send {
		if c.Conn == nil {
			continue // nil connection tolerated for tests
		}
		if err := c.Conn.WriteJSON(msg); err != nil {
			logger.Warn("WebSocket write failed, dropping connection",
				logger.String("user_id", c.UserID.String()),
				logger.Err(err))
			return
		}
	}
}

// Manager is the process-local presence directory. It tracks which users
// currently hold live connections and offers best-effort delivery to
// them. It is never authoritative: absence here only means the durable
// push channel is the sole route to the user.
type Manager struct {
	sync.RWMutex
	clients    map[uuid.UUID]map[*Client]struct{}
	cfg        models.JWTConfig
	bufferSize int
	upgrader   websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig, bufferSize int) *Manager {
	if bufferSize <= 0 {
		bufferSize = 32
	}
	return &Manager{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		cfg:        jwtConfig,
		bufferSize: bufferSize,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.Conn = ws
	m.Register(client)
	defer m.Unregister(client)

	go client.writePump()

	return handleClient(client)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*Client, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token: user_id is not a valid UUID")
	}

	return &Client{
		UserID: userID,
		Role:   claims.Role,
		send:   make(chan models.WSMessage, m.bufferSize),
	}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// NewClient builds a registered-ready client. Exposed for tests and for
// handlers that manage the socket lifecycle themselves.
func (m *Manager) NewClient(userID uuid.UUID, role string, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		Role:   role,
		Conn:   conn,
		send:   make(chan models.WSMessage, m.bufferSize),
	}
}

// Register adds a client connection to the directory
func (m *Manager) Register(client *Client) {
	m.Lock()
	defer m.Unlock()
	conns, ok := m.clients[client.UserID]
	if !ok {
		conns = make(map[*Client]struct{})
		m.clients[client.UserID] = conns
	}
	conns[client] = struct{}{}
}

// Unregister removes a client connection from the directory. Other
// connections of the same user are unaffected.
func (m *Manager) Unregister(client *Client) {
	m.Lock()
	conns, ok := m.clients[client.UserID]
	if ok {
		delete(conns, client)
		if len(conns) == 0 {
			delete(m.clients, client.UserID)
		}
	}
	m.Unlock()
	client.close()
}

// IsOnline reports whether the user holds at least one live connection
func (m *Manager) IsOnline(userID uuid.UUID) bool {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients[userID]) > 0
}

// NotifyUser sends an event to every live connection of the user. It
// returns true when at least one connection accepted the frame; a full
// buffer counts as absent for that connection.
func (m *Manager) NotifyUser(userID uuid.UUID, event string, data interface{}) bool {
	msg, err := m.buildMessage(event, data)
	if err != nil {
		logger.Warn("Error marshaling WebSocket message",
			logger.String("event", event),
			logger.Err(err))
		return false
	}

	m.RLock()
	conns := make([]*Client, 0, len(m.clients[userID]))
	for client := range m.clients[userID] {
		conns = append(conns, client)
	}
	m.RUnlock()

	delivered := false
	for _, client := range conns {
		if client.enqueue(msg) {
			delivered = true
		} else {
			logger.Debug("WebSocket buffer full, dropping frame",
				logger.String("user_id", userID.String()),
				logger.String("event", event))
		}
	}
	return delivered
}

// BroadcastRole sends an event to every connected user with the given role
func (m *Manager) BroadcastRole(role string, event string, data interface{}) {
	msg, err := m.buildMessage(event, data)
	if err != nil {
		logger.Warn("Error marshaling WebSocket message",
			logger.String("event", event),
			logger.Err(err))
		return
	}

	m.RLock()
	var targets []*Client
	for _, conns := range m.clients {
		for client := range conns {
			if client.Role == role {
				targets = append(targets, client)
			}
		}
	}
	m.RUnlock()

	for _, client := range targets {
		client.enqueue(msg)
	}
}

// BroadcastAll sends an event to every live connection
func (m *Manager) BroadcastAll(event string, data interface{}) {
	msg, err := m.buildMessage(event, data)
	if err != nil {
		return
	}

	m.RLock()
	var targets []*Client
	for _, conns := range m.clients {
		for client := range conns {
			targets = append(targets, client)
		}
	}
	m.RUnlock()

	for _, client := range targets {
		client.enqueue(msg)
	}
}

func (m *Manager) buildMessage(event string, data interface{}) (models.WSMessage, error) {
	rawData, err := json.Marshal(data)
	if err != nil {
		return models.WSMessage{}, fmt.Errorf("error marshaling message data: %w", err)
	}
	return models.WSMessage{
		Event: event,
		Data:  rawData,
	}, nil
}

// SendMessage writes a message directly to a connection, bypassing the
// outbound buffer. Used for request/response exchanges like ping.
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // Handle nil connection gracefully for tests
	}

	msg, err := m.buildMessage(event, data)
	if err != nil {
		return err
	}

	return conn.WriteJSON(msg)
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}
