package websocket

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/blincar/blincar/internal/pkg/models"
)

func newTestManager(bufferSize int) *Manager {
	return NewManager(models.JWTConfig{Secret: "test-secret"}, bufferSize)
}

func TestRegisterAndIsOnline(t *testing.T) {
	m := newTestManager(4)
	userID := uuid.New()

	assert.False(t, m.IsOnline(userID))

	client := m.NewClient(userID, models.RolePassenger, nil)
	m.Register(client)
	assert.True(t, m.IsOnline(userID))

	m.Unregister(client)
	assert.False(t, m.IsOnline(userID))
}

func TestUnregisterLeavesOtherConnections(t *testing.T) {
	m := newTestManager(4)
	userID := uuid.New()

	phone := m.NewClient(userID, models.RolePassenger, nil)
	laptop := m.NewClient(userID, models.RolePassenger, nil)
	m.Register(phone)
	m.Register(laptop)

	m.Unregister(phone)

	assert.True(t, m.IsOnline(userID))
	assert.True(t, m.NotifyUser(userID, "notification", map[string]string{"k": "v"}))
}

func TestNotifyUser_AbsentUser(t *testing.T) {
	m := newTestManager(4)

	assert.False(t, m.NotifyUser(uuid.New(), "notification", nil))
}

func TestNotifyUser_FullBufferCountsAsAbsent(t *testing.T) {
	m := newTestManager(1)
	userID := uuid.New()

	client := m.NewClient(userID, models.RolePassenger, nil)
	m.Register(client)

	// First frame fills the buffer; nothing drains it without a pump
	assert.True(t, m.NotifyUser(userID, "notification", nil))
	assert.False(t, m.NotifyUser(userID, "notification", nil))
}

func TestNotifyUser_AnyConnectionAccepting(t *testing.T) {
	m := newTestManager(1)
	userID := uuid.New()

	saturated := m.NewClient(userID, models.RolePassenger, nil)
	fresh := m.NewClient(userID, models.RolePassenger, nil)
	m.Register(saturated)
	saturated.enqueue(models.WSMessage{Event: "filler"})
	m.Register(fresh)

	assert.True(t, m.NotifyUser(userID, "notification", nil))
}

func TestBroadcastRole(t *testing.T) {
	m := newTestManager(4)

	admin := m.NewClient(uuid.New(), models.RoleAdmin, nil)
	driver := m.NewClient(uuid.New(), models.RoleDriver, nil)
	m.Register(admin)
	m.Register(driver)

	m.BroadcastRole(models.RoleAdmin, "location_update", map[string]string{"trip_id": uuid.New().String()})

	assert.Len(t, admin.send, 1)
	assert.Len(t, driver.send, 0)
}

func TestBroadcastAll(t *testing.T) {
	m := newTestManager(4)

	a := m.NewClient(uuid.New(), models.RolePassenger, nil)
	b := m.NewClient(uuid.New(), models.RoleDriver, nil)
	m.Register(a)
	m.Register(b)

	m.BroadcastAll("announcement", nil)

	assert.Len(t, a.send, 1)
	assert.Len(t, b.send, 1)
}

func TestNotifyUser_UnserializableDataDropped(t *testing.T) {
	m := newTestManager(4)
	userID := uuid.New()
	client := m.NewClient(userID, models.RolePassenger, nil)
	m.Register(client)

	assert.False(t, m.NotifyUser(userID, "notification", map[string]interface{}{"fn": func() {}}))
	assert.Len(t, client.send, 0)
}

func TestEnqueueAfterCloseIsNoOp(t *testing.T) {
	m := newTestManager(4)
	client := m.NewClient(uuid.New(), models.RolePassenger, nil)
	m.Register(client)
	m.Unregister(client)

	assert.False(t, client.enqueue(models.WSMessage{Event: "notification"}))
}

func TestNotifyUser_ConcurrentDisconnectDoesNotPanic(t *testing.T) {
	m := newTestManager(1)
	userID := uuid.New()

	const connections = 512
	clients := make([]*Client, connections)
	for i := range clients {
		clients[i] = m.NewClient(userID, models.RolePassenger, nil)
		m.Register(clients[i])
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < connections; i++ {
			m.NotifyUser(userID, "notification", nil)
		}
	}()
	go func() {
		defer wg.Done()
		for _, c := range clients {
			m.Unregister(c)
		}
	}()
	wg.Wait()

	assert.False(t, m.IsOnline(userID))
}

func TestSendMessage_NilConnection(t *testing.T) {
	m := newTestManager(4)

	assert.NoError(t, m.SendMessage(nil, "pong", nil))
	assert.NoError(t, m.SendErrorMessage(nil, "INVALID_FORMAT", "bad payload"))
}
