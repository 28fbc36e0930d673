package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/daniel-odulate22/NutriTrack-API/models"
)

// WSClient is one websocket connection owned by one user. All frame writes
// go through Write: the keep-alive ping and hub broadcasts land on the same
// connection from different goroutines, and gorilla/websocket permits at
// most one concurrent writer.
type WSClient struct {
	userID uint
	conn   *websocket.Conn
	mu     sync.Mutex
}

func NewWSClient(userID uint, conn *websocket.Conn) *WSClient {
	return &WSClient{userID: userID, conn: conn}
}

func (c *WSClient) Write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

func (c *WSClient) Ping() error {
	return c.Write(websocket.PingMessage, nil)
}

// ReminderHub pushes due-reminder notifications to connected clients over
// websockets. Notifications are transient: nothing is persisted and clients
// that are offline at the scheduled minute miss the ping.
type ReminderHub struct {
	mu        sync.RWMutex
	clients   map[uint]map[*WSClient]struct{}
	reminders *ReminderService
	log       zerolog.Logger
}

func NewReminderHub(reminders *ReminderService, log zerolog.Logger) *ReminderHub {
	return &ReminderHub{
		clients:   make(map[uint]map[*WSClient]struct{}),
		reminders: reminders,
		log:       log,
	}
}

func (h *ReminderHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*WSClient]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *ReminderHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.userID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

func (h *ReminderHub) Broadcast(userID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Write(websocket.TextMessage, msg)
	}
}

// Run ticks once per minute and pushes every reminder whose HH:MM matches
// the current wall clock. Blocks until ctx is done.
func (h *ReminderHub) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			h.dispatch(now)
		}
	}
}

func (h *ReminderHub) dispatch(now time.Time) {
	hhmm := now.Format("15:04")
	due, err := h.reminders.DueAt(hhmm)
	if err != nil {
		h.log.Error().Err(err).Str("time", hhmm).Msg("query due reminders")
		return
	}
	for _, r := range due {
		h.Broadcast(r.UserID, reminderDueEvent{Kind: "reminder.due", Reminder: r})
	}
}

type reminderDueEvent struct {
	Kind     string          `json:"kind"`
	Reminder models.Reminder `json:"reminder"`
}
