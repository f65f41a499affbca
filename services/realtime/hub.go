package realtime

import (
	"sync"

	"chime/models"

	"go.uber.org/zap"
)

// EventNewNotification is the event name pushed to a recipient's live
// channels when a notification is recorded for them.
const EventNewNotification = "new-notification"

// Event is a named payload delivered over a live channel.
type Event struct {
	Name    string
	Payload models.Notification
}

// Channel is one live, addressable path to a connected client session (one
// browser tab, one device). A user may hold any number of channels at once.
//
// Delivery into a channel is non-blocking: when the buffer is full the event
// is dropped for that channel only. Channels are never closed by the hub, so
// a send can never race an unregister into a panic; the consumer simply stops
// draining and unregisters.
type Channel struct {
	events chan Event
}

// NewChannel creates a channel with the given delivery buffer.
func NewChannel(buffer int) *Channel {
	if buffer < 1 {
		buffer = 1
	}
	return &Channel{events: make(chan Event, buffer)}
}

// Events exposes the delivery stream for the channel's consumer.
func (ch *Channel) Events() <-chan Event {
	return ch.events
}

// Hub tracks which users currently have reachable channels and fans a push
// out to all of them. It holds no persistence, does no retries and tracks no
// acknowledgments: delivery is fire-and-forget multicast to whatever is live
// at call time. The authoritative record always lives in the store.
type Hub struct {
	mu       sync.RWMutex
	channels map[string]map[*Channel]struct{}
	logger   *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		channels: make(map[string]map[*Channel]struct{}),
		logger:   logger,
	}
}

// Register binds a channel to a user. Registering the same (user, channel)
// pair twice is a no-op.
func (h *Hub) Register(userID string, ch *Channel) {
	if userID == "" || ch == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.channels[userID]
	if !ok {
		set = make(map[*Channel]struct{})
		h.channels[userID] = set
	}
	set[ch] = struct{}{}
}

// Unregister removes a binding. Unknown bindings are a silent no-op, so a
// disconnect path may call it any number of times.
func (h *Hub) Unregister(userID string, ch *Channel) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.channels[userID]
	if !ok {
		return
	}
	delete(set, ch)
	if len(set) == 0 {
		delete(h.channels, userID)
	}
}

// Push delivers the event to every channel currently bound to userID and
// returns the number of channels that accepted it. Zero bound channels is
// not an error; a full channel buffer drops the event for that channel
// without stalling delivery to the others.
func (h *Hub) Push(userID string, event Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for ch := range h.channels[userID] {
		select {
		case ch.events <- event:
			delivered++
		default:
			h.logger.Debug("Dropped event on saturated channel",
				zap.String("userID", userID),
				zap.String("event", event.Name))
		}
	}
	return delivered
}

// ChannelCount reports how many channels are currently bound to userID.
func (h *Hub) ChannelCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[userID])
}
