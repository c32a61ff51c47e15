package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"backoffice/internal/metrics"
	"backoffice/internal/models"
)

const (
	EventNotice     = "notice"
	EventSignedIn   = "signed_in"
	EventSignedOut  = "signed_out"
	EventExportDone = "export_done"
)

// SessionEventPayload describes a sign-in or sign-out for event consumers.
type SessionEventPayload struct {
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

// ExportEventPayload describes a finished document export.
type ExportEventPayload struct {
	Kind     string `json:"kind"`
	FileName string `json:"file_name"`
}

// Event represents a lightweight domain event.
type Event struct {
	ID        int64
	Type      string
	Payload   []byte
	CreatedAt time.Time
}

// EventHandler reacts to an event.
type EventHandler func(event *Event) error

// EventBus provides in-process pub/sub for events.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
}

// NewEventBus constructs an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[string][]EventHandler)}
}

// Subscribe registers a handler for a given event type.
func (b *EventBus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish notifies subscribers of the event type.
func (b *EventBus) Publish(event *Event) {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	for _, handler := range handlers {
		// Handlers run synchronously; caller decides concurrency model.
		_ = handler(event)
	}
}

// PublishJSON serializes the payload and publishes an event.
func (b *EventBus) PublishJSON(eventType string, payload interface{}) error {
	if b == nil {
		return nil
	}

	event, err := NewJSONEvent(eventType, payload)
	if err != nil {
		return err
	}

	b.Publish(&event)
	return nil
}

// NewJSONEvent builds an Event with JSON payload for manual publishing.
func NewJSONEvent(eventType string, payload interface{}) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}

	return Event{Type: eventType, Payload: raw, CreatedAt: time.Now()}, nil
}

// Collector buffers the notices raised while serving one request.
type Collector struct {
	mu      sync.Mutex
	notices []models.Notice
}

func (c *Collector) Add(n models.Notice) {
	c.mu.Lock()
	c.notices = append(c.notices, n)
	c.mu.Unlock()
}

// Drain returns the buffered notices and empties the buffer.
func (c *Collector) Drain() []models.Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.notices
	c.notices = nil
	return out
}

type collectorKey struct{}

// WithCollector attaches a fresh collector to ctx.
func WithCollector(ctx context.Context) (context.Context, *Collector) {
	c := &Collector{}
	return context.WithValue(ctx, collectorKey{}, c), c
}

func CollectorFrom(ctx context.Context) *Collector {
	c, _ := ctx.Value(collectorKey{}).(*Collector)
	return c
}

// Notifier raises notices: it buffers them on the request collector and
// publishes them on the bus.
type Notifier struct {
	bus *EventBus
}

func NewNotifier(bus *EventBus) *Notifier {
	return &Notifier{bus: bus}
}

func (n *Notifier) Notify(ctx context.Context, notice models.Notice) {
	metrics.IncNotice(notice.Level)
	if c := CollectorFrom(ctx); c != nil {
		c.Add(notice)
	}
	if n != nil {
		_ = n.bus.PublishJSON(EventNotice, notice)
	}
}

func Success(msg string) models.Notice {
	return models.Notice{Level: models.NoticeSuccess, Message: msg}
}

func Error(msg string) models.Notice {
	return models.Notice{Level: models.NoticeError, Message: msg}
}
