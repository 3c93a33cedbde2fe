// Package notify implements the change-notification feed: an
// in-process hub where mutation sources publish "something in this
// collection changed" signals and subscribers react by re-reading.
// Signals carry no payload beyond the entity type.
package notify

import (
	"log/slog"
	"sync"

	"github.com/ptran/tracker/internal/model"
)

// Handler receives the entity type that changed. Handlers run on a
// per-subscriber goroutine, never on the publisher's goroutine.
type Handler func(model.EntityType)

// signalBuffer bounds pending signals per subscriber. Dropping when
// full is safe: an undelivered signal for the same entity type is
// already queued, and delivery only means "re-read".
const signalBuffer = 16

type subscriber struct {
	types map[model.EntityType]bool
	ch    chan model.EntityType
}

// Hub fans change signals out to subscribers.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]*subscriber
	nextID int
	closed bool
	logger *slog.Logger
}

// NewHub creates an empty hub. logger may be nil.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		subs:   make(map[int]*subscriber),
		logger: logger,
	}
}

// Subscribe registers fn for signals on any of the given entity types
// and returns an unsubscribe handle. The handle is idempotent.
func (h *Hub) Subscribe(types []model.EntityType, fn Handler) (unsubscribe func()) {
	sub := &subscriber{
		types: make(map[model.EntityType]bool, len(types)),
		ch:    make(chan model.EntityType, signalBuffer),
	}
	for _, t := range types {
		sub.types[t] = true
	}

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	if h.closed {
		h.mu.Unlock()
		return func() {}
	}
	h.subs[id] = sub
	h.mu.Unlock()

	go func() {
		for t := range sub.ch {
			fn(t)
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			if _, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub.ch)
			}
			h.mu.Unlock()
		})
	}
}

// Publish delivers a change signal for t to every interested
// subscriber without blocking the caller.
func (h *Hub) Publish(t model.EntityType) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		if !sub.types[t] {
			continue
		}
		select {
		case sub.ch <- t:
		default:
			h.logger.Debug("dropping change signal, subscriber busy",
				"entity_type", string(t))
		}
	}
}

// Close removes all subscribers and stops their delivery goroutines.
// Publishing after Close is a no-op.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, sub := range h.subs {
		delete(h.subs, id)
		close(sub.ch)
	}
}
