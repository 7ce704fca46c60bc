package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Handler consumes one event. A failing or panicking handler is logged and
// never affects the publisher or the other handlers.
type Handler func(ctx context.Context, event Event) error

type Metrics interface {
	RecordSubscriberFailure(name string)
}

// Dispatcher is an in-process, fire-and-forget publisher. Publish returns
// after every subscriber for the event's name has been invoked.
type Dispatcher struct {
	mu          sync.RWMutex
	subscribers map[string][]Handler
	metrics     Metrics
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		subscribers: make(map[string][]Handler),
	}
}

func (d *Dispatcher) WithMetrics(m Metrics) *Dispatcher {
	d.metrics = m
	return d
}

func (d *Dispatcher) Subscribe(name string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribers[name] = append(d.subscribers[name], handler)
}

func (d *Dispatcher) Publish(ctx context.Context, event Event) {
	d.mu.RLock()
	handlers := d.subscribers[event.Name()]
	d.mu.RUnlock()

	for _, handler := range handlers {
		d.deliver(ctx, event, handler)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event Event, handler Handler) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("event subscriber panicked", zap.String("event", event.Name()), zap.Any("panic", r))
			d.recordFailure(event.Name())
		}
	}()

	if err := handler(ctx, event); err != nil {
		zap.L().Error("event subscriber failed", zap.String("event", event.Name()), zap.Error(err))
		d.recordFailure(event.Name())
	}
}

func (d *Dispatcher) recordFailure(name string) {
	if d.metrics != nil {
		d.metrics.RecordSubscriberFailure(name)
	}
}
