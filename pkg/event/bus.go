/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
	"github.com/trustbloc/credential-agent/pkg/event/spi"
	"github.com/trustbloc/credential-agent/pkg/lifecycle"
)

var logger = log.New("event-bus")

const defaultBufferSize = 250

// Bus is an in-process publish/subscribe hub. Events of a topic reach every subscriber in
// publication order. Events queued when the bus stops are still delivered before the
// subscriber channels are closed.
type Bus struct {
	*lifecycle.Lifecycle

	bufferSize int

	mu     sync.RWMutex
	topics map[string][]chan *spi.Event

	// publishMu guards queue against being closed while a publisher sends on it.
	publishMu  sync.RWMutex
	queue      chan *entry
	dispatched chan struct{}
}

type entry struct {
	topic  string
	events []*spi.Event
}

// BusOpt configures the Bus.
type BusOpt func(b *Bus)

// WithBufferSize sets the capacity of the publish queue and of every subscriber channel.
func WithBufferSize(size int) BusOpt {
	return func(b *Bus) {
		if size > 0 {
			b.bufferSize = size
		}
	}
}

// NewEventBus returns a started bus.
func NewEventBus(opts ...BusOpt) *Bus {
	b := &Bus{
		bufferSize: defaultBufferSize,
		topics:     map[string][]chan *spi.Event{},
		dispatched: make(chan struct{}),
	}

	for _, fn := range opts {
		fn(b)
	}

	b.queue = make(chan *entry, b.bufferSize)
	b.Lifecycle = lifecycle.New("event-bus", lifecycle.WithStart(b.start), lifecycle.WithStop(b.stop))

	b.Start()

	return b
}

// Close stops the bus.
func (b *Bus) Close() error {
	b.Stop()

	return nil
}

// IsConnected returns true while the bus accepts events.
func (b *Bus) IsConnected() bool {
	return b.EnsureStarted() == nil
}

// Subscribe returns the channel receiving the events of topic. It is closed when the bus stops.
func (b *Bus) Subscribe(_ context.Context, topic string) (<-chan *spi.Event, error) {
	if err := b.EnsureStarted(); err != nil {
		return nil, err
	}

	ch := make(chan *spi.Event, b.bufferSize)

	b.mu.Lock()
	b.topics[topic] = append(b.topics[topic], ch)
	b.mu.Unlock()

	logger.Debug("subscribed to topic", log.WithTopic(topic))

	return ch, nil
}

// Publish queues events for delivery to the subscribers of topic. It blocks while the queue
// is full and gives up when ctx is done.
func (b *Bus) Publish(ctx context.Context, topic string, events ...*spi.Event) error {
	b.publishMu.RLock()
	defer b.publishMu.RUnlock()

	if err := b.EnsureStarted(); err != nil {
		return err
	}

	select {
	case b.queue <- &entry{topic: topic, events: events}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("publish to topic %s: %w", topic, ctx.Err())
	}
}

func (b *Bus) start() {
	go b.dispatch()
}

func (b *Bus) stop() {
	logger.Info("stopping event bus")

	b.publishMu.Lock()
	close(b.queue)
	b.publishMu.Unlock()

	<-b.dispatched

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, subscribers := range b.topics {
		for _, ch := range subscribers {
			close(ch)
		}
	}

	b.topics = map[string][]chan *spi.Event{}

	logger.Info("event bus stopped")
}

func (b *Bus) dispatch() {
	defer close(b.dispatched)

	for e := range b.queue {
		b.deliver(e)
	}
}

func (b *Bus) deliver(e *entry) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	subscribers := b.topics[e.topic]
	if len(subscribers) == 0 {
		logger.Debug("no subscribers for topic", log.WithTopic(e.topic))

		return
	}

	for _, ch := range subscribers {
		for _, event := range e.events {
			c := event.Copy()

			logger.Debug("delivering event", log.WithTopic(e.topic), log.WithEvent(c))

			ch <- c
		}
	}
}
