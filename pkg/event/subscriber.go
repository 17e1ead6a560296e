/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"fmt"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
	"github.com/trustbloc/credential-agent/pkg/event/spi"
	"github.com/trustbloc/credential-agent/pkg/lifecycle"
)

type (
	eventHandler func(ctx context.Context, event *spi.Event) error
)

type eventSubscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *spi.Event, error)
}

// Subscriber dispatches the events of one topic to a handler.
type Subscriber struct {
	*lifecycle.Lifecycle

	handler   eventHandler
	eventChan <-chan *spi.Event
	done      chan struct{}
}

// NewEventSubscriber returns a new subscriber.
func NewEventSubscriber(sub eventSubscriber, topic string, handler eventHandler) (*Subscriber, error) {
	h := &Subscriber{
		handler: handler,
		done:    make(chan struct{}),
	}

	h.Lifecycle = lifecycle.New("event-subscriber",
		lifecycle.WithStart(h.start),
	)

	ch, err := sub.Subscribe(context.Background(), topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe to topic [%s]: %w", topic, err)
	}

	h.eventChan = ch

	return h, nil
}

// Done is closed when the event channel has been closed and drained.
func (h *Subscriber) Done() <-chan struct{} {
	return h.done
}

func (h *Subscriber) start() {
	go h.listen()
}

func (h *Subscriber) listen() {
	defer close(h.done)

	for e := range h.eventChan {
		h.handleEvent(e)
	}

	logger.Info("event channel closed")
}

func (h *Subscriber) handleEvent(e *spi.Event) {
	logger.Debug("handling subscriber event", log.WithEvent(e))

	if err := h.handler(context.Background(), e); err != nil {
		logger.Error("failed to handle event", log.WithEvent(e), log.WithError(err))
	}
}
