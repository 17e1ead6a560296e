/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/trustbloc/credential-agent/pkg/event/spi"
)

type eventPublisher interface {
	Publish(ctx context.Context, topic string, events ...*spi.Event) error
}

// Publisher builds events for a source and publishes them to a topic.
type Publisher struct {
	publisher eventPublisher
	source    string
	topic     string
}

// NewEventPublisher creates event publisher.
func NewEventPublisher(pub eventPublisher, source, topic string) *Publisher {
	return &Publisher{
		publisher: pub,
		source:    source,
		topic:     topic,
	}
}

// Publish wraps the payload into a new event and publishes it.
func (p *Publisher) Publish(
	ctx context.Context,
	eventType spi.EventType,
	tenantID, exchangeID string,
	payload interface{},
) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", eventType, err)
	}

	e := spi.NewEventWithPayload(uuid.NewString(), p.source, eventType, data)
	e.TenantID = tenantID
	e.ExchangeID = exchangeID

	return p.publisher.Publish(ctx, p.topic, e)
}
