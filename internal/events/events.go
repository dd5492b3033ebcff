// Package events carries the product notifications emitted by the catalog
// and the publishers that deliver them to a message channel.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	ProductTopic  = "product"
	Separator     = "."
	UnitAvailable = "unit_available"

	// UnitAvailableTopic is the channel an item's owning product is announced on
	// when the item becomes operational.
	UnitAvailableTopic = ProductTopic + Separator + UnitAvailable
)

// ProductEvent is a domain event about a product, routed by Topic.
type ProductEvent struct {
	Topic     string
	ProductID uint
}

// NewUnitAvailable builds the event published when an item of productID becomes operational.
func NewUnitAvailable(productID uint) ProductEvent {
	return ProductEvent{Topic: UnitAvailableTopic, ProductID: productID}
}

// ProductMessage is the wire payload of a ProductEvent.
type ProductMessage struct {
	ProductID uint `json:"productId"`
}

// Key is the partition/message key of the event.
func (e ProductEvent) Key() []byte {
	return []byte(strconv.FormatUint(uint64(e.ProductID), 10))
}

// Body encodes the event payload as JSON.
func (e ProductEvent) Body() ([]byte, error) {
	body, err := json.Marshal(ProductMessage{ProductID: e.ProductID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal product event: %w", err)
	}
	return body, nil
}

// DecodeProductMessage parses a payload produced by ProductEvent.Body.
func DecodeProductMessage(body []byte) (ProductMessage, error) {
	var msg ProductMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return ProductMessage{}, fmt.Errorf("failed to unmarshal product message: %w", err)
	}
	return msg, nil
}

// Publisher delivers product events to a message channel.
type Publisher interface {
	Publish(ctx context.Context, event ProductEvent) error
	Close() error
}
