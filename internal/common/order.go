package common

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Order is a single trading intent. Every field is fixed at construction, the
// book only ever moves the order between containers, so an *Order can be
// shared freely between the id registry and the queue holding it.
type Order struct {
	side      Side      // Order side
	id        string    // Caller supplied identifier, unique per book
	price     float64   // Limiting price
	volume    float64   // Volume requested
	timestamp time.Time // Time the order was created
}

// NewOrder stamps the creation time. No validation happens here, that is the
// job of the book admitting the order.
func NewOrder(side Side, id string, price, volume float64) *Order {
	return &Order{
		side:      side,
		id:        id,
		price:     price,
		volume:    volume,
		timestamp: time.Now(),
	}
}

// GenerateID returns a fresh identifier suitable for NewOrder.
func GenerateID() string {
	return uuid.New().String()
}

func (order *Order) Side() Side { return order.side }
func (order *Order) ID() string { return order.id }
func (order *Order) Price() float64 { return order.price }
func (order *Order) Volume() float64 { return order.volume }
func (order *Order) Timestamp() time.Time { return order.timestamp }

func (order *Order) String() string {
	return fmt.Sprintf(
		`ID:        %s
Side:      %v
Price:     %f
Volume:    %f
Timestamp: %v`,
		order.id,
		order.side,
		order.price,
		order.volume,
		order.timestamp.Format(time.RFC3339Nano),
	)
}
