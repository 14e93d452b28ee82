package engine

import (
	"sync"

	"lobcore/internal/common"
)

// OrderQueue holds the orders resting at a single price, in arrival order.
// Arrival order is the time priority a matcher consumes, so appends only ever
// go to the tail.
type OrderQueue struct {
	price float64

	mu     sync.Mutex
	orders []*common.Order
	volume float64 // Sum of the volumes of the orders in the queue.
}

func newOrderQueue(price float64) *OrderQueue {
	return &OrderQueue{price: price}
}

// append adds the order to the tail of the queue. The caller guarantees the
// order is non-nil and priced at this level.
func (q *OrderQueue) append(order *common.Order) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.orders = append(q.orders, order)
	q.volume += order.Volume()
}

func (q *OrderQueue) Price() float64 { return q.price }

func (q *OrderQueue) Volume() float64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.volume
}

func (q *OrderQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.orders)
}

// Orders returns a copy of the queue, head first.
func (q *OrderQueue) Orders() []*common.Order {
	q.mu.Lock()
	defer q.mu.Unlock()

	orders := make([]*common.Order, len(q.orders))
	copy(orders, q.orders)
	return orders
}

// snapshot reads the queue under a single lock acquisition.
func (q *OrderQueue) snapshot() Level {
	q.mu.Lock()
	defer q.mu.Unlock()

	orders := make([]*common.Order, len(q.orders))
	copy(orders, q.orders)
	return Level{
		Price:  q.price,
		Volume: q.volume,
		Orders: orders,
	}
}
