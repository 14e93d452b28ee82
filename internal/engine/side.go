package engine

import (
	"sync"

	"github.com/tidwall/btree"

	"lobcore/internal/common"
)

type PriceLevels = btree.BTreeG[*OrderQueue]

// OrderSide indexes one direction of the book. Every price level lives in two
// indexes at once: an ordered B-tree for best price lookups and a map for
// constant time access by exact price. Both point at the same *OrderQueue.
//
// Locking: mu guards the shape of the indexes. Appending to a known level
// only needs mu for reading plus the queue's own lock, adding a level needs
// mu for writing. totalsMu is always taken last.
type OrderSide struct {
	mu     sync.RWMutex
	tree   *PriceLevels            // Price levels sorted by price, least first.
	levels map[float64]*OrderQueue // Same levels, keyed by exact price.
	depth  int                     // Number of distinct price levels.

	totalsMu sync.Mutex
	length   int     // Number of orders on the side.
	volume   float64 // Total volume resting on the side.
}

func newOrderSide() *OrderSide {
	// The side lock already serialises access, the tree does not need its own.
	tree := btree.NewBTreeGOptions(func(a, b *OrderQueue) bool {
		return a.price < b.price
	}, btree.Options{NoLocks: true})

	return &OrderSide{
		tree:   tree,
		levels: make(map[float64]*OrderQueue),
	}
}

// insert rests an order on this side. The caller has already checked that the
// order belongs here and that its price is a usable key.
func (side *OrderSide) insert(order *common.Order) {
	price := order.Price()

	// Fast path: the level exists, only the queue is mutated.
	side.mu.RLock()
	if queue, ok := side.levels[price]; ok {
		queue.append(order)
		side.addTotals(order.Volume())
		side.mu.RUnlock()
		return
	}
	side.mu.RUnlock()

	side.mu.Lock()
	defer side.mu.Unlock()

	// Another insert may have created the level between the two locks.
	queue, ok := side.levels[price]
	if !ok {
		queue = newOrderQueue(price)
		side.levels[price] = queue
		side.tree.Set(queue)
		side.depth++
	}
	queue.append(order)
	side.addTotals(order.Volume())
}

func (side *OrderSide) addTotals(volume float64) {
	side.totalsMu.Lock()
	defer side.totalsMu.Unlock()

	side.length++
	side.volume += volume
}

// bestBuyPrice returns the highest price on the side.
func (side *OrderSide) bestBuyPrice() (float64, bool) {
	side.mu.RLock()
	defer side.mu.RUnlock()

	queue, ok := side.tree.Max()
	if !ok {
		return 0, false
	}
	return queue.price, true
}

// bestSellPrice returns the lowest price on the side.
func (side *OrderSide) bestSellPrice() (float64, bool) {
	side.mu.RLock()
	defer side.mu.RUnlock()

	queue, ok := side.tree.Min()
	if !ok {
		return 0, false
	}
	return queue.price, true
}

func (side *OrderSide) volumeAt(price float64) (float64, bool) {
	side.mu.RLock()
	defer side.mu.RUnlock()

	queue, ok := side.levels[price]
	if !ok {
		return 0, false
	}
	return queue.Volume(), true
}

// stats reads the side counters. The write lock waits out in-flight inserts,
// which update their queue before the totals, so the counters always agree
// with the levels.
func (side *OrderSide) stats() SideStats {
	side.mu.Lock()
	defer side.mu.Unlock()

	return SideStats{
		Orders: side.length,
		Depth:  side.depth,
		Volume: side.volume,
	}
}

// Levels copies every price level, ascending by price or descending when asked.
func (side *OrderSide) Levels(descending bool) []Level {
	side.mu.RLock()
	defer side.mu.RUnlock()

	levels := make([]Level, 0, side.depth)
	collect := func(queue *OrderQueue) bool {
		levels = append(levels, queue.snapshot())
		return true
	}
	if descending {
		side.tree.Reverse(collect)
	} else {
		side.tree.Scan(collect)
	}
	return levels
}
