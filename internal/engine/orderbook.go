package engine

import (
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog/log"

	"lobcore/internal/common"
)

// OrderBook is the aggregate root for one instrument. It owns the id registry
// used for duplicate detection and one OrderSide per direction. The sides are
// never handed out, all access goes through the book so the two indexes of a
// side cannot be changed independently.
type OrderBook struct {
	// mu guards the registry. It is held for the whole admission so an id is
	// never in the registry without also resting on a side.
	mu     sync.Mutex
	orders map[string]*common.Order

	bids *OrderSide
	asks *OrderSide

	matcher Matcher
}

type Option func(*OrderBook)

// WithMatcher replaces the default matcher, which lets every order rest.
func WithMatcher(matcher Matcher) Option {
	return func(book *OrderBook) {
		book.matcher = matcher
	}
}

func NewOrderBook(opts ...Option) *OrderBook {
	book := &OrderBook{
		orders:  make(map[string]*common.Order),
		bids:    newOrderSide(),
		asks:    newOrderSide(),
		matcher: restingMatcher{},
	}
	for _, opt := range opts {
		opt(book)
	}
	return book
}

// Submit admits an order into the book and runs the matcher over it.
//
// Checks run in a fixed order and the first failure wins: duplicate id, zero
// volume, zero price. Rejected orders leave the book untouched. Once admitted
// an order is visible to every query straight away. A matcher failure is
// returned wrapped in ErrMatch, the order stays admitted.
func (book *OrderBook) Submit(order *common.Order) ([]common.Trade, error) {
	if err := book.admit(order); err != nil {
		log.Debug().
			Err(err).
			Str("id", order.ID()).
			Stringer("side", order.Side()).
			Float64("price", order.Price()).
			Float64("volume", order.Volume()).
			Msg("order rejected")
		return nil, err
	}

	trades, err := book.matcher.Match(book, order)
	if err != nil {
		return nil, fmt.Errorf("%w: order %s: %w", ErrMatch, order.ID(), err)
	}
	if trades == nil {
		trades = []common.Trade{}
	}
	return trades, nil
}

func (book *OrderBook) admit(order *common.Order) error {
	book.mu.Lock()
	defer book.mu.Unlock()

	if _, ok := book.orders[order.ID()]; ok {
		return &DuplicateOrderError{ID: order.ID()}
	}
	if err := validate(order); err != nil {
		return err
	}

	book.side(order.Side()).insert(order)
	book.orders[order.ID()] = order
	return nil
}

func validate(order *common.Order) error {
	switch {
	case order.Volume() == 0:
		return ErrZeroVolume
	case order.Price() == 0:
		return ErrZeroPrice
	case !positiveFinite(order.Volume()):
		return ErrInvalidVolume
	case !positiveFinite(order.Price()):
		return ErrInvalidPrice
	case order.Side() != common.Buy && order.Side() != common.Sell:
		return ErrInvalidSide
	}
	return nil
}

func positiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

func (book *OrderBook) side(side common.Side) *OrderSide {
	if side == common.Buy {
		return book.bids
	}
	return book.asks
}

// BestAsk returns the lowest resting sell price.
func (book *OrderBook) BestAsk() (float64, bool) {
	return book.asks.bestSellPrice()
}

// BestBid returns the highest resting buy price.
func (book *OrderBook) BestBid() (float64, bool) {
	return book.bids.bestBuyPrice()
}

func (book *OrderBook) VolumeAtAskPrice(price float64) (float64, bool) {
	return book.asks.volumeAt(price)
}

func (book *OrderBook) VolumeAtBidPrice(price float64) (float64, bool) {
	return book.bids.volumeAt(price)
}

// Order looks up an admitted order by id.
func (book *OrderBook) Order(id string) (*common.Order, bool) {
	book.mu.Lock()
	defer book.mu.Unlock()

	order, ok := book.orders[id]
	return order, ok
}

// Len returns the number of admitted orders.
func (book *OrderBook) Len() int {
	book.mu.Lock()
	defer book.mu.Unlock()
	return len(book.orders)
}

// Asks copies the ask levels, best (lowest) first.
func (book *OrderBook) Asks() []Level {
	return book.asks.Levels(false)
}

// Bids copies the bid levels, best (highest) first.
func (book *OrderBook) Bids() []Level {
	return book.bids.Levels(true)
}

// SideStats summarises one side of the book.
type SideStats struct {
	Orders int
	Depth  int
	Volume float64
}

func (book *OrderBook) AskStats() SideStats {
	return book.asks.stats()
}

func (book *OrderBook) BidStats() SideStats {
	return book.bids.stats()
}
