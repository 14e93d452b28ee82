package engine

import "lobcore/internal/common"

// Matcher runs after an order has been admitted and turns crossing orders
// into trades. It is called without any book lock held, so it may use the
// book's read methods freely.
type Matcher interface {
	Match(book *OrderBook, incoming *common.Order) ([]common.Trade, error)
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(book *OrderBook, incoming *common.Order) ([]common.Trade, error)

func (f MatcherFunc) Match(book *OrderBook, incoming *common.Order) ([]common.Trade, error) {
	return f(book, incoming)
}

// restingMatcher never trades: every admitted order simply rests.
type restingMatcher struct{}

func (restingMatcher) Match(*OrderBook, *common.Order) ([]common.Trade, error) {
	return []common.Trade{}, nil
}
