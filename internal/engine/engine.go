package engine

import (
	"fmt"
	"slices"
	"sync"

	"lobcore/internal/common"
)

// Engine owns one OrderBook per traded symbol and reports the outcome of every
// submission. The set of symbols is fixed at construction.
type Engine struct {
	books map[string]*OrderBook

	reporterLock sync.RWMutex
	reporter     Reporter
}

func New(symbols ...string) *Engine {
	return NewWithOptions(symbols)
}

// NewWithOptions applies opts to every book the engine creates.
func NewWithOptions(symbols []string, opts ...Option) *Engine {
	engine := &Engine{
		books:    make(map[string]*OrderBook, len(symbols)),
		reporter: discardReporter{},
	}
	for _, symbol := range symbols {
		engine.books[symbol] = NewOrderBook(opts...)
	}
	return engine
}

func (engine *Engine) SetReporter(reporter Reporter) {
	engine.reporterLock.Lock()
	defer engine.reporterLock.Unlock()

	if reporter == nil {
		reporter = discardReporter{}
	}
	engine.reporter = reporter
}

func (engine *Engine) getReporter() Reporter {
	engine.reporterLock.RLock()
	defer engine.reporterLock.RUnlock()
	return engine.reporter
}

// Submit places the order into the symbol's book. Rejections are reported and
// returned, trades are only reported when there are some.
func (engine *Engine) Submit(symbol string, order *common.Order) ([]common.Trade, error) {
	reporter := engine.getReporter()

	book, ok := engine.books[symbol]
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
		reporter.ReportRejection(symbol, order, err)
		return nil, err
	}

	trades, err := book.Submit(order)
	if err != nil {
		reporter.ReportRejection(symbol, order, err)
		return nil, err
	}
	if len(trades) > 0 {
		reporter.ReportTrades(symbol, trades)
	}
	return trades, nil
}

func (engine *Engine) Book(symbol string) (*OrderBook, bool) {
	book, ok := engine.books[symbol]
	return book, ok
}

// Symbols returns the traded symbols in sorted order.
func (engine *Engine) Symbols() []string {
	symbols := make([]string, 0, len(engine.books))
	for symbol := range engine.books {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

type discardReporter struct{}

func (discardReporter) ReportTrades(string, []common.Trade) {}
func (discardReporter) ReportRejection(string, *common.Order, error) {}
