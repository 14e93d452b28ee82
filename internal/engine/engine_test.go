package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lobcore/internal/common"
)

type rejection struct {
	symbol string
	id     string
	err    error
}

type MockReporter struct {
	mu         sync.Mutex
	trades     map[string][]common.Trade
	rejections []rejection
}

func newMockReporter() *MockReporter {
	return &MockReporter{trades: make(map[string][]common.Trade)}
}

func (r *MockReporter) ReportTrades(symbol string, trades []common.Trade) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trades[symbol] = append(r.trades[symbol], trades...)
}

func (r *MockReporter) ReportRejection(symbol string, order *common.Order, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejections = append(r.rejections, rejection{symbol, order.ID(), err})
}

func TestEngine_Symbols(t *testing.T) {
	eng := New("MSFT", "AAPL")

	assert.Equal(t, []string{"AAPL", "MSFT"}, eng.Symbols())
	_, ok := eng.Book("AAPL")
	assert.True(t, ok)
	_, ok = eng.Book("NVDA")
	assert.False(t, ok)
}

func TestEngine_RoutesPerSymbol(t *testing.T) {
	eng := New("AAPL", "NVDA")
	reporter := newMockReporter()
	eng.SetReporter(reporter)

	_, err := eng.Submit("AAPL", common.NewOrder(common.Buy, "buy-1", 180, 10))
	require.NoError(t, err)
	// Ids are unique per book, not across the engine.
	_, err = eng.Submit("NVDA", common.NewOrder(common.Buy, "buy-1", 120, 5))
	require.NoError(t, err)

	aapl, _ := eng.Book("AAPL")
	nvda, _ := eng.Book("NVDA")
	bid, _ := aapl.BestBid()
	assert.Equal(t, 180.0, bid)
	bid, _ = nvda.BestBid()
	assert.Equal(t, 120.0, bid)
	assert.Empty(t, reporter.rejections)
	assert.Empty(t, reporter.trades)
}

func TestEngine_ReportsRejections(t *testing.T) {
	eng := New("AAPL")
	reporter := newMockReporter()
	eng.SetReporter(reporter)

	_, err := eng.Submit("TSLA", common.NewOrder(common.Buy, "buy-1", 1, 1))
	assert.ErrorIs(t, err, ErrUnknownSymbol)

	_, err = eng.Submit("AAPL", common.NewOrder(common.Buy, "buy-2", 1, 0))
	assert.ErrorIs(t, err, ErrZeroVolume)

	require.Len(t, reporter.rejections, 2)
	assert.Equal(t, "TSLA", reporter.rejections[0].symbol)
	assert.ErrorIs(t, reporter.rejections[0].err, ErrUnknownSymbol)
	assert.Equal(t, "buy-2", reporter.rejections[1].id)
	assert.ErrorIs(t, reporter.rejections[1].err, ErrZeroVolume)
}

func TestEngine_ReportsTrades(t *testing.T) {
	trade := common.Trade{Price: 10, Volume: 1}
	eng := NewWithOptions([]string{"AAPL"}, WithMatcher(MatcherFunc(
		func(*OrderBook, *common.Order) ([]common.Trade, error) {
			return []common.Trade{trade}, nil
		},
	)))
	reporter := newMockReporter()
	eng.SetReporter(reporter)

	trades, err := eng.Submit("AAPL", common.NewOrder(common.Sell, "sell-1", 10, 1))

	require.NoError(t, err)
	assert.Equal(t, []common.Trade{trade}, trades)
	assert.Equal(t, []common.Trade{trade}, reporter.trades["AAPL"])
}

func TestEngine_NilReporterDiscards(t *testing.T) {
	eng := New("AAPL")
	eng.SetReporter(nil)

	_, err := eng.Submit("AAPL", common.NewOrder(common.Buy, "buy-1", 1, 0))
	assert.ErrorIs(t, err, ErrZeroVolume)
}
