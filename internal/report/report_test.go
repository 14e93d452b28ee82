package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lobcore/internal/common"
	"lobcore/internal/engine"
)

func placeTestOrders(t *testing.T, book *engine.OrderBook, side common.Side, price float64, volumes ...float64) {
	t.Helper()
	for _, volume := range volumes {
		_, err := book.Submit(common.NewOrder(side, common.GenerateID(), price, volume))
		require.NoError(t, err)
	}
}

func TestRenderDepth_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderDepth(&buf, engine.NewOrderBook(), 20))

	assert.Equal(t, "book is empty\n", buf.String())
}

func TestRenderDepth_AsksThenBids(t *testing.T) {
	book := engine.NewOrderBook()
	placeTestOrders(t, book, common.Sell, 99.94, 10, 25)
	placeTestOrders(t, book, common.Sell, 99.96, 25)
	placeTestOrders(t, book, common.Sell, 99.98, 20)
	placeTestOrders(t, book, common.Buy, 99.93, 10)
	placeTestOrders(t, book, common.Buy, 99.95, 20, 10)

	var buf bytes.Buffer
	require.NoError(t, RenderDepth(&buf, book, 10))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "ASK    99.9800 | ######     | 20", lines[0])
	assert.Equal(t, "ASK    99.9600 | #######    | 25", lines[1])
	assert.Equal(t, "ASK    99.9400 | ########## | 35", lines[2])
	assert.Equal(t, strings.Repeat("-", 34), lines[3])
	assert.Equal(t, "BID    99.9500 | #########  | 30", lines[4])
	assert.Equal(t, "BID    99.9300 | ###        | 10", lines[5])
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(0, 10, 5))
	assert.Equal(t, "", bar(3, 0, 5))
	assert.Equal(t, "#", bar(0.001, 100, 5))
	assert.Equal(t, "#####", bar(10, 10, 5))
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewLogReporter(zerolog.New(&buf))

	reporter.ReportRejection("AAPL", common.NewOrder(common.Buy, "buy-1", 1, 0), errors.New("bad order"))
	reporter.ReportTrades("AAPL", []common.Trade{{
		Taker:  common.NewOrder(common.Buy, "buy-2", 10, 1),
		Maker:  common.NewOrder(common.Sell, "sell-1", 10, 1),
		Price:  10,
		Volume: 1,
	}})

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"error":"bad order"`)
	assert.Contains(t, out, `"id":"buy-1"`)
	assert.Contains(t, out, `"taker":"buy-2"`)
	assert.Contains(t, out, `"maker":"sell-1"`)
	assert.Contains(t, out, `"message":"trade"`)
}
