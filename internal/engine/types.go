package engine

import "lobcore/internal/common"

// Level is a read-only copy of one price level, taken for reporting.
type Level struct {
	Price  float64
	Volume float64
	Orders []*common.Order
}

// Reporter receives the outcome of every submission routed through an Engine.
type Reporter interface {
	ReportTrades(symbol string, trades []common.Trade)
	ReportRejection(symbol string, order *common.Order, err error)
}
