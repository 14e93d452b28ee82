package report

import (
	"github.com/rs/zerolog"

	"lobcore/internal/common"
)

// LogReporter writes engine outcomes as structured log lines.
type LogReporter struct {
	logger zerolog.Logger
}

func NewLogReporter(logger zerolog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

func (r *LogReporter) ReportTrades(symbol string, trades []common.Trade) {
	for _, trade := range trades {
		r.logger.Info().
			Str("symbol", symbol).
			Str("taker", orderID(trade.Taker)).
			Str("maker", orderID(trade.Maker)).
			Float64("price", trade.Price).
			Float64("volume", trade.Volume).
			Time("at", trade.Timestamp).
			Msg("trade")
	}
}

func (r *LogReporter) ReportRejection(symbol string, order *common.Order, err error) {
	r.logger.Warn().
		Err(err).
		Str("symbol", symbol).
		Str("id", orderID(order)).
		Msg("order rejected")
}

func orderID(order *common.Order) string {
	if order == nil {
		return ""
	}
	return order.ID()
}
