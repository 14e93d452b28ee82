package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lobcore/internal/common"
)

func TestOrderQueue_AppendKeepsArrivalOrder(t *testing.T) {
	q := newOrderQueue(99.95)
	first := common.NewOrder(common.Buy, "buy-1", 99.95, 20)
	second := common.NewOrder(common.Buy, "buy-2", 99.95, 10)

	q.append(first)
	q.append(second)

	assert.Equal(t, 99.95, q.Price())
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, 30.0, q.Volume())
	assert.Equal(t, []*common.Order{first, second}, q.Orders())
}

func TestOrderQueue_OrdersIsACopy(t *testing.T) {
	q := newOrderQueue(1)
	q.append(common.NewOrder(common.Sell, "sell-1", 1, 1))

	orders := q.Orders()
	orders[0] = nil

	assert.NotNil(t, q.Orders()[0])
}

func TestOrderQueue_Snapshot(t *testing.T) {
	q := newOrderQueue(10)
	order := common.NewOrder(common.Sell, "sell-1", 10, 4)
	q.append(order)

	level := q.snapshot()

	assert.Equal(t, Level{Price: 10, Volume: 4, Orders: []*common.Order{order}}, level)
}
