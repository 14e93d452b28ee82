package common

import (
	"fmt"
	"time"
)

// Trade accounts for the two orders that matched. The taker is the order
// whose arrival caused the match, the maker was resting in the book.
type Trade struct {
	Taker     *Order
	Maker     *Order
	Timestamp time.Time
	Volume    float64
	Price     float64
}

func (t Trade) String() string {
	return fmt.Sprintf(
		`Taker: [
%s]
Maker: [
%s]
Timestamp:      %v
Volume:         %f
Price:          %f`,
		t.Taker.String(),
		t.Maker.String(),
		t.Timestamp.Format(time.RFC3339),
		t.Volume,
		t.Price,
	)
}
