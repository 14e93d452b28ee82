package common

type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	}
	return "UNKNOWN"
}

// Opposite returns the side an order of this side would trade against.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}
