package orderbook

import "github.com/google/uuid"

type Side int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Ask {
		return "ask"
	}
	return "bid"
}

// Order is a pure domain entity. Quantity is carried as the submitted
// size plus a filled counter; Remaining() is what still rests.
type Order struct {
	ID     uuid.UUID
	Side   Side
	Price  int64
	Qty    int64
	Filled int64
	Seq    uint64

	level *PriceLevel
	next  *Order
	prev  *Order
}

func (o *Order) Remaining() int64 {
	return o.Qty - o.Filled
}

// Read-only traversal helper
func (o *Order) Next() *Order {
	return o.next
}
