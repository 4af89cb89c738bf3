package orderbook

import "time"

// Trade is one execution. The print price is the resting order's
// price, so an aggressor crossing a better-priced level receives
// price improvement.
type Trade struct {
	Price int64     `json:"price"`
	Qty   int64     `json:"quantity"`
	Seq   uint64    `json:"sequence"`
	Time  time.Time `json:"timestamp"`
}

// TradeLog is append-only. Sequence numbers start at 1, are gap-free
// and strictly increasing; nothing is ever edited or removed.
type TradeLog struct {
	trades []Trade
}

func (l *TradeLog) Append(price, qty int64, at time.Time) Trade {
	t := Trade{
		Price: price,
		Qty:   qty,
		Seq:   uint64(len(l.trades)) + 1,
		Time:  at,
	}
	l.trades = append(l.trades, t)
	return t
}

// Count returns the sequence of the latest trade, zero when empty.
func (l *TradeLog) Count() uint64 {
	return uint64(len(l.trades))
}

// Since returns copies of every trade with sequence strictly greater
// than seq, in ascending order. Since(Count()) is always empty.
func (l *TradeLog) Since(seq uint64) []Trade {
	if seq >= uint64(len(l.trades)) {
		return nil
	}
	out := make([]Trade, uint64(len(l.trades))-seq)
	copy(out, l.trades[seq:])
	return out
}

func (l *TradeLog) All() []Trade {
	return l.Since(0)
}
