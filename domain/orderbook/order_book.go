package orderbook

import (
	"time"

	"github.com/google/uuid"

	"clob/infra/memory"
	"clob/infra/sequence"
)

// MaxMagnitude bounds accepted prices and quantities. With both held
// under 2^53, summed level and book totals stay far from int64
// overflow for any realistic run; larger values are rejected at the
// boundary rather than allowed to wrap.
const MaxMagnitude = int64(1) << 53

// OrderBook owns both side indexes, the order locator and the trade
// log. It is single-writer and deterministic: callers serialize all
// access, so there is no locking in here.
type OrderBook struct {
	Bids *SideIndex
	Asks *SideIndex

	byID map[uuid.UUID]*Order
	log  *TradeLog

	seq  *sequence.Sequencer
	pool *memory.Pool[Order]

	now func() time.Time
}

func New(seq *sequence.Sequencer, pool *memory.Pool[Order]) *OrderBook {
	return &OrderBook{
		Bids: NewSideIndex(Bid),
		Asks: NewSideIndex(Ask),
		byID: make(map[uuid.UUID]*Order),
		log:  &TradeLog{},
		seq:  seq,
		pool: pool,
		now:  time.Now,
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// Submit validates, matches and rests any leftover quantity at the
// order's own limit price. The new order's id is returned whether it
// filled fully, partially or not at all; fills are visible through
// the trade log.
func (b *OrderBook) Submit(side Side, price, qty int64) (uuid.UUID, error) {
	if price <= 0 || qty <= 0 || price > MaxMagnitude || qty > MaxMagnitude {
		return uuid.Nil, ErrInvalidOrder
	}

	o := b.pool.Get()
	*o = Order{
		ID:    uuid.New(),
		Side:  side,
		Price: price,
		Qty:   qty,
		Seq:   b.seq.Next(),
	}

	b.match(o)

	if o.Remaining() > 0 {
		b.rest(o)
		return o.ID, nil
	}

	// Fully filled on entry: the order never rests and is not
	// separately retrievable afterwards.
	id := o.ID
	b.release(o)
	return id, nil
}

// CancelResult reports the state the order had when it was pulled.
type CancelResult struct {
	Side      Side
	Price     int64
	Remaining int64
}

// Cancel removes a resting order. Prior fills stay in the trade log;
// only the remaining quantity is withdrawn.
func (b *OrderBook) Cancel(id uuid.UUID) (CancelResult, error) {
	o, ok := b.byID[id]
	if !ok {
		return CancelResult{}, ErrOrderNotFound
	}

	res := CancelResult{
		Side:      o.Side,
		Price:     o.Price,
		Remaining: o.Remaining(),
	}

	lvl := o.level
	lvl.Remove(o)
	if lvl.Empty() {
		b.sideOf(res.Side).Remove(lvl.Price)
	}
	delete(b.byID, id)
	b.release(o)

	return res, nil
}

//
// ──────────────────────────────────────────────────────────
// Matching
// ──────────────────────────────────────────────────────────
//

// match fills the incoming order against the opposing side: best
// price level first, FIFO within the level. Each fill prints at the
// resting order's price. Orders and levels that reach zero are
// removed inside the same step that zeroes them.
func (b *OrderBook) match(o *Order) {
	opposing := b.Asks
	if o.Side == Ask {
		opposing = b.Bids
	}

	for o.Remaining() > 0 {
		best := opposing.Best()
		if best == nil {
			return
		}
		if o.Side == Bid && best.Price > o.Price {
			return
		}
		if o.Side == Ask && best.Price < o.Price {
			return
		}

		head := best.Head()
		fill := min(o.Remaining(), head.Remaining())

		b.log.Append(best.Price, fill, b.now())

		o.Filled += fill
		head.Filled += fill
		best.TotalQty -= fill

		if head.Remaining() == 0 {
			best.PopHead()
			delete(b.byID, head.ID)
			b.release(head)
			if best.Empty() {
				opposing.Remove(best.Price)
			}
		}
	}
}

func (b *OrderBook) rest(o *Order) {
	b.sideOf(o.Side).GetOrCreate(o.Price).Enqueue(o)
	b.byID[o.ID] = o
}

func (b *OrderBook) sideOf(s Side) *SideIndex {
	if s == Ask {
		return b.Asks
	}
	return b.Bids
}

// release recycles an order's backing struct. Ids are never reused;
// only the allocation is. The struct is zeroed so a pooled order can
// never leak stale links.
func (b *OrderBook) release(o *Order) {
	*o = Order{}
	b.pool.Put(o)
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// OrderView is a copy of a resting order's visible state. An order
// whose remaining quantity reached zero was removed in the same
// operation and is indistinguishable from one that never existed.
type OrderView struct {
	ID        uuid.UUID
	Side      Side
	Price     int64
	Remaining int64
}

func (b *OrderBook) Lookup(id uuid.UUID) (OrderView, error) {
	o, ok := b.byID[id]
	if !ok {
		return OrderView{}, ErrOrderNotFound
	}
	return OrderView{
		ID:        o.ID,
		Side:      o.Side,
		Price:     o.Price,
		Remaining: o.Remaining(),
	}, nil
}

// TradeCount returns the sequence of the latest trade.
func (b *OrderBook) TradeCount() uint64 {
	return b.log.Count()
}

// TradesSince returns copies of all trades with sequence strictly
// greater than seq, ascending. Reading the count before a submission
// and passing it here afterwards yields exactly that submission's
// fills.
func (b *OrderBook) TradesSince(seq uint64) []Trade {
	return b.log.Since(seq)
}

// LevelView aggregates one price level.
type LevelView struct {
	Price      int64 `json:"price"`
	Qty        int64 `json:"quantity"`
	OrderCount int   `json:"order_count"`
}

// BookSnapshot is a full copy of the book's visible state, levels
// ordered best price first on each side.
type BookSnapshot struct {
	Bids       []LevelView `json:"bids"`
	Asks       []LevelView `json:"asks"`
	OpenOrders int         `json:"open_orders"`
	TradeCount uint64      `json:"trade_count"`
}

func (b *OrderBook) Snapshot() BookSnapshot {
	snap := BookSnapshot{
		Bids:       make([]LevelView, 0, b.Bids.Len()),
		Asks:       make([]LevelView, 0, b.Asks.Len()),
		OpenOrders: len(b.byID),
		TradeCount: b.log.Count(),
	}
	b.Bids.Walk(func(lvl *PriceLevel) bool {
		snap.Bids = append(snap.Bids, LevelView{
			Price:      lvl.Price,
			Qty:        lvl.TotalQty,
			OrderCount: lvl.OrderCount,
		})
		return true
	})
	b.Asks.Walk(func(lvl *PriceLevel) bool {
		snap.Asks = append(snap.Asks, LevelView{
			Price:      lvl.Price,
			Qty:        lvl.TotalQty,
			OrderCount: lvl.OrderCount,
		})
		return true
	})
	return snap
}
