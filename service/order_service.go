package service

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clob/domain/orderbook"
)

// OrderService is the ONLY entry point into the book.
//
// A reader-writer lock makes the book a single logical state machine:
// Submit and Cancel take exclusive access, queries share access. The
// domain package below this line contains no locking at all.
type OrderService struct {
	mu   sync.RWMutex
	book *orderbook.OrderBook
	log  *zap.SugaredLogger
}

func New(book *orderbook.OrderBook, logger *zap.SugaredLogger) *OrderService {
	return &OrderService{
		book: book,
		log:  logger,
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// SubmitResult summarizes what a single submission did. Fills are
// exactly the trades appended by this call, computed from the trade
// log's sequence before and after matching.
type SubmitResult struct {
	OrderID   uuid.UUID
	Filled    int64
	Remaining int64
	Fills     []orderbook.Trade
}

func (s *OrderService) Submit(side orderbook.Side, price, qty int64) (SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.book.TradeCount()

	id, err := s.book.Submit(side, price, qty)
	if err != nil {
		s.log.Warnw("order rejected",
			"side", side, "price", price, "qty", qty, "error", err)
		return SubmitResult{}, err
	}

	fills := s.book.TradesSince(before)
	var filled int64
	for _, t := range fills {
		filled += t.Qty
	}

	s.log.Infow("order accepted",
		"id", id, "side", side, "price", price, "qty", qty,
		"filled", filled, "fills", len(fills))

	return SubmitResult{
		OrderID:   id,
		Filled:    filled,
		Remaining: qty - filled,
		Fills:     fills,
	}, nil
}

func (s *OrderService) Cancel(id uuid.UUID) (orderbook.CancelResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.book.Cancel(id)
	if err != nil {
		s.log.Infow("cancel miss", "id", id)
		return orderbook.CancelResult{}, err
	}

	s.log.Infow("order cancelled",
		"id", id, "side", res.Side, "price", res.Price, "remaining", res.Remaining)
	return res, nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

func (s *OrderService) Lookup(id uuid.UUID) (orderbook.OrderView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book.Lookup(id)
}

func (s *OrderService) TradesSince(seq uint64) []orderbook.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book.TradesSince(seq)
}

func (s *OrderService) TradeCount() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book.TradeCount()
}

func (s *OrderService) Snapshot() orderbook.BookSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book.Snapshot()
}
