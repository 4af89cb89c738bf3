package seeder

import (
	"errors"
	"math/rand"

	"go.uber.org/zap"

	"clob/domain/orderbook"
	"clob/service"
)

// Seeder populates demo liquidity at process start by submitting
// random one-lot limit orders through the normal service path. It
// has no special privileges over any other caller.
type Seeder struct {
	svc *service.OrderService
	rng *rand.Rand
	log *zap.SugaredLogger

	mid     int64
	spread  int64
	buyBias float64
}

func New(svc *service.OrderService, mid, spread int64, buyBias float64, rng *rand.Rand, logger *zap.SugaredLogger) (*Seeder, error) {
	if mid <= 0 || spread < 0 || buyBias < 0 || buyBias > 1 {
		return nil, errors.New("seeder: invalid parameters")
	}
	return &Seeder{
		svc:     svc,
		rng:     rng,
		log:     logger,
		mid:     mid,
		spread:  spread,
		buyBias: buyBias,
	}, nil
}

// Run submits n random orders. Generated prices are always positive,
// so submissions cannot be rejected.
func (s *Seeder) Run(n int) {
	for i := 0; i < n; i++ {
		side, price := s.genOrder()
		if _, err := s.svc.Submit(side, price, 1); err != nil {
			s.log.Warnw("seed order rejected", "side", side, "price", price, "error", err)
		}
	}
	s.log.Infow("book seeded", "orders", n, "mid", s.mid, "spread", s.spread)
}

// genOrder picks a side by bias and a price jittered around the mid,
// clamped to stay positive.
func (s *Seeder) genOrder() (orderbook.Side, int64) {
	side := orderbook.Ask
	if s.rng.Float64() < s.buyBias {
		side = orderbook.Bid
	}

	price := s.mid
	if s.spread > 0 {
		price += s.rng.Int63n(2*s.spread+1) - s.spread
	}
	if price < 1 {
		price = 1
	}
	return side, price
}
