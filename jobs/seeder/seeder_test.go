package seeder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clob/domain/orderbook"
	"clob/infra/memory"
	"clob/infra/sequence"
	"clob/service"
)

func newTestService() *service.OrderService {
	pool := memory.NewPool(func() *orderbook.Order { return &orderbook.Order{} })
	book := orderbook.New(sequence.New(0), pool)
	return service.New(book, zap.NewNop().Sugar())
}

func TestRunPopulatesBook(t *testing.T) {
	svc := newTestService()

	s, err := New(svc, 10, 3, 0.5, rand.New(rand.NewSource(1)), zap.NewNop().Sugar())
	require.NoError(t, err)

	s.Run(50)

	snap := svc.Snapshot()
	// Every order either rests or traded; nothing was rejected.
	var resting int64
	for _, lvl := range snap.Bids {
		resting += lvl.Qty
	}
	for _, lvl := range snap.Asks {
		resting += lvl.Qty
	}
	var traded int64
	for _, tr := range svc.TradesSince(0) {
		traded += 2 * tr.Qty
	}
	assert.Equal(t, int64(50), resting+traded)
}

func TestGenOrderStaysPositive(t *testing.T) {
	svc := newTestService()

	// Mid of 1 with a wide spread would jitter below zero without
	// the clamp.
	s, err := New(svc, 1, 5, 0.5, rand.New(rand.NewSource(7)), zap.NewNop().Sugar())
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		_, price := s.genOrder()
		assert.GreaterOrEqual(t, price, int64(1))
	}
}

func TestGenOrderBias(t *testing.T) {
	svc := newTestService()

	s, err := New(svc, 10, 0, 1.0, rand.New(rand.NewSource(3)), zap.NewNop().Sugar())
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		side, price := s.genOrder()
		assert.Equal(t, orderbook.Bid, side)
		assert.Equal(t, int64(10), price)
	}
}

func TestNewRejectsBadParameters(t *testing.T) {
	svc := newTestService()
	rng := rand.New(rand.NewSource(1))
	log := zap.NewNop().Sugar()

	_, err := New(svc, 0, 3, 0.5, rng, log)
	assert.Error(t, err)
	_, err = New(svc, 10, -1, 0.5, rng, log)
	assert.Error(t, err)
	_, err = New(svc, 10, 3, 1.5, rng, log)
	assert.Error(t, err)
}
