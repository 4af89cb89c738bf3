package orderbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeLogSequencesAreGapFree(t *testing.T) {
	log := &TradeLog{}
	now := time.Now()

	for i := 0; i < 5; i++ {
		tr := log.Append(100, 1, now)
		assert.Equal(t, uint64(i+1), tr.Seq)
	}

	trades := log.All()
	require.Len(t, trades, 5)
	for i := 1; i < len(trades); i++ {
		assert.Equal(t, trades[i-1].Seq+1, trades[i].Seq)
	}
}

func TestTradeLogSince(t *testing.T) {
	log := &TradeLog{}
	now := time.Now()
	for i := int64(1); i <= 4; i++ {
		log.Append(100, i, now)
	}

	trades := log.Since(2)
	require.Len(t, trades, 2)
	assert.Equal(t, uint64(3), trades[0].Seq)
	assert.Equal(t, int64(3), trades[0].Qty)
	assert.Equal(t, uint64(4), trades[1].Seq)

	assert.Empty(t, log.Since(log.Count()), "nothing after the latest sequence")
	assert.Empty(t, log.Since(99), "past-the-end cursor is harmless")
}

func TestTradeLogSinceReturnsCopies(t *testing.T) {
	log := &TradeLog{}
	log.Append(100, 1, time.Now())

	trades := log.Since(0)
	trades[0].Qty = 999

	assert.Equal(t, int64(1), log.All()[0].Qty)
}
