package orderbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSideIndexBestOrdering(t *testing.T) {
	t.Run("bids best is highest", func(t *testing.T) {
		idx := NewSideIndex(Bid)
		idx.GetOrCreate(100)
		idx.GetOrCreate(105)
		idx.GetOrCreate(95)

		require.NotNil(t, idx.Best())
		assert.Equal(t, int64(105), idx.Best().Price)
	})

	t.Run("asks best is lowest", func(t *testing.T) {
		idx := NewSideIndex(Ask)
		idx.GetOrCreate(100)
		idx.GetOrCreate(105)
		idx.GetOrCreate(95)

		require.NotNil(t, idx.Best())
		assert.Equal(t, int64(95), idx.Best().Price)
	})
}

func TestSideIndexGetOrCreateDedupes(t *testing.T) {
	idx := NewSideIndex(Bid)
	a := idx.GetOrCreate(100)
	b := idx.GetOrCreate(100)

	assert.Same(t, a, b)
	assert.Equal(t, 1, idx.Len())
}

func TestSideIndexRemove(t *testing.T) {
	idx := NewSideIndex(Ask)
	idx.GetOrCreate(100)
	idx.GetOrCreate(101)

	idx.Remove(100)
	assert.Nil(t, idx.Find(100))
	assert.Equal(t, int64(101), idx.Best().Price)

	idx.Remove(101)
	assert.Nil(t, idx.Best())
	assert.Equal(t, 0, idx.Len())
}

func TestSideIndexWalkBestToWorst(t *testing.T) {
	idx := NewSideIndex(Bid)
	for _, p := range []int64{90, 110, 100} {
		idx.GetOrCreate(p)
	}

	var seen []int64
	idx.Walk(func(lvl *PriceLevel) bool {
		seen = append(seen, lvl.Price)
		return true
	})
	assert.Equal(t, []int64{110, 100, 90}, seen)
}
