package orderbook

import "github.com/google/btree"

// SideIndex holds one side's price levels in a B-tree whose ordering
// is chosen per side: bids sort highest price first, asks lowest
// first. Best() is therefore always the tree minimum, and Walk visits
// levels from best to worst.
type SideIndex struct {
	side   Side
	levels *btree.BTreeG[*PriceLevel]
}

func NewSideIndex(side Side) *SideIndex {
	less := func(a, b *PriceLevel) bool { return a.Price < b.Price }
	if side == Bid {
		less = func(a, b *PriceLevel) bool { return a.Price > b.Price }
	}
	return &SideIndex{
		side:   side,
		levels: btree.NewG(8, less),
	}
}

func (s *SideIndex) GetOrCreate(price int64) *PriceLevel {
	if lvl, ok := s.levels.Get(&PriceLevel{Price: price}); ok {
		return lvl
	}
	lvl := &PriceLevel{Price: price}
	s.levels.ReplaceOrInsert(lvl)
	return lvl
}

func (s *SideIndex) Find(price int64) *PriceLevel {
	lvl, ok := s.levels.Get(&PriceLevel{Price: price})
	if !ok {
		return nil
	}
	return lvl
}

// Best returns the most aggressive level, or nil when the side is
// empty: highest bid, lowest ask.
func (s *SideIndex) Best() *PriceLevel {
	lvl, ok := s.levels.Min()
	if !ok {
		return nil
	}
	return lvl
}

// Remove drops the level at the given price. Levels are removed the
// moment their queue empties; the tree never holds an empty level.
func (s *SideIndex) Remove(price int64) {
	s.levels.Delete(&PriceLevel{Price: price})
}

func (s *SideIndex) Len() int {
	return s.levels.Len()
}

// Walk visits levels best to worst until fn returns false.
func (s *SideIndex) Walk(fn func(*PriceLevel) bool) {
	s.levels.Ascend(func(lvl *PriceLevel) bool {
		return fn(lvl)
	})
}
