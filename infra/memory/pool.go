package memory

import "sync"

// Pool is a typed object pool. The book churns through one Order
// allocation per submission; recycling the structs of filled and
// cancelled orders keeps that churn off the garbage collector.
type Pool[T any] struct {
	p *sync.Pool
}

func NewPool[T any](ctor func() *T) *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
	}
}

func (p *Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

func (p *Pool[T]) Put(v *T) {
	p.p.Put(v)
}
